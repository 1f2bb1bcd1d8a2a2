// Copyright 2025-2026 肖其顿 (XIAO QI DUN)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package barcodegen

import (
	"encoding/xml"
	"io"
	"strings"
)

// SampleBarcodes 内置示例条码, 未提供输入时用于生成测试目录
var SampleBarcodes = []string{
	"(01) 09501101530003 (17) 261231 (10) A1B2C3",
	"(01) 09501101530010 (17) 270630 (10) LOT-0042",
	"(01) 09501101530027 (21) 000123456789",
	"(00) 095011015300000017",
	"(01) 09501101530003 (17) 261231 (10) A1B2C4",
}

var payloadStripper = strings.NewReplacer("(", "", ")", "", " ", "")

// PayloadOf 由原始条码字符串得到编码内容, 去掉括号与空格
// 入参: raw 原始字符串
// 返回: string 编码内容
func PayloadOf(raw string) string {
	return payloadStripper.Replace(raw)
}

// Synthesize 由原始条码字符串构造目录
// 原始字符串作为标签, 去掉括号与空格后作为编码内容, 空字符串被忽略
// 入参: raw 原始条码字符串
// 返回: *Catalog 目录
func Synthesize(raw []string) *Catalog {
	c := &Catalog{Code: DefaultCatalogCode}
	for _, s := range raw {
		label := strings.TrimSpace(s)
		if label == "" {
			continue
		}
		c.Entries = append(c.Entries, Entry{Label: label, Payload: PayloadOf(label)})
	}
	return c
}

// Encode 序列化目录为XML
// 入参: w 输出流
// 返回: error 错误信息
func (c *Catalog) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(c); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile 将目录写入XML文件
// 入参: path 文件路径
// 返回: error 错误信息
func (c *Catalog) WriteFile(path string) error {
	return writeFileAtomic(path, c.Encode)
}
