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

import "encoding/xml"

const (
	// RecordTag 条码记录元素名
	RecordTag = "BARCODE_DATA"
	// LabelTag 标签子元素名
	LabelTag = "Description"
	// PayloadTag 条码内容子元素名
	PayloadTag = "Barcode"
	// DefaultCatalogCode 合成目录的固定元数据
	DefaultCatalogCode = "CODE128"
)

// Catalog 条码目录
// 代表目录文档的根节点, Entries 保持文档顺序
type Catalog struct {
	XMLName xml.Name `xml:"BARCODES"`
	Code    string   `xml:"Code"`
	Entries []Entry  `xml:"BARCODE_DATA"`
}

// Entry 目录条目
// Label 为去重键, Payload 为条码编码内容
type Entry struct {
	Label   string `xml:"Description"`
	Payload string `xml:"Barcode"`
}

// Labels 获取目录中不重复的标签
// 返回: []string 按首次出现顺序排列的标签
func (c *Catalog) Labels() []string {
	seen := make(map[string]struct{}, len(c.Entries))
	labels := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		if _, ok := seen[e.Label]; ok {
			continue
		}
		seen[e.Label] = struct{}{}
		labels = append(labels, e.Label)
	}
	return labels
}

// record 解析用的记录结构, 指针字段用于区分缺失与空值
type record struct {
	Description *string `xml:"Description"`
	Barcode     *string `xml:"Barcode"`
}
