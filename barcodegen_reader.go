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
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseCatalog 解析条码目录文档
// 文档中任意层级的 BARCODE_DATA 元素均视为一条记录, 输出顺序与文档顺序一致
// 入参: r 目录数据流
// 返回: *Catalog 目录, error 错误信息
func ParseCatalog(r io.Reader) (*Catalog, error) {
	src := &trackingReader{r: r}
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel
	catalog := &Catalog{}
	depth := 0
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, src.classify(err, dec)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				line, _ := dec.InputPos()
				return nil, &ParseError{Line: line, Err: errors.New("multiple root elements")}
			}
			sawRoot = true
			switch {
			case t.Name.Local == RecordTag:
				var rec record
				if err := dec.DecodeElement(&rec, &t); err != nil {
					return nil, src.classify(err, dec)
				}
				entry, err := rec.entry(len(catalog.Entries) + 1)
				if err != nil {
					return nil, err
				}
				catalog.Entries = append(catalog.Entries, entry)
			case t.Name.Local == "Code" && depth == 1:
				var code string
				if err := dec.DecodeElement(&code, &t); err != nil {
					return nil, src.classify(err, dec)
				}
				catalog.Code = strings.TrimSpace(code)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
	if !sawRoot {
		return nil, &ParseError{Err: errors.New("no root element")}
	}
	return catalog, nil
}

// entry 校验记录并转换为目录条目
// 入参: index 记录序号(从1开始)
// 返回: Entry 目录条目, error 错误信息
func (rec record) entry(index int) (Entry, error) {
	if rec.Description == nil {
		return Entry{}, &SchemaError{Record: index, Field: LabelTag}
	}
	if rec.Barcode == nil {
		return Entry{}, &SchemaError{Record: index, Field: PayloadTag}
	}
	label := strings.TrimSpace(*rec.Description)
	if label == "" {
		return Entry{}, &SchemaError{Record: index, Field: LabelTag, Empty: true}
	}
	return Entry{Label: label, Payload: strings.TrimSpace(*rec.Barcode)}, nil
}

// trackingReader 记录底层读取错误, 用于区分I/O错误与语法错误
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

// classify 归类解码错误
// 入参: err 解码错误, dec 解码器
// 返回: error 分类后的错误
func (t *trackingReader) classify(err error, dec *xml.Decoder) error {
	if t.err != nil {
		return ioError(t.err)
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return &ParseError{Line: syntax.Line, Err: errors.New(syntax.Msg)}
	}
	line, _ := dec.InputPos()
	return &ParseError{Line: line, Err: err}
}
