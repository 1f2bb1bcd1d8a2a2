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
	"errors"
	"fmt"
)

// 错误分类, 通过 errors.Is 判断
var (
	// ErrArgument 参数缺失或非法
	ErrArgument = errors.New("invalid argument")
	// ErrIO 读取来源或写出报表失败
	ErrIO = errors.New("i/o error")
	// ErrParse 目录文档不是合法的XML
	ErrParse = errors.New("malformed catalog")
	// ErrSchema 目录记录缺少必要字段
	ErrSchema = errors.New("incomplete catalog record")
	// ErrSymbolEncoding 条码内容无法编码
	ErrSymbolEncoding = errors.New("symbol encoding failed")
)

// ParseError XML解析错误
type ParseError struct {
	Line int
	Err  error
}

// Error 实现 error 接口
// 返回: string 错误描述
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %v", ErrParse, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

// Unwrap 返回底层错误
func (e *ParseError) Unwrap() error { return e.Err }

// Is 匹配 ErrParse
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SchemaError 记录结构错误
// Record 为记录在文档中的序号(从1开始), Field 为缺失或为空的子元素名
type SchemaError struct {
	Record int
	Field  string
	Empty  bool
}

// Error 实现 error 接口
// 返回: string 错误描述
func (e *SchemaError) Error() string {
	if e.Empty {
		return fmt.Sprintf("%v: record %d: empty <%s>", ErrSchema, e.Record, e.Field)
	}
	return fmt.Sprintf("%v: record %d: missing <%s>", ErrSchema, e.Record, e.Field)
}

// Is 匹配 ErrSchema
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// SymbolEncodingError 条码编码错误
type SymbolEncodingError struct {
	Label   string
	Content string
	Err     error
}

// Error 实现 error 接口
// 返回: string 错误描述
func (e *SymbolEncodingError) Error() string {
	return fmt.Sprintf("%v: label %q: cannot encode %q as Code128: %v", ErrSymbolEncoding, e.Label, e.Content, e.Err)
}

// Unwrap 返回底层错误
func (e *SymbolEncodingError) Unwrap() error { return e.Err }

// Is 匹配 ErrSymbolEncoding
func (e *SymbolEncodingError) Is(target error) bool { return target == ErrSymbolEncoding }

// ioError 包装I/O错误
// 入参: err 底层错误
// 返回: error 错误信息
func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// argError 构造参数错误
// 入参: format 格式, args 参数
// 返回: error 错误信息
func argError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, args...))
}
