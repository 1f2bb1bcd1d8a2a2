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
	"fmt"
	"strconv"
	"strings"
)

// ptPerMM 每毫米的点数
const ptPerMM = 2.83465

// PtToMM 点转换为毫米
// 入参: pt 点
// 返回: float64 毫米
func PtToMM(pt float64) float64 {
	return pt / ptPerMM
}

// Box 矩形区域, 单位毫米, 原点位于页面左上角
type Box struct {
	X, Y, W, H float64
}

// Size 页面尺寸, 单位毫米
type Size struct {
	W, H float64
}

var pageSizes = map[string]Size{
	"A3":     {297, 420},
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
	"LEGAL":  {215.9, 355.6},
}

// ParsePageSize 解析页面尺寸
// 支持名称(A3 A4 A5 LETTER LEGAL)或 "宽 高" 形式的毫米值
// 入参: s 字符串
// 返回: Size 页面尺寸, error 错误信息
func ParsePageSize(s string) (Size, error) {
	if size, ok := pageSizes[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return size, nil
	}
	floats, err := parseFloats(s)
	if err != nil || len(floats) != 2 || floats[0] <= 0 || floats[1] <= 0 {
		return Size{}, argError("page size %q", s)
	}
	return Size{W: floats[0], H: floats[1]}, nil
}

// Padding 单元格内边距, 单位点
type Padding struct {
	Top, Right, Bottom, Left float64
}

// ParsePadding 解析内边距
// 一个值表示四边相同, 四个值依次为 上 右 下 左
// 入参: s 字符串
// 返回: Padding 内边距, error 错误信息
func ParsePadding(s string) (Padding, error) {
	floats, err := parseFloats(s)
	if err != nil {
		return Padding{}, argError("padding %q", s)
	}
	for _, v := range floats {
		if v < 0 {
			return Padding{}, argError("padding %q", s)
		}
	}
	switch len(floats) {
	case 1:
		v := floats[0]
		return Padding{v, v, v, v}, nil
	case 4:
		return Padding{floats[0], floats[1], floats[2], floats[3]}, nil
	}
	return Padding{}, argError("padding %q needs 1 or 4 values", s)
}

// String 格式化为 "上 右 下 左"
func (p Padding) String() string {
	return fmt.Sprintf("%g %g %g %g", p.Top, p.Right, p.Bottom, p.Left)
}

// mm 转换为毫米
func (p Padding) mm() Padding {
	return Padding{PtToMM(p.Top), PtToMM(p.Right), PtToMM(p.Bottom), PtToMM(p.Left)}
}

// parseFloats 解析以空格或逗号分隔的浮点数数组
// 入参: s 字符串
// 返回: []float64 浮点数数组, error 错误信息
func parseFloats(s string) ([]float64, error) {
	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)
	result := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
