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
	"image/color"
	"strconv"
	"strings"
)

// ParseColor 解析颜色字符串
// 入参: val 颜色值(R G B), 每个分量 0-255
// 返回: color.Color 颜色对象, error 错误信息
func ParseColor(val string) (color.Color, error) {
	parts := strings.Fields(val)
	if len(parts) != 3 {
		return nil, argError("color %q (want \"R G B\")", val)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return nil, argError("color %q (want \"R G B\")", val)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
