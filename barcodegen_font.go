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

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontFamily 加载报表字体族
// path 为空时使用内嵌的 Go 字体, 否则常规与粗体均使用该字体文件
// 入参: path 字体文件路径
// 返回: *canvas.FontFamily 字体族, error 错误信息
func loadFontFamily(path string) (*canvas.FontFamily, error) {
	if path != "" {
		ff := canvas.NewFontFamily("custom")
		for _, style := range []canvas.FontStyle{canvas.FontRegular, canvas.FontBold} {
			if err := ff.LoadFontFile(path, style); err != nil {
				return nil, ioError(fmt.Errorf("load font %s: %w", path, err))
			}
		}
		return ff, nil
	}
	ff := canvas.NewFontFamily("go")
	if err := ff.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	if err := ff.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return ff, nil
}
