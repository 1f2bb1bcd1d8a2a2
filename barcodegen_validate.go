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
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidateFile 校验已写出的PDF文件
// 入参: path 文件路径
// 返回: int 页数, error 错误信息
func ValidateFile(path string) (int, error) {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, fmt.Errorf("pdf validation %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, ioError(err)
	}
	defer f.Close()
	n, err := api.PageCount(f, conf)
	if err != nil {
		return 0, fmt.Errorf("pdf page count %s: %w", path, err)
	}
	return n, nil
}
