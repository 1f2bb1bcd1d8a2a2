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
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "github.com/xiaoqidun/jbig2"
)

// LoadImage 读取图像文件, 支持 PNG JPEG GIF JBIG2
// 入参: path 文件路径
// 返回: image.Image 图像对象, error 错误信息
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()
	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// writeFileAtomic 写入临时文件后替换目标文件
// 任何一步失败都会删除临时文件
// 入参: path 目标路径, write 写入函数
// 返回: error 错误信息
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return ioError(err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		_ = f.Close()
		return ioError(fmt.Errorf("write %s: %w", path, err))
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return ioError(err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return ioError(err)
	}
	if err := f.Close(); err != nil {
		return ioError(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return ioError(err)
	}
	return nil
}
