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
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 生成报表的完整配置
// 启动时构造一次, 显式传递给各个阶段
type Config struct {
	Output      string        `yaml:"output"`
	Source      SourceConfig  `yaml:"source"`
	Page        PageConfig    `yaml:"page"`
	Header      HeaderConfig  `yaml:"header"`
	Cell        CellConfig    `yaml:"cell"`
	SkipInvalid bool          `yaml:"skip_invalid"`
	ValidatePDF bool          `yaml:"validate_pdf"`
	Preview     PreviewConfig `yaml:"preview"`
	Logo        string        `yaml:"logo"`
	Font        string        `yaml:"font"`

	Logger *slog.Logger `yaml:"-"`
}

// SourceConfig 目录来源配置
type SourceConfig struct {
	Type    string        `yaml:"type"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

// PageConfig 页面配置
type PageConfig struct {
	Size          string  `yaml:"size"`
	MarginPt      float64 `yaml:"margin_pt"`
	ColumnWidthMM float64 `yaml:"column_width_mm"`
}

// HeaderConfig 表头配置
type HeaderConfig struct {
	Text       string  `yaml:"text"`
	Fill       string  `yaml:"fill"`
	PaddingPt  float64 `yaml:"padding_pt"`
	FontSizePt float64 `yaml:"font_size_pt"`
}

// CellConfig 条码单元格配置
type CellConfig struct {
	PaddingPt     string  `yaml:"padding_pt"`
	BarHeightMM   float64 `yaml:"bar_height_mm"`
	ModuleWidthMM float64 `yaml:"module_width_mm"`
	Caption       bool    `yaml:"caption"`
	CaptionSizePt float64 `yaml:"caption_size_pt"`
}

// PreviewConfig 预览图配置
type PreviewConfig struct {
	Path string  `yaml:"path"`
	DPI  float64 `yaml:"dpi"`
}

// DefaultConfig 默认配置
// 返回: *Config 配置
func DefaultConfig() *Config {
	l := DefaultLayout()
	return &Config{
		Source: SourceConfig{
			Timeout: DefaultTimeout,
		},
		Page: PageConfig{
			Size:     "A4",
			MarginPt: l.MarginPt,
		},
		Header: HeaderConfig{
			Text:       l.HeaderText,
			Fill:       "128 128 128",
			PaddingPt:  l.HeaderPadding,
			FontSizePt: l.HeaderFontSize,
		},
		Cell: CellConfig{
			PaddingPt:     l.CellPadding.String(),
			BarHeightMM:   l.BarHeight,
			ModuleWidthMM: l.ModuleWidth,
			Caption:       l.Caption,
			CaptionSizePt: l.CaptionSize,
		},
		Preview: PreviewConfig{
			DPI: 150,
		},
	}
}

// LoadConfig 读取YAML配置文件, 文件中的值覆盖默认配置
// 必填项通常由命令行补齐, 因此这里不做校验
// 入参: path 文件路径
// 返回: *Config 配置, error 错误信息
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(fmt.Errorf("read config: %w", err))
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, argError("parse config %s: %v", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
// 返回: error 错误信息
func (c *Config) Validate() error {
	_, _, err := c.resolve()
	return err
}

// resolve 校验配置并构造目录来源与报表版式
// 返回: Source 目录来源, Layout 版式, error 错误信息
func (c *Config) resolve() (Source, Layout, error) {
	if c.Output == "" {
		return Source{}, Layout{}, argError("output path is required")
	}
	if c.Source.Type == "" {
		return Source{}, Layout{}, argError("xml type is required")
	}
	src, err := c.SourceSpec()
	if err != nil {
		return Source{}, Layout{}, err
	}
	if c.Source.Path == "" {
		return Source{}, Layout{}, argError("xml path is required")
	}
	if c.Source.Timeout < 0 {
		return Source{}, Layout{}, argError("timeout must not be negative")
	}
	if c.Preview.DPI <= 0 {
		return Source{}, Layout{}, argError("preview dpi must be positive")
	}
	layout, err := c.Layout()
	if err != nil {
		return Source{}, Layout{}, err
	}
	return src, layout, nil
}

// SourceSpec 构造目录来源
// 返回: Source 目录来源, error 错误信息
func (c *Config) SourceSpec() (Source, error) {
	typ, err := ParseSourceType(c.Source.Type)
	if err != nil {
		return Source{}, err
	}
	src := Source{Type: typ, Location: c.Source.Path}
	if typ == SourceURL {
		src.Client = newHTTPClient(c.Source.Timeout)
	}
	return src, nil
}

// Layout 构造报表版式
// 返回: Layout 版式, error 错误信息
func (c *Config) Layout() (Layout, error) {
	l := DefaultLayout()
	size, err := ParsePageSize(c.Page.Size)
	if err != nil {
		return Layout{}, err
	}
	fill, err := ParseColor(c.Header.Fill)
	if err != nil {
		return Layout{}, err
	}
	padding, err := ParsePadding(c.Cell.PaddingPt)
	if err != nil {
		return Layout{}, err
	}
	l.PageSize = size
	l.MarginPt = c.Page.MarginPt
	l.ColumnWidth = c.Page.ColumnWidthMM
	l.HeaderText = c.Header.Text
	l.HeaderFill = fill
	l.HeaderPadding = c.Header.PaddingPt
	l.HeaderFontSize = c.Header.FontSizePt
	l.CellPadding = padding
	l.BarHeight = c.Cell.BarHeightMM
	l.ModuleWidth = c.Cell.ModuleWidthMM
	l.Caption = c.Cell.Caption
	l.CaptionSize = c.Cell.CaptionSizePt
	if err := l.check(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// logger 获取日志记录器
// 返回: *slog.Logger 日志记录器
func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
