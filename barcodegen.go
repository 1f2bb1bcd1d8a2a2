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

// Package barcodegen 从XML条码目录生成 Code128 条码PDF报表
//
// 流程: 获取目录 -> 解析 -> 按标签去重渲染条码 -> 单列表格排版 -> 写出PDF
package barcodegen

import (
	"context"
	"fmt"
)

// Summary 一次生成的结果
type Summary struct {
	Output   string
	Entries  int
	Labels   int
	Rendered int
	Skipped  []Entry
	Squeezed []string
	Pages    int
	Preview  string
}

// Generate 按配置执行完整流程
// 入参: ctx 上下文, cfg 配置
// 返回: *Summary 生成结果, error 错误信息
func Generate(ctx context.Context, cfg *Config) (*Summary, error) {
	src, layout, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	logger := cfg.logger()

	logger.Debug("loading catalog", "type", src.Type, "location", src.Location)
	catalog, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog parsed", "code", catalog.Code, "entries", len(catalog.Entries))

	summary := &Summary{
		Output:  cfg.Output,
		Entries: len(catalog.Entries),
		Labels:  len(catalog.Labels()),
	}
	renderer := NewRenderer(
		WithSkipInvalid(cfg.SkipInvalid),
		WithSkipHandler(func(e Entry, _ error) {
			summary.Skipped = append(summary.Skipped, e)
		}),
		WithLogger(logger),
	)
	symbols, err := renderer.Render(catalog.Entries)
	if err != nil {
		return nil, err
	}
	summary.Rendered = len(symbols)
	logger.Debug("symbols rendered", "rendered", len(symbols), "skipped", len(summary.Skipped))
	for _, sym := range symbols {
		if w, squeezed := layout.SymbolWidth(sym.Modules); squeezed {
			logger.Warn("symbol squeezed to cell width, bars may not scan",
				"label", sym.Label, "modules", sym.Modules, "width_mm", w)
			summary.Squeezed = append(summary.Squeezed, sym.Label)
		}
	}

	opts := []ReportOption{
		WithLayout(layout),
		WithDPI(cfg.Preview.DPI),
		WithFontFile(cfg.Font),
	}
	if cfg.Logo != "" {
		logo, err := LoadImage(cfg.Logo)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogo(logo))
	}
	report, err := AssembleReport(symbols, cfg.Output, opts...)
	if err != nil {
		return nil, err
	}
	summary.Pages = report.PageCount()
	logger.Debug("report written", "output", cfg.Output, "pages", summary.Pages)

	if cfg.ValidatePDF {
		pages, err := ValidateFile(cfg.Output)
		if err != nil {
			return nil, err
		}
		if pages != summary.Pages {
			return nil, fmt.Errorf("pdf validation %s: %d pages written, %d found", cfg.Output, summary.Pages, pages)
		}
		logger.Debug("report validated", "pages", pages)
	}
	if cfg.Preview.Path != "" {
		if err := report.WritePreview(cfg.Preview.Path); err != nil {
			return nil, err
		}
		summary.Preview = cfg.Preview.Path
	}
	return summary, nil
}
