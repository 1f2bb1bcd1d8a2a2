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
	"image"
	"log/slog"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

const (
	// DefaultModulePixels 每个模块的像素宽度
	DefaultModulePixels = 3
	// DefaultBarPixels 条码图像像素高度
	DefaultBarPixels = 120
)

// Symbol 已渲染的条码
// Content 为实际编码的内容(条目的 Payload), Modules 为条码模块数
type Symbol struct {
	Label   string
	Content string
	Modules int
	Image   image.Image
}

// Renderer 去重渲染器
// 每个标签只渲染首次出现的条目
type Renderer struct {
	ModulePixels int
	BarPixels    int
	SkipInvalid  bool
	onSkip       func(Entry, error)
	logger       *slog.Logger
}

// RendererOption 渲染器配置选项
type RendererOption func(*Renderer)

// NewRenderer 创建渲染器
// 入参: opts 渲染选项
// 返回: *Renderer 渲染器实例
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		ModulePixels: DefaultModulePixels,
		BarPixels:    DefaultBarPixels,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithModulePixels 设置每个模块的像素宽度
// 入参: px 像素
// 返回: RendererOption 渲染选项
func WithModulePixels(px int) RendererOption {
	return func(r *Renderer) {
		if px > 0 {
			r.ModulePixels = px
		}
	}
}

// WithBarPixels 设置条码图像高度
// 入参: px 像素
// 返回: RendererOption 渲染选项
func WithBarPixels(px int) RendererOption {
	return func(r *Renderer) {
		if px > 0 {
			r.BarPixels = px
		}
	}
}

// WithSkipInvalid 设置是否跳过无法编码的条目
// 入参: skip 是否跳过
// 返回: RendererOption 渲染选项
func WithSkipInvalid(skip bool) RendererOption {
	return func(r *Renderer) {
		r.SkipInvalid = skip
	}
}

// WithSkipHandler 设置跳过条目时的回调
// 入参: fn 回调函数
// 返回: RendererOption 渲染选项
func WithSkipHandler(fn func(Entry, error)) RendererOption {
	return func(r *Renderer) {
		r.onSkip = fn
	}
}

// WithLogger 设置日志记录器
// 入参: logger 日志记录器
// 返回: RendererOption 渲染选项
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Render 按文档顺序渲染条目, 重复标签只保留首次出现
// 跳过的条目同样占用其标签
// 入参: entries 目录条目
// 返回: []Symbol 条码列表, error 错误信息
func (r *Renderer) Render(entries []Entry) ([]Symbol, error) {
	seen := make(map[string]struct{}, len(entries))
	symbols := make([]Symbol, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Label]; ok {
			r.logger.Debug("duplicate label skipped", "label", e.Label, "payload", e.Payload)
			continue
		}
		seen[e.Label] = struct{}{}
		sym, err := r.Symbol(e)
		if err != nil {
			if !r.SkipInvalid {
				return nil, err
			}
			r.logger.Warn("entry skipped", "label", e.Label, "err", err)
			if r.onSkip != nil {
				r.onSkip(e, err)
			}
			continue
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// Symbol 渲染单个条目
// 入参: e 目录条目
// 返回: Symbol 条码, error 错误信息
func (r *Renderer) Symbol(e Entry) (Symbol, error) {
	bc, err := code128.Encode(e.Payload)
	if err != nil {
		return Symbol{}, &SymbolEncodingError{Label: e.Label, Content: e.Payload, Err: err}
	}
	modules := bc.Bounds().Dx()
	img, err := barcode.Scale(bc, modules*r.ModulePixels, r.BarPixels)
	if err != nil {
		return Symbol{}, &SymbolEncodingError{Label: e.Label, Content: e.Payload, Err: err}
	}
	return Symbol{
		Label:   e.Label,
		Content: bc.Content(),
		Modules: modules,
		Image:   img,
	}, nil
}
