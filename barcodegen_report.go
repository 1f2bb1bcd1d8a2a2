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
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Layout 报表版式
// 以 Pt 结尾的字段单位为点, 其余长度单位为毫米
// 条码宽度为模块数乘以 ModuleWidth, 超出单元格内容宽度时压缩到内容宽度, 见 SymbolWidth
type Layout struct {
	PageSize       Size
	MarginPt       float64
	ColumnWidth    float64
	HeaderText     string
	HeaderFill     color.Color
	HeaderPadding  float64
	HeaderFontSize float64
	CellPadding    Padding
	ModuleWidth    float64
	BarHeight      float64
	Caption        bool
	CaptionSize    float64
	LogoHeight     float64
}

// DefaultLayout 默认版式
// A4 单列表格, 列宽为页宽的一半
// 返回: Layout 版式
func DefaultLayout() Layout {
	return Layout{
		PageSize:       pageSizes["A4"],
		MarginPt:       36,
		HeaderText:     "BARCODES",
		HeaderFill:     color.RGBA{R: 128, G: 128, B: 128, A: 255},
		HeaderPadding:  5,
		HeaderFontSize: 12,
		CellPadding:    Padding{Top: 100, Right: 10, Bottom: 25, Left: 10},
		ModuleWidth:    0.33,
		BarHeight:      15,
		Caption:        true,
		CaptionSize:    8,
		LogoHeight:     10,
	}
}

// columnWidth 获取列宽
// 返回: float64 列宽
func (l Layout) columnWidth() float64 {
	if l.ColumnWidth > 0 {
		return l.ColumnWidth
	}
	return l.PageSize.W / 2
}

// SymbolWidth 计算条码绘制宽度
// 入参: modules 模块数
// 返回: float64 宽度(毫米), bool 是否被压缩到单元格内容宽度
func (l Layout) SymbolWidth(modules int) (float64, bool) {
	pad := l.CellPadding.mm()
	maxW := l.columnWidth() - pad.Left - pad.Right
	w := float64(modules) * l.ModuleWidth
	if w <= 0 {
		return maxW, false
	}
	if w > maxW {
		return maxW, true
	}
	return w, false
}

// check 校验版式
// 返回: error 错误信息
func (l Layout) check() error {
	margin := PtToMM(l.MarginPt)
	if l.PageSize.W <= 0 || l.PageSize.H <= 0 {
		return argError("page size %gx%g", l.PageSize.W, l.PageSize.H)
	}
	if l.MarginPt < 0 || 2*margin >= l.PageSize.W || 2*margin >= l.PageSize.H {
		return argError("margin %gpt does not fit the page", l.MarginPt)
	}
	if w := l.columnWidth(); margin+w > l.PageSize.W-margin {
		return argError("column width %gmm exceeds the printable width", w)
	}
	pad := l.CellPadding.mm()
	if pad.Left+pad.Right >= l.columnWidth() {
		return argError("cell padding %s leaves no room for the symbol", l.CellPadding)
	}
	if l.ModuleWidth <= 0 || l.BarHeight <= 0 {
		return argError("module width and bar height must be positive")
	}
	if l.HeaderFontSize <= 0 || l.Caption && l.CaptionSize <= 0 {
		return argError("font sizes must be positive")
	}
	return nil
}

// RowKind 表格行类型
type RowKind int

const (
	// RowHeader 表头行
	RowHeader RowKind = iota
	// RowSymbol 条码行
	RowSymbol
)

// Row 已排版的表格行
// Box 原点位于页面左上角, Symbol 为 RowSymbol 行对应的条码序号
type Row struct {
	Kind   RowKind
	Page   int
	Box    Box
	Symbol int
}

// Report 条码报表
type Report struct {
	Layout     Layout
	DPI        float64
	fontPath   string
	fontFamily *canvas.FontFamily
	logo       image.Image
	rows       []Row
	pages      []*canvas.Canvas
}

// ReportOption 报表配置选项
type ReportOption func(*Report)

// NewReport 创建报表
// 入参: opts 报表选项
// 返回: *Report 报表实例, error 错误信息
func NewReport(opts ...ReportOption) (*Report, error) {
	r := &Report{
		Layout: DefaultLayout(),
		DPI:    150.0,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Layout.check(); err != nil {
		return nil, err
	}
	ff, err := loadFontFamily(r.fontPath)
	if err != nil {
		return nil, err
	}
	r.fontFamily = ff
	return r, nil
}

// WithLayout 设置报表版式
// 入参: layout 版式
// 返回: ReportOption 报表选项
func WithLayout(layout Layout) ReportOption {
	return func(r *Report) {
		r.Layout = layout
	}
}

// WithDPI 设置预览图DPI
// 入参: dpi DPI值
// 返回: ReportOption 报表选项
func WithDPI(dpi float64) ReportOption {
	return func(r *Report) {
		if dpi > 0 {
			r.DPI = dpi
		}
	}
}

// WithFontFile 设置外部字体文件
// 入参: path 字体文件路径
// 返回: ReportOption 报表选项
func WithFontFile(path string) ReportOption {
	return func(r *Report) {
		r.fontPath = path
	}
}

// WithLogo 设置表头徽标
// 入参: img 徽标图像
// 返回: ReportOption 报表选项
func WithLogo(img image.Image) ReportOption {
	return func(r *Report) {
		r.logo = img
	}
}

// Assemble 排版并绘制全部页面
// 入参: symbols 条码列表
// 返回: error 错误信息
func (r *Report) Assemble(symbols []Symbol) error {
	if r.fontFamily == nil {
		return fmt.Errorf("report not initialized, use NewReport")
	}
	r.rows = r.plan(symbols)
	pageCount := r.rows[len(r.rows)-1].Page + 1
	r.pages = make([]*canvas.Canvas, 0, pageCount)
	contexts := make([]*canvas.Context, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		c := canvas.New(r.Layout.PageSize.W, r.Layout.PageSize.H)
		ctx := canvas.NewContext(c)
		ctx.SetFillColor(canvas.White)
		ctx.DrawPath(0, 0, canvas.Rectangle(c.W, c.H))
		r.pages = append(r.pages, c)
		contexts = append(contexts, ctx)
	}
	for _, row := range r.rows {
		ctx := contexts[row.Page]
		switch row.Kind {
		case RowHeader:
			r.drawHeader(ctx, row.Box)
		case RowSymbol:
			r.drawSymbol(ctx, row.Box, symbols[row.Symbol])
		}
	}
	return nil
}

// Rows 获取已排版的表格行
// 返回: []Row 表格行
func (r *Report) Rows() []Row {
	return r.rows
}

// PageCount 获取页数
// 返回: int 页数
func (r *Report) PageCount() int {
	return len(r.pages)
}

// plan 计算表格行的位置, 行不跨页
// 入参: symbols 条码列表
// 返回: []Row 表格行
func (r *Report) plan(symbols []Symbol) []Row {
	l := r.Layout
	margin := PtToMM(l.MarginPt)
	bottom := l.PageSize.H - margin
	width := l.columnWidth()
	rows := make([]Row, 0, len(symbols)+1)
	page, y := 0, margin
	place := func(kind RowKind, h float64, idx int) {
		if y+h > bottom && y > margin {
			page++
			y = margin
		}
		rows = append(rows, Row{Kind: kind, Page: page, Box: Box{X: margin, Y: y, W: width, H: h}, Symbol: idx})
		y += h
	}
	place(RowHeader, r.headerHeight(), -1)
	for i := range symbols {
		place(RowSymbol, r.symbolHeight(), i)
	}
	return rows
}

// headerHeight 表头行高度
// 返回: float64 高度
func (r *Report) headerHeight() float64 {
	content := PtToMM(r.Layout.HeaderFontSize) * 1.2
	if r.logo != nil && r.Layout.LogoHeight > content {
		content = r.Layout.LogoHeight
	}
	return content + 2*PtToMM(r.Layout.HeaderPadding)
}

// symbolHeight 条码行高度
// 返回: float64 高度
func (r *Report) symbolHeight() float64 {
	pad := r.Layout.CellPadding.mm()
	return pad.Top + r.Layout.BarHeight + r.captionHeight() + pad.Bottom
}

// captionHeight 条码说明文字高度
// 返回: float64 高度
func (r *Report) captionHeight() float64 {
	if !r.Layout.Caption {
		return 0
	}
	return 1.0 + PtToMM(r.Layout.CaptionSize)*1.2
}

// drawHeader 绘制表头
// 入参: ctx 画布上下文, box 行区域
func (r *Report) drawHeader(ctx *canvas.Context, box Box) {
	pageH := r.Layout.PageSize.H
	ctx.Push()
	ctx.SetFillColor(r.Layout.HeaderFill)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(PtToMM(0.5))
	ctx.DrawPath(box.X, pageH-(box.Y+box.H), canvas.Rectangle(box.W, box.H))
	ctx.Pop()
	pad := PtToMM(r.Layout.HeaderPadding)
	if r.logo != nil {
		h := box.H - 2*pad
		r.drawImage(ctx, r.logo, box.X+pad, box.Y+pad, 0, h)
	}
	sizeMM := PtToMM(r.Layout.HeaderFontSize)
	face := r.fontFamily.Face(r.Layout.HeaderFontSize, canvas.Black, canvas.FontBold, canvas.FontNormal)
	baseline := box.Y + box.H/2 + sizeMM*0.35
	ctx.DrawText(box.X+box.W/2, pageH-baseline, canvas.NewTextLine(face, r.Layout.HeaderText, canvas.Center))
}

// drawSymbol 绘制条码单元格, 单元格无边框
// 入参: ctx 画布上下文, box 行区域, sym 条码
func (r *Report) drawSymbol(ctx *canvas.Context, box Box, sym Symbol) {
	pad := r.Layout.CellPadding.mm()
	w, _ := r.Layout.SymbolWidth(sym.Modules)
	x, y := box.X+pad.Left, box.Y+pad.Top
	r.drawImage(ctx, sym.Image, x, y, w, r.Layout.BarHeight)
	if !r.Layout.Caption {
		return
	}
	face := r.fontFamily.Face(r.Layout.CaptionSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	baseline := y + r.Layout.BarHeight + r.captionHeight() - PtToMM(r.Layout.CaptionSize)*0.3
	ctx.DrawText(x+w/2, r.Layout.PageSize.H-baseline, canvas.NewTextLine(face, sym.Label, canvas.Center))
}

// drawImage 绘制图像
// w 或 h 为 0 时按图像比例计算
// 入参: ctx 画布上下文, img 图像, x 左边距, y 上边距, w 宽度, h 高度
func (r *Report) drawImage(ctx *canvas.Context, img image.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())
	if imgW <= 0 || imgH <= 0 {
		return
	}
	if w <= 0 {
		w = h * imgW / imgH
	}
	if h <= 0 {
		h = w * imgH / imgW
	}
	ctx.Push()
	ctx.Translate(x, r.Layout.PageSize.H-(y+h))
	ctx.Scale(w/imgW, h/imgH)
	ctx.DrawImage(0, 0, img, canvas.DPMM(1.0))
	ctx.Pop()
}

// WritePDF 输出为多页PDF
// 入参: writer 输出流
// 返回: error 错误信息
func (r *Report) WritePDF(writer io.Writer) error {
	if len(r.pages) == 0 {
		return fmt.Errorf("report has not been assembled")
	}
	var p *pdf.PDF
	for i, c := range r.pages {
		if i == 0 {
			p = pdf.New(writer, c.W, c.H, nil)
		} else {
			p.NewPage(c.W, c.H)
		}
		c.RenderTo(p)
	}
	return p.Close()
}

// WriteFile 将PDF写入文件, 失败时不留下残缺文件
// 入参: path 文件路径
// 返回: error 错误信息
func (r *Report) WriteFile(path string) error {
	if len(r.pages) == 0 {
		return fmt.Errorf("report has not been assembled")
	}
	return writeFileAtomic(path, r.WritePDF)
}

// RenderPageToImage 渲染指定页为光栅图
// 入参: index 页面索引
// 返回: image.Image 图像对象, error 错误信息
func (r *Report) RenderPageToImage(index int) (image.Image, error) {
	if index < 0 || index >= len(r.pages) {
		return nil, fmt.Errorf("page index %d out of range", index)
	}
	dpmm := r.DPI / 25.4
	return rasterizer.Draw(r.pages[index], canvas.DPMM(dpmm), canvas.DefaultColorSpace), nil
}

// WritePreview 将首页渲染为PNG写入文件
// 入参: path 文件路径
// 返回: error 错误信息
func (r *Report) WritePreview(path string) error {
	img, err := r.RenderPageToImage(0)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// AssembleReport 排版条码并写出PDF
// 入参: symbols 条码列表, outputPath 输出路径, opts 报表选项
// 返回: *Report 报表实例, error 错误信息
func AssembleReport(symbols []Symbol, outputPath string, opts ...ReportOption) (*Report, error) {
	r, err := NewReport(opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Assemble(symbols); err != nil {
		return nil, err
	}
	if err := r.WriteFile(outputPath); err != nil {
		return nil, err
	}
	return r, nil
}
