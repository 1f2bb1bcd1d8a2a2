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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// symbolsFor 渲染测试用条码
func symbolsFor(t *testing.T, n int) []Symbol {
	t.Helper()
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Label: fmt.Sprintf("L%03d", i), Payload: fmt.Sprintf("P%03d", i)}
	}
	symbols, err := quietRenderer().Render(entries)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return symbols
}

func newTestReport(t *testing.T, opts ...ReportOption) *Report {
	t.Helper()
	r, err := NewReport(opts...)
	if err != nil {
		t.Fatalf("new report: %v", err)
	}
	return r
}

func TestReportRows(t *testing.T) {
	r := newTestReport(t)
	if err := r.Assemble(symbolsFor(t, 3)); err != nil {
		t.Fatalf("assemble: %v", err)
	}
	rows := r.Rows()
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	headers := 0
	for i, row := range rows {
		if row.Kind == RowHeader {
			headers++
			continue
		}
		if row.Symbol != i-1 {
			t.Errorf("row %d symbol = %d, want %d", i, row.Symbol, i-1)
		}
	}
	if headers != 1 || rows[0].Kind != RowHeader {
		t.Errorf("want exactly one header in the first row, got %d", headers)
	}
	wantW := r.Layout.PageSize.W / 2
	for i, row := range rows {
		if row.Box.W != wantW {
			t.Errorf("row %d width = %g, want %g", i, row.Box.W, wantW)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	r, err := AssembleReport(nil, path)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(r.Rows()) != 1 || r.PageCount() != 1 {
		t.Errorf("got %d rows on %d pages, want 1 row on 1 page", len(r.Rows()), r.PageCount())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", data[:min(len(data), 8)])
	}
}

func TestReportPagination(t *testing.T) {
	r := newTestReport(t)
	if err := r.Assemble(symbolsFor(t, 10)); err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if r.PageCount() < 2 {
		t.Fatalf("got %d pages, want several", r.PageCount())
	}
	margin := PtToMM(r.Layout.MarginPt)
	bottom := r.Layout.PageSize.H - margin
	prevPage := 0
	for i, row := range r.Rows() {
		if row.Box.Y < margin || row.Box.Y+row.Box.H > bottom+1e-9 {
			t.Errorf("row %d [%g, %g] leaves the printable area", i, row.Box.Y, row.Box.Y+row.Box.H)
		}
		if row.Page < prevPage || row.Page > prevPage+1 {
			t.Errorf("row %d jumps from page %d to %d", i, prevPage, row.Page)
		}
		if i > 0 && row.Kind == RowHeader {
			t.Errorf("row %d repeats the header", i)
		}
		prevPage = row.Page
	}
	if last := r.Rows()[len(r.Rows())-1].Page; last+1 != r.PageCount() {
		t.Errorf("last row on page %d, page count %d", last, r.PageCount())
	}
}

func TestReportValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	r, err := AssembleReport(symbolsFor(t, 6), path)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	pages, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if pages != r.PageCount() {
		t.Errorf("pdf has %d pages, report %d", pages, r.PageCount())
	}
}

func TestReportWriteFileMissingDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.pdf")
	_, err := AssembleReport(symbolsFor(t, 1), path)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("left %d files behind", len(entries))
	}
}

func TestReportWriteFileUnassembled(t *testing.T) {
	r := newTestReport(t)
	if err := r.WriteFile(filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Fatal("want error for unassembled report")
	}
}

func TestReportRenderPageToImage(t *testing.T) {
	r := newTestReport(t, WithDPI(72))
	if err := r.Assemble(symbolsFor(t, 2)); err != nil {
		t.Fatalf("assemble: %v", err)
	}
	img, err := r.RenderPageToImage(0)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Errorf("empty preview %v", b)
	}
	if _, err := r.RenderPageToImage(r.PageCount()); err == nil {
		t.Error("want error for out of range page")
	}
}

func TestReportLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"padding", func(l *Layout) { l.CellPadding = Padding{Left: 400, Right: 400} }},
		{"margin", func(l *Layout) { l.MarginPt = 1000 }},
		{"column", func(l *Layout) { l.ColumnWidth = 500 }},
		{"module", func(l *Layout) { l.ModuleWidth = 0 }},
		{"font", func(l *Layout) { l.HeaderFontSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			if _, err := NewReport(WithLayout(l)); !errors.Is(err, ErrArgument) {
				t.Errorf("err = %v, want ErrArgument", err)
			}
		})
	}
}

func TestLayoutSymbolWidth(t *testing.T) {
	l := DefaultLayout()
	pad := l.CellPadding.mm()
	maxW := l.PageSize.W/2 - pad.Left - pad.Right
	tests := []struct {
		modules  int
		want     float64
		squeezed bool
	}{
		{100, 100 * l.ModuleWidth, false},
		{1000, maxW, true},
		{0, maxW, false},
	}
	for _, tt := range tests {
		w, squeezed := l.SymbolWidth(tt.modules)
		if w != tt.want || squeezed != tt.squeezed {
			t.Errorf("SymbolWidth(%d) = %g, %v; want %g, %v", tt.modules, w, squeezed, tt.want, tt.squeezed)
		}
	}
}

func TestReportLogoHeader(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := range logo.Pix {
		logo.Pix[i] = 0xff
	}
	logo.Set(1, 1, color.Black)

	plain := newTestReport(t)
	withLogo := newTestReport(t, WithLogo(logo))
	if err := plain.Assemble(nil); err != nil {
		t.Fatal(err)
	}
	if err := withLogo.Assemble(nil); err != nil {
		t.Fatal(err)
	}
	h := withLogo.Rows()[0].Box.H
	if h < withLogo.Layout.LogoHeight {
		t.Errorf("header height %g below logo height %g", h, withLogo.Layout.LogoHeight)
	}
	if h <= plain.Rows()[0].Box.H {
		t.Errorf("logo header %g not taller than plain header %g", h, plain.Rows()[0].Box.H)
	}
}
