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

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiaoqidun/barcodegen"
)

// generateOptions 根命令参数
type generateOptions struct {
	config      string
	output      string
	xmlType     string
	xmlPath     string
	timeout     time.Duration
	pageSize    string
	skipInvalid bool
	validate    bool
	preview     string
	dpi         float64
	logo        string
	font        string
	verbose     bool
}

// bind 注册命令行参数
// 入参: cmd 命令
func (o *generateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "YAML file with layout and source settings")
	f.StringVarP(&o.output, "output", "o", "", "filename of the pdf output (required)")
	f.StringVarP(&o.xmlType, "xmlType", "t", "", "how the xml file is retrieved: URL or FILE (required)")
	f.StringVarP(&o.xmlPath, "xmlPath", "p", "", "url or filepath of the barcode list xml (required)")
	f.DurationVar(&o.timeout, "timeout", 0, "network timeout for URL sources (default 30s)")
	f.StringVar(&o.pageSize, "page-size", "", "page format: A3, A4, A5, LETTER, LEGAL or \"W H\" in mm (default A4)")
	f.BoolVar(&o.skipInvalid, "skip-invalid", false, "skip entries whose barcode cannot be encoded instead of failing")
	f.BoolVar(&o.validate, "validate", false, "validate the written pdf")
	f.StringVar(&o.preview, "preview", "", "also write the first page as PNG to this path")
	f.Float64Var(&o.dpi, "dpi", 0, "preview resolution (default 150)")
	f.StringVar(&o.logo, "logo", "", "image drawn in the header cell (png, jpeg, gif, jbig2)")
	f.StringVar(&o.font, "font", "", "TrueType/OpenType font file for header and captions")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log pipeline progress to stderr")
}

// load 合并配置文件与命令行参数, 命令行优先
// 入参: cmd 命令
// 返回: *barcodegen.Config 配置, error 错误信息
func (o *generateOptions) load(cmd *cobra.Command) (*barcodegen.Config, error) {
	cfg := barcodegen.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = barcodegen.LoadConfig(o.config); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("xmlType") {
		cfg.Source.Type = o.xmlType
	}
	if f.Changed("xmlPath") {
		cfg.Source.Path = o.xmlPath
	}
	if f.Changed("timeout") {
		cfg.Source.Timeout = o.timeout
	}
	if f.Changed("page-size") {
		cfg.Page.Size = o.pageSize
	}
	if f.Changed("skip-invalid") {
		cfg.SkipInvalid = o.skipInvalid
	}
	if f.Changed("validate") {
		cfg.ValidatePDF = o.validate
	}
	if f.Changed("preview") {
		cfg.Preview.Path = o.preview
	}
	if f.Changed("dpi") {
		cfg.Preview.DPI = o.dpi
	}
	if f.Changed("logo") {
		cfg.Logo = o.logo
	}
	if f.Changed("font") {
		cfg.Font = o.font
	}
	cfg.Logger = newLogger(cmd.ErrOrStderr(), o.verbose)
	return cfg, nil
}

// run 生成报表
// 入参: cmd 命令
// 返回: error 错误信息
func (o *generateOptions) run(cmd *cobra.Command) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}
	summary, err := barcodegen.Generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Output: %s\n", summary.Output)
	if o.verbose {
		fmt.Fprintf(out, "Entries: %d, labels: %d, rendered: %d, skipped: %d, pages: %d\n",
			summary.Entries, summary.Labels, summary.Rendered, len(summary.Skipped), summary.Pages)
	}
	if summary.Preview != "" {
		fmt.Fprintf(out, "Preview: %s\n", summary.Preview)
	}
	return nil
}
