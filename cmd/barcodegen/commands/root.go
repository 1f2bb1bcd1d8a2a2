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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiaoqidun/barcodegen"
)

// version 由构建参数注入
var version = "dev"

// Execute 执行命令行
// 入参: ctx 上下文
// 返回: error 错误信息
func Execute(ctx context.Context) error {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run 以指定参数和输出执行命令行
// 入参: ctx 上下文, args 参数, stdout 标准输出, stderr 标准错误
// 返回: error 错误信息
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "barcodegen: %v\n", err)
		if errors.Is(err, barcodegen.ErrArgument) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}
	root := &cobra.Command{
		Use:           "barcodegen -o <output.pdf> -t <URL|FILE> -p <url-or-path>",
		Short:         "Builds a PDF of Code128 barcodes from an XML barcode list",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", barcodegen.ErrArgument, err)
	})
	opts.bind(root)
	root.AddCommand(synthCmd(), versionCmd())
	return root
}

// newLogger 创建输出到标准错误的日志记录器
// 入参: w 输出流, verbose 是否输出调试日志
// 返回: *slog.Logger 日志记录器
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
