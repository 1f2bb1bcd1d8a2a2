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
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiaoqidun/barcodegen"
)

func synthCmd() *cobra.Command {
	var output, input string
	cmd := &cobra.Command{
		Use:   "synth -o <catalog.xml> [raw-barcode ...]",
		Short: "Write a sample barcode list XML from raw barcode strings",
		Long: "Each raw string becomes a <Description>; the same string without parentheses\n" +
			"and spaces becomes the <Barcode>. Without arguments or --input a built-in sample list is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("%w: output path is required (-o)", barcodegen.ErrArgument)
			}
			raw := args
			if input != "" {
				lines, err := readLines(input)
				if err != nil {
					return err
				}
				raw = append(raw, lines...)
			}
			if len(raw) == 0 {
				raw = barcodegen.SampleBarcodes
			}
			catalog := barcodegen.Synthesize(raw)
			if err := catalog.WriteFile(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output: %s (%d entries)\n", output, len(catalog.Entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the xml file to write (required)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "text file with one raw barcode string per line")
	return cmd
}

// readLines 读取文本文件的所有行
// 入参: path 文件路径
// 返回: []string 行列表, error 错误信息
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", barcodegen.ErrIO, err)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", barcodegen.ErrIO, path, err)
	}
	return lines, nil
}
