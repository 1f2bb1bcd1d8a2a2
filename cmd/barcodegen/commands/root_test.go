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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiaoqidun/barcodegen"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunSynthThenGenerate(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "list.xml")
	pdfPath := filepath.Join(dir, "out.pdf")

	out, _, err := execute(t, "synth", "-o", xmlPath, "(01) AAA (17) 1", "(01) AAA (17) 1", "(01) AAA (17) 2")
	if err != nil {
		t.Fatalf("synth: %v", err)
	}
	if !strings.Contains(out, "(3 entries)") {
		t.Errorf("synth output = %q", out)
	}

	out, _, err = execute(t, "-o", pdfPath, "-t", "file", "-p", xmlPath, "-v")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Output: "+pdfPath) {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(out, "labels: 2, rendered: 2") {
		t.Errorf("stats missing from %q", out)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		t.Errorf("pdf missing: %v", err)
	}
}

func TestRunMissingOutput(t *testing.T) {
	_, stderr, err := execute(t, "-t", "FILE", "-p", "list.xml")
	if !errors.Is(err, barcodegen.ErrArgument) {
		t.Fatalf("err = %v, want ErrArgument", err)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr lacks usage: %q", stderr)
	}
}

func TestRunMissingXMLType(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := execute(t, "-o", filepath.Join(dir, "out.pdf"), "-p", filepath.Join(dir, "list.xml"))
	if !errors.Is(err, barcodegen.ErrArgument) {
		t.Fatalf("err = %v, want ErrArgument", err)
	}
	if !strings.Contains(stderr, "xml type is required") || !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q", stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestRunBadFlag(t *testing.T) {
	_, _, err := execute(t, "--bogus")
	if !errors.Is(err, barcodegen.ErrArgument) {
		t.Fatalf("err = %v, want ErrArgument", err)
	}
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := execute(t, "-o", filepath.Join(dir, "out.pdf"), "-t", "FILE", "-p", filepath.Join(dir, "absent.xml"))
	if !errors.Is(err, barcodegen.ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if strings.Contains(stderr, "Usage:") {
		t.Errorf("usage printed for an io error: %q", stderr)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "list.xml")
	if err := barcodegen.Synthesize([]string{"A1", "B2"}).WriteFile(xmlPath); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "barcodegen.yaml")
	cfg := "source:\n  type: FILE\n  path: " + xmlPath + "\npage:\n  size: A5\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	pdfPath := filepath.Join(dir, "out.pdf")
	if _, _, err := execute(t, "--config", cfgPath, "-o", pdfPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		t.Errorf("pdf missing: %v", err)
	}
}

func TestRunSynthRequiresOutput(t *testing.T) {
	_, _, err := execute(t, "synth")
	if !errors.Is(err, barcodegen.ErrArgument) {
		t.Fatalf("err = %v, want ErrArgument", err)
	}
}

func TestRunVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "barcodegen dev\n" {
		t.Errorf("version output = %q", out)
	}
}
