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
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		in   string
		want SourceType
		ok   bool
	}{
		{"URL", SourceURL, true},
		{"url", SourceURL, true},
		{"FILE", SourceFile, true},
		{" File ", SourceFile, true},
		{"ftp", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseSourceType(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseSourceType(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrArgument) {
			t.Errorf("ParseSourceType(%q) err = %v, want ErrArgument", tt.in, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	src := Source{Type: SourceFile, Location: filepath.Join(t.TempDir(), "absent.xml")}
	_, err := Load(context.Background(), src)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi-bin/barcodes" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	src := Source{Type: SourceURL, Location: srv.URL + "/cgi-bin/barcodes", Client: srv.Client()}
	catalog, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog.Entries) != 3 {
		t.Errorf("got %d entries, want 3", len(catalog.Entries))
	}

	src.Location = srv.URL + "/missing"
	if _, err := Load(context.Background(), src); !errors.Is(err, ErrIO) {
		t.Errorf("404 err = %v, want ErrIO", err)
	}
}

func TestLoadURLTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	src := Source{Type: SourceURL, Location: srv.URL, Client: newHTTPClient(100 * time.Millisecond)}
	start := time.Now()
	_, err := Load(context.Background(), src)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("load took %v, want it bounded by the timeout", elapsed)
	}
}

func TestLoadBadURL(t *testing.T) {
	for _, loc := range []string{"::not a url", "ftp://example.com/list.xml", "http://127.0.0.1:1/list.xml"} {
		src := Source{Type: SourceURL, Location: loc, Client: newHTTPClient(2 * time.Second)}
		if _, err := Load(context.Background(), src); !errors.Is(err, ErrIO) {
			t.Errorf("Load(%q) err = %v, want ErrIO", loc, err)
		}
	}
}

func TestLoadEmptyLocation(t *testing.T) {
	_, err := Load(context.Background(), Source{Type: SourceFile})
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("err = %v, want ErrArgument", err)
	}
}
