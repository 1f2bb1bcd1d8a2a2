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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// SourceType 目录来源类型
type SourceType string

const (
	// SourceURL 通过网络地址获取
	SourceURL SourceType = "URL"
	// SourceFile 通过本地文件获取
	SourceFile SourceType = "FILE"
)

// DefaultTimeout 网络获取默认超时
const DefaultTimeout = 30 * time.Second

// ParseSourceType 解析来源类型, 不区分大小写
// 入参: s 类型字符串
// 返回: SourceType 来源类型, error 错误信息
func ParseSourceType(s string) (SourceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SourceURL):
		return SourceURL, nil
	case string(SourceFile):
		return SourceFile, nil
	}
	return "", argError("source type %q (use URL or FILE)", s)
}

// Source 目录来源
type Source struct {
	Type     SourceType
	Location string
	Client   *http.Client
}

// Open 打开目录数据流, 调用方负责关闭
// 入参: ctx 上下文
// 返回: io.ReadCloser 数据流, error 错误信息
func (s Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Location == "" {
		return nil, argError("empty source location")
	}
	switch s.Type {
	case SourceFile:
		f, err := os.Open(s.Location)
		if err != nil {
			return nil, ioError(err)
		}
		return f, nil
	case SourceURL:
		return s.fetch(ctx)
	}
	return nil, argError("source type %q (use URL or FILE)", s.Type)
}

// fetch 通过HTTP获取目录
// 入参: ctx 上下文
// 返回: io.ReadCloser 响应体, error 错误信息
func (s Source) fetch(ctx context.Context) (io.ReadCloser, error) {
	u, err := url.Parse(s.Location)
	if err != nil {
		return nil, ioError(fmt.Errorf("parse url %q: %w", s.Location, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, ioError(fmt.Errorf("unsupported url %q", s.Location))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ioError(err)
	}
	req.Header.Set("Accept", "application/xml, text/xml, */*")
	client := s.Client
	if client == nil {
		client = newHTTPClient(0)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, ioError(err)
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, ioError(fmt.Errorf("get %s: %s", u.Redacted(), resp.Status))
	}
	return resp.Body, nil
}

// newHTTPClient 创建带超时的HTTP客户端
// 入参: timeout 超时, 为 0 时使用默认值
// 返回: *http.Client 客户端
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Load 读取并解析目录
// 入参: ctx 上下文, src 目录来源
// 返回: *Catalog 目录, error 错误信息
func Load(ctx context.Context, src Source) (*Catalog, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseCatalog(rc)
}
