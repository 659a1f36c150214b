// Copyright 2023 ecodeclub
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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecodeclub/dokan/internal/logistics/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
)

// Client 单个物流服务商的适配器
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=clientmocks Client
type Client interface {
	Provider() domain.Provider
	// Ready 只检查配置，不发起网络请求
	Ready() error
	Send(ctx context.Context, s domain.Shipment) (domain.DispatchResult, error)
}

// doJSON 发送请求，返回原始响应和状态码。网络错误、超时、响应不是 JSON 都算服务商错误
func doJSON(req *httpx.Request, p domain.Provider) (json.RawMessage, int, error) {
	resp := req.Do()
	if resp.Response != nil {
		// JSONScan 不会关闭 Body
		defer func() { _ = resp.Body.Close() }()
	}
	var raw json.RawMessage
	if err := resp.JSONScan(&raw); err != nil {
		return nil, 0, fmt.Errorf("%w: provider=%s, %w", domain.ErrProvider, p, err)
	}
	return raw, resp.StatusCode, nil
}

// rejected 服务商返回了响应但是没有接单，原始响应留给管理员排查
func rejected(p domain.Provider, status int, msg string, raw json.RawMessage) (domain.DispatchResult, error) {
	if msg == "" {
		msg = "未返回运单号"
	}
	return domain.DispatchResult{
			Provider: p,
			Message:  msg,
			Raw:      raw,
		}, fmt.Errorf("%w: provider=%s, status=%d, message=%s",
			domain.ErrProvider, p, status, msg)
}

func missing(p domain.Provider, fields ...string) error {
	return fmt.Errorf("%w: provider=%s, 缺少 %s", domain.ErrConfiguration, p, strings.Join(fields, ", "))
}

func fullAddress(s domain.Shipment) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{s.Address, s.City, s.District, s.PostalCode} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
