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

package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProvider = errors.New("未知的物流服务商")
	// ErrConfiguration 服务商配置缺失，需要运维介入
	ErrConfiguration = errors.New("物流服务商配置错误")
	// ErrProvider 服务商拒绝请求、响应异常或者超时
	ErrProvider = errors.New("物流服务商请求失败")
)

type Provider string

const (
	ProviderPathao    Provider = "pathao"
	ProviderSteadfast Provider = "steadfast"
	ProviderRedX      Provider = "redx"
)

func Providers() []Provider {
	return []Provider{ProviderPathao, ProviderSteadfast, ProviderRedX}
}

func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	switch p {
	case ProviderPathao, ProviderSteadfast, ProviderRedX:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

func (p Provider) String() string {
	return string(p)
}

// Shipment 发给服务商的运单，与服务商无关
type Shipment struct {
	OrderSN        string
	RecipientName  string
	RecipientPhone string
	Address        string
	District       string
	City           string
	PostalCode     string
	ItemQuantity   int64
	// ItemDescription 商品名称摘要
	ItemDescription string
	// Value 商品总价，用于保价
	Value decimal.Decimal
	// CashToCollect 货到付款时代收的金额，其余情况为 0
	CashToCollect decimal.Decimal
	Note          string
}

type DispatchResult struct {
	Provider   Provider
	Success    bool
	TrackingID string
	Message    string
	// Raw 服务商的原始响应
	Raw json.RawMessage
}

type ProviderStatus struct {
	Provider   Provider
	Configured bool
}
