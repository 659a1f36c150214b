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
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/dokan/internal/logistics/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
)

var _ Client = (*Pathao)(nil)

// TokenCache ecache.Cache 的子集
type TokenCache interface {
	Get(ctx context.Context, key string) ecache.Value
	Set(ctx context.Context, key string, val any, expiration time.Duration) error
}

type PathaoConfig struct {
	BaseURL      string `yaml:"baseURL"`
	ClientID     string `yaml:"clientID"`
	ClientSecret string `yaml:"clientSecret"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	StoreID      int64  `yaml:"storeID"`
	// ItemWeight 单位是千克
	ItemWeight float64 `yaml:"itemWeight"`
}

type Pathao struct {
	cfg    PathaoConfig
	cache  TokenCache
	client *http.Client
	logger *elog.Component
}

func NewPathao(cfg PathaoConfig, c TokenCache, client *http.Client) *Pathao {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-hermes.pathao.com"
	}
	if cfg.ItemWeight <= 0 {
		cfg.ItemWeight = 0.5
	}
	return &Pathao{cfg: cfg, cache: c, client: client, logger: elog.DefaultLogger}
}

func (p *Pathao) Provider() domain.Provider {
	return domain.ProviderPathao
}

func (p *Pathao) Ready() error {
	var fields []string
	if p.cfg.ClientID == "" {
		fields = append(fields, "clientID")
	}
	if p.cfg.ClientSecret == "" {
		fields = append(fields, "clientSecret")
	}
	if p.cfg.Username == "" {
		fields = append(fields, "username")
	}
	if p.cfg.Password == "" {
		fields = append(fields, "password")
	}
	if p.cfg.StoreID <= 0 {
		fields = append(fields, "storeID")
	}
	if len(fields) > 0 {
		return missing(p.Provider(), fields...)
	}
	return nil
}

type pathaoTokenReq struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

type pathaoTokenResp struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

type pathaoOrderReq struct {
	StoreID            int64   `json:"store_id"`
	MerchantOrderID    string  `json:"merchant_order_id"`
	RecipientName      string  `json:"recipient_name"`
	RecipientPhone     string  `json:"recipient_phone"`
	RecipientAddress   string  `json:"recipient_address"`
	DeliveryType       int     `json:"delivery_type"`
	ItemType           int     `json:"item_type"`
	ItemQuantity       int64   `json:"item_quantity"`
	ItemWeight         float64 `json:"item_weight"`
	ItemDescription    string  `json:"item_description,omitempty"`
	AmountToCollect    int64   `json:"amount_to_collect"`
	SpecialInstruction string  `json:"special_instruction,omitempty"`
}

type pathaoOrderResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		ConsignmentID   string `json:"consignment_id"`
		MerchantOrderID string `json:"merchant_order_id"`
		OrderStatus     string `json:"order_status"`
	} `json:"data"`
}

const (
	pathaoDeliveryNormal = 48
	pathaoItemParcel     = 2
)

func (p *Pathao) Send(ctx context.Context, shipment domain.Shipment) (domain.DispatchResult, error) {
	token, err := p.token(ctx)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	req := httpx.NewRequest(ctx, http.MethodPost, p.url("/aladdin/api/v1/orders")).
		Client(p.client).
		AddHeader("Authorization", "Bearer "+token).
		JSONBody(pathaoOrderReq{
			StoreID:          p.cfg.StoreID,
			MerchantOrderID:  shipment.OrderSN,
			RecipientName:    shipment.RecipientName,
			RecipientPhone:   shipment.RecipientPhone,
			RecipientAddress: fullAddress(shipment),
			DeliveryType:     pathaoDeliveryNormal,
			ItemType:         pathaoItemParcel,
			ItemQuantity:     shipment.ItemQuantity,
			ItemWeight:       p.cfg.ItemWeight,
			ItemDescription:  shipment.ItemDescription,
			// 只收整数金额
			AmountToCollect:    shipment.CashToCollect.Ceil().IntPart(),
			SpecialInstruction: shipment.Note,
		})
	raw, status, err := doJSON(req, p.Provider())
	if err != nil {
		return domain.DispatchResult{}, err
	}
	var resp pathaoOrderResp
	_ = json.Unmarshal(raw, &resp)
	if status != http.StatusOK || resp.Data.ConsignmentID == "" {
		return rejected(p.Provider(), status, resp.Message, raw)
	}
	return domain.DispatchResult{
		Provider:   p.Provider(),
		Success:    true,
		TrackingID: resp.Data.ConsignmentID,
		Message:    resp.Message,
		Raw:        raw,
	}, nil
}

func (p *Pathao) token(ctx context.Context) (string, error) {
	key := p.tokenKey()
	res := p.cache.Get(ctx, key)
	if res.Err == nil {
		if token, ok := res.Val.(string); ok && token != "" {
			return token, nil
		}
	} else if !res.KeyNotFound() {
		p.logger.Warn("读取 pathao token 缓存失败", elog.FieldErr(res.Err))
	}

	req := httpx.NewRequest(ctx, http.MethodPost, p.url("/aladdin/api/v1/issue-token")).
		Client(p.client).
		JSONBody(pathaoTokenReq{
			ClientID:     p.cfg.ClientID,
			ClientSecret: p.cfg.ClientSecret,
			GrantType:    "password",
			Username:     p.cfg.Username,
			Password:     p.cfg.Password,
		})
	raw, status, err := doJSON(req, p.Provider())
	if err != nil {
		return "", err
	}
	var resp pathaoTokenResp
	_ = json.Unmarshal(raw, &resp)
	if status != http.StatusOK || resp.AccessToken == "" {
		_, err = rejected(p.Provider(), status, resp.Message, raw)
		return "", fmt.Errorf("换取 access_token 失败 %w", err)
	}
	// 提前一分钟过期
	if ttl := time.Duration(resp.ExpiresIn)*time.Second - time.Minute; ttl > 0 {
		if err = p.cache.Set(ctx, key, resp.AccessToken, ttl); err != nil {
			p.logger.Warn("缓存 pathao token 失败", elog.FieldErr(err))
		}
	}
	return resp.AccessToken, nil
}

func (p *Pathao) tokenKey() string {
	return "logistics:pathao:token:" + p.cfg.ClientID
}

func (p *Pathao) url(path string) string {
	return strings.TrimRight(p.cfg.BaseURL, "/") + path
}
