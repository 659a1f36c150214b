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
	"net/http"
	"strings"

	"github.com/ecodeclub/dokan/internal/logistics/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
)

var _ Client = (*Steadfast)(nil)

type SteadfastConfig struct {
	BaseURL   string `yaml:"baseURL"`
	APIKey    string `yaml:"apiKey"`
	SecretKey string `yaml:"secretKey"`
}

type Steadfast struct {
	cfg    SteadfastConfig
	client *http.Client
}

func NewSteadfast(cfg SteadfastConfig, client *http.Client) *Steadfast {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://portal.packzy.com"
	}
	return &Steadfast{cfg: cfg, client: client}
}

func (s *Steadfast) Provider() domain.Provider {
	return domain.ProviderSteadfast
}

func (s *Steadfast) Ready() error {
	var fields []string
	if s.cfg.APIKey == "" {
		fields = append(fields, "apiKey")
	}
	if s.cfg.SecretKey == "" {
		fields = append(fields, "secretKey")
	}
	if len(fields) > 0 {
		return missing(s.Provider(), fields...)
	}
	return nil
}

type steadfastOrderReq struct {
	Invoice          string      `json:"invoice"`
	RecipientName    string      `json:"recipient_name"`
	RecipientPhone   string      `json:"recipient_phone"`
	RecipientAddress string      `json:"recipient_address"`
	CodAmount        json.Number `json:"cod_amount"`
	Note             string      `json:"note,omitempty"`
}

type steadfastOrderResp struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Consignment struct {
		ConsignmentID int64  `json:"consignment_id"`
		TrackingCode  string `json:"tracking_code"`
		Status        string `json:"status"`
	} `json:"consignment"`
}

func (s *Steadfast) Send(ctx context.Context, shipment domain.Shipment) (domain.DispatchResult, error) {
	req := httpx.NewRequest(ctx, http.MethodPost, strings.TrimRight(s.cfg.BaseURL, "/")+"/api/v1/create_order").
		Client(s.client).
		AddHeader("Api-Key", s.cfg.APIKey).
		AddHeader("Secret-Key", s.cfg.SecretKey).
		JSONBody(steadfastOrderReq{
			Invoice:          shipment.OrderSN,
			RecipientName:    shipment.RecipientName,
			RecipientPhone:   shipment.RecipientPhone,
			RecipientAddress: fullAddress(shipment),
			CodAmount:        json.Number(shipment.CashToCollect.String()),
			Note:             shipment.Note,
		})
	raw, status, err := doJSON(req, s.Provider())
	if err != nil {
		return domain.DispatchResult{}, err
	}
	var resp steadfastOrderResp
	_ = json.Unmarshal(raw, &resp)
	if status != http.StatusOK || resp.Status != http.StatusOK || resp.Consignment.TrackingCode == "" {
		return rejected(s.Provider(), status, resp.Message, raw)
	}
	return domain.DispatchResult{
		Provider:   s.Provider(),
		Success:    true,
		TrackingID: resp.Consignment.TrackingCode,
		Message:    resp.Message,
		Raw:        raw,
	}, nil
}
