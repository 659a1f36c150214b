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

var _ Client = (*RedX)(nil)

type RedXConfig struct {
	BaseURL     string `yaml:"baseURL"`
	AccessToken string `yaml:"accessToken"`
	// ParcelWeight 单位是克
	ParcelWeight int64 `yaml:"parcelWeight"`
}

type RedX struct {
	cfg    RedXConfig
	client *http.Client
}

func NewRedX(cfg RedXConfig, client *http.Client) *RedX {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openapi.redx.com.bd"
	}
	if cfg.ParcelWeight <= 0 {
		cfg.ParcelWeight = 500
	}
	return &RedX{cfg: cfg, client: client}
}

func (r *RedX) Provider() domain.Provider {
	return domain.ProviderRedX
}

func (r *RedX) Ready() error {
	if r.cfg.AccessToken == "" {
		return missing(r.Provider(), "accessToken")
	}
	return nil
}

type redxParcelReq struct {
	CustomerName         string `json:"customer_name"`
	CustomerPhone        string `json:"customer_phone"`
	DeliveryArea         string `json:"delivery_area"`
	CustomerAddress      string `json:"customer_address"`
	MerchantInvoiceID    string `json:"merchant_invoice_id"`
	CashCollectionAmount string `json:"cash_collection_amount"`
	ParcelWeight         int64  `json:"parcel_weight"`
	Instruction          string `json:"instruction,omitempty"`
	Value                string `json:"value"`
}

type redxParcelResp struct {
	TrackingID string `json:"tracking_id"`
	Message    string `json:"message"`
}

func (r *RedX) Send(ctx context.Context, shipment domain.Shipment) (domain.DispatchResult, error) {
	req := httpx.NewRequest(ctx, http.MethodPost, strings.TrimRight(r.cfg.BaseURL, "/")+"/v1.0.0-beta/parcel").
		Client(r.client).
		AddHeader("API-ACCESS-TOKEN", "Bearer "+r.cfg.AccessToken).
		JSONBody(redxParcelReq{
			CustomerName:         shipment.RecipientName,
			CustomerPhone:        shipment.RecipientPhone,
			DeliveryArea:         shipment.District,
			CustomerAddress:      fullAddress(shipment),
			MerchantInvoiceID:    shipment.OrderSN,
			CashCollectionAmount: shipment.CashToCollect.String(),
			ParcelWeight:         r.cfg.ParcelWeight,
			Instruction:          shipment.Note,
			Value:                shipment.Value.String(),
		})
	raw, status, err := doJSON(req, r.Provider())
	if err != nil {
		return domain.DispatchResult{}, err
	}
	var resp redxParcelResp
	_ = json.Unmarshal(raw, &resp)
	if status < http.StatusOK || status >= http.StatusMultipleChoices || resp.TrackingID == "" {
		return rejected(r.Provider(), status, resp.Message, raw)
	}
	return domain.DispatchResult{
		Provider:   r.Provider(),
		Success:    true,
		TrackingID: resp.TrackingID,
		Message:    resp.Message,
		Raw:        raw,
	}, nil
}
