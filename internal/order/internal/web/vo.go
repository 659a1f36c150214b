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

package web

import (
	"fmt"

	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (p Page) normalize() (int, int) {
	offset, limit := p.Offset, p.Limit
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return offset, limit
}

type SNReq struct {
	SN string `json:"sn"`
}

type ListOrdersReq struct {
	Page
	// Status 为空表示全部
	Status string `json:"status,omitempty"`
}

type UpdateStatusReq struct {
	SN     string `json:"sn"`
	Status string `json:"status"`
}

type DispatchReq struct {
	SN       string `json:"sn"`
	Provider string `json:"provider"`
	// Note 给快递员的备注
	Note string `json:"note,omitempty"`
}

// CreateOrderReq 金额都用字符串传递，按买家看到的价格提交
type CreateOrderReq struct {
	RequestID     string          `json:"requestID"`
	Items         []OrderItemReq  `json:"items"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	ItemsPrice    string          `json:"itemsPrice"`
	ShippingPrice string          `json:"shippingPrice"`
	TotalPrice    string          `json:"totalPrice"`
}

type OrderItemReq struct {
	ProductID int64  `json:"productID"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
}

func (r CreateOrderReq) toDomain(buyerID int64) (domain.PlaceOrder, error) {
	po := domain.PlaceOrder{
		BuyerID:       buyerID,
		RequestID:     r.RequestID,
		Address:       r.Address.toDomain(),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Lines:         make([]domain.PlaceOrderLine, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		price, err := parseMoney("price", item.Price)
		if err != nil {
			return domain.PlaceOrder{}, err
		}
		po.Lines = append(po.Lines, domain.PlaceOrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	var err error
	if po.ItemsPrice, err = parseMoney("itemsPrice", r.ItemsPrice); err != nil {
		return domain.PlaceOrder{}, err
	}
	if po.ShippingPrice, err = parseMoney("shippingPrice", r.ShippingPrice); err != nil {
		return domain.PlaceOrder{}, err
	}
	if po.TotalPrice, err = parseMoney("totalPrice", r.TotalPrice); err != nil {
		return domain.PlaceOrder{}, err
	}
	return po, nil
}

func parseMoney(field, val string) (decimal.Decimal, error) {
	res, err := decimal.NewFromString(val)
	if err != nil || res.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", domain.ErrInvalidOrder, field, val)
	}
	return res, nil
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	District   string `json:"district"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (a ShippingAddress) toDomain() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:   a.FullName,
		Phone:      a.Phone,
		Address:    a.Address,
		District:   a.District,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	Image     string `json:"image,omitempty"`
	Price     string `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type Logistics struct {
	Provider   string `json:"provider,omitempty"`
	TrackingID string `json:"trackingID,omitempty"`
	SentAt     int64  `json:"sentAt,omitempty"`
	// Response 服务商原始响应，只给管理员看
	Response string `json:"response,omitempty"`
}

type Order struct {
	SN            string          `json:"sn"`
	BuyerID       int64           `json:"buyerID,omitempty"`
	Items         []OrderItem     `json:"items"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	ItemsPrice    string          `json:"itemsPrice"`
	ShippingPrice string          `json:"shippingPrice"`
	TotalPrice    string          `json:"totalPrice"`
	Paid          bool            `json:"paid"`
	PaidAt        int64           `json:"paidAt,omitempty"`
	Status        string          `json:"status"`
	Logistics     Logistics       `json:"logistics"`
	Ctime         int64           `json:"ctime"`
	Utime         int64           `json:"utime"`
}

func newOrder(o domain.Order) Order {
	return Order{
		SN: o.SN,
		Items: slice.Map(o.Lines, func(idx int, src domain.OrderLine) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				Slug:      src.Slug,
				Image:     src.Image,
				Price:     src.Price.StringFixed(2),
				Quantity:  src.Quantity,
			}
		}),
		Address: ShippingAddress{
			FullName:   o.Address.FullName,
			Phone:      o.Address.Phone,
			Address:    o.Address.Address,
			District:   o.Address.District,
			City:       o.Address.City,
			PostalCode: o.Address.PostalCode,
			Country:    o.Address.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		ItemsPrice:    o.ItemsPrice.StringFixed(2),
		ShippingPrice: o.ShippingPrice.StringFixed(2),
		TotalPrice:    o.TotalPrice.StringFixed(2),
		Paid:          o.Paid,
		PaidAt:        o.PaidAt,
		Status:        o.Status.String(),
		Logistics: Logistics{
			Provider:   o.Logistics.Provider,
			TrackingID: o.Logistics.TrackingID,
			SentAt:     o.Logistics.SentAt,
		},
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

// newAdminOrder 比买家多看到买家 ID 和物流原始响应
func newAdminOrder(o domain.Order) Order {
	res := newOrder(o)
	res.BuyerID = o.BuyerID
	res.Logistics.Response = o.Logistics.RawResponse
	return res
}

type OrderList struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type DispatchResult struct {
	Provider   string `json:"provider"`
	Success    bool   `json:"success"`
	TrackingID string `json:"trackingID,omitempty"`
	Message    string `json:"message,omitempty"`
	// Response 服务商的原始响应
	Response string `json:"response,omitempty"`
}

type DispatchResp struct {
	Order  *Order         `json:"order,omitempty"`
	Result DispatchResult `json:"result"`
}

type Provider struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

func newDispatchResult(r logistics.DispatchResult) DispatchResult {
	return DispatchResult{
		Provider:   r.Provider.String(),
		Success:    r.Success,
		TrackingID: r.TrackingID,
		Message:    r.Message,
		Response:   string(r.Raw),
	}
}
