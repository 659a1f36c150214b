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
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitTo delivered 和 cancelled 是终态，不允许回退
func (s Status) CanTransitTo(next Status) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

type Order struct {
	ID            int64
	SN            string
	BuyerID       int64
	Lines         []OrderLine
	Address       ShippingAddress
	PaymentMethod PaymentMethod
	ItemsPrice    decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
	Paid          bool
	PaidAt        int64
	Status        Status
	Logistics     Logistics
	Ctime         int64
	Utime         int64
}

// Dispatched 物流服务商一旦写入就不会再变
func (o Order) Dispatched() bool {
	return o.Logistics.Provider != ""
}

// CashToCollect 货到付款且还没有收款时，需要物流代收的金额
func (o Order) CashToCollect() decimal.Decimal {
	if o.PaymentMethod == PaymentMethodCOD && !o.Paid {
		return o.TotalPrice
	}
	return decimal.Zero
}

func (o Order) ItemQuantity() int64 {
	var cnt int64
	for _, l := range o.Lines {
		cnt += l.Quantity
	}
	return cnt
}

// OrderLine 下单时的商品快照，之后商品变化不会影响它
type OrderLine struct {
	ProductID int64
	Name      string
	Slug      string
	Image     string
	Price     decimal.Decimal
	Quantity  int64
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

type ShippingAddress struct {
	FullName   string
	Phone      string
	Address    string
	District   string
	City       string
	PostalCode string
	Country    string
}

type Logistics struct {
	Provider    string
	TrackingID  string
	RawResponse string
	SentAt      int64
}

// PlaceOrder 买家提交的订单，价格都是买家看到的价格
type PlaceOrder struct {
	BuyerID       int64
	RequestID     string
	Lines         []PlaceOrderLine
	Address       ShippingAddress
	PaymentMethod PaymentMethod
	ItemsPrice    decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
}

type PlaceOrderLine struct {
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}
