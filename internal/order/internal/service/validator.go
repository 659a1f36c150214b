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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/dokan/internal/catalog"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/shopspring/decimal"
)

// Validator 校验买家提交的订单和当前商品、运费是否一致。
// 商品和区域都直接读库，不读缓存。
type Validator struct {
	catalog catalog.Service
}

func NewValidator(svc catalog.Service) *Validator {
	return &Validator{catalog: svc}
}

// Validate 成功时返回用库中商品构造的订单项快照
func (v *Validator) Validate(ctx context.Context, po domain.PlaceOrder) ([]domain.OrderLine, error) {
	if err := v.checkShape(po); err != nil {
		return nil, err
	}
	lines, err := v.checkLines(ctx, po.Lines)
	if err != nil {
		return nil, err
	}
	if err = v.checkDistrict(ctx, po); err != nil {
		return nil, err
	}
	itemsPrice := decimal.Zero
	for _, l := range lines {
		itemsPrice = itemsPrice.Add(l.Subtotal())
	}
	if !po.ItemsPrice.Equal(itemsPrice) {
		return nil, fmt.Errorf("%w: items_price=%s, want=%s", domain.ErrTotalMismatch, po.ItemsPrice, itemsPrice)
	}
	if !po.TotalPrice.Equal(po.ItemsPrice.Add(po.ShippingPrice)) {
		return nil, fmt.Errorf("%w: total_price=%s, want=%s", domain.ErrTotalMismatch,
			po.TotalPrice, po.ItemsPrice.Add(po.ShippingPrice))
	}
	return lines, nil
}

func (v *Validator) checkShape(po domain.PlaceOrder) error {
	if len(po.Lines) == 0 {
		return fmt.Errorf("%w: 订单项为空", domain.ErrInvalidOrder)
	}
	for _, l := range po.Lines {
		if l.ProductID <= 0 || l.Quantity < 1 {
			return fmt.Errorf("%w: product_id=%d, quantity=%d", domain.ErrInvalidOrder, l.ProductID, l.Quantity)
		}
	}
	if !po.PaymentMethod.Valid() {
		return fmt.Errorf("%w: payment_method=%q", domain.ErrInvalidOrder, po.PaymentMethod)
	}
	addr := po.Address
	for _, field := range []string{addr.FullName, addr.Phone, addr.Address, addr.District} {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: 收货地址不完整", domain.ErrInvalidOrder)
		}
	}
	return nil
}

func (v *Validator) checkLines(ctx context.Context, lines []domain.PlaceOrderLine) ([]domain.OrderLine, error) {
	ids := slice.Map(lines, func(idx int, src domain.PlaceOrderLine) int64 {
		return src.ProductID
	})
	products, err := v.catalog.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	// 同一个商品出现在多个订单项里，按总数量判断库存
	quantities := make(map[int64]int64, len(lines))
	for _, l := range lines {
		quantities[l.ProductID] += l.Quantity
	}
	res := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product_id=%d", domain.ErrProductNotFound, l.ProductID)
		}
		if quantities[l.ProductID] > p.Stock {
			return nil, fmt.Errorf("%w: product_id=%d, quantity=%d, stock=%d",
				domain.ErrInsufficientStock, l.ProductID, quantities[l.ProductID], p.Stock)
		}
		if !l.Price.Equal(p.Price) {
			return nil, fmt.Errorf("%w: product_id=%d, price=%s, want=%s",
				domain.ErrPriceMismatch, l.ProductID, l.Price, p.Price)
		}
		res = append(res, domain.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Slug:      p.Slug,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  l.Quantity,
		})
	}
	return res, nil
}

func (v *Validator) checkDistrict(ctx context.Context, po domain.PlaceOrder) error {
	name := po.Address.District
	d, err := v.catalog.FindDistrictByName(ctx, name)
	if errors.Is(err, catalog.ErrDistrictNotFound) {
		return fmt.Errorf("%w: district=%s", domain.ErrInvalidDistrict, name)
	}
	if err != nil {
		return err
	}
	if !d.IsActive {
		return fmt.Errorf("%w: district=%s 暂停配送", domain.ErrInvalidDistrict, name)
	}
	if !po.ShippingPrice.Equal(d.DeliveryCharge) {
		return fmt.Errorf("%w: district=%s, shipping_price=%s, want=%s",
			domain.ErrShippingChargeMismatch, name, po.ShippingPrice, d.DeliveryCharge)
	}
	return nil
}
