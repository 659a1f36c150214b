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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, o domain.Order) error
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context, status domain.Status) (int64, error)

	// UpdateStatus 状态已经不是 from 时返回 ErrOrderStatusConflict
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	ClaimDispatch(ctx context.Context, id int64, provider string) (bool, error)
	ReleaseDispatch(ctx context.Context, id int64, provider string) error
	RecordDispatch(ctx context.Context, id int64, l domain.Logistics) error
	MarkPaid(ctx context.Context, id int64, paidAt int64) (bool, error)
	Purge(ctx context.Context, id int64) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	items := slice.Map(order.Lines, func(idx int, src domain.OrderLine) dao.OrderItem {
		return o.toItemEntity(src)
	})
	return o.dao.Create(ctx, o.toEntity(order), items)
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.dao.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", domain.ErrOrderNotFound, sn)
	}
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.dao.FindItems(ctx, []int64{order.Id})
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListByBuyer(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.withItems(ctx, orders)
}

func (o *orderRepository) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return o.dao.CountByBuyer(ctx, buyerID)
}

func (o *orderRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.List(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return o.withItems(ctx, orders)
}

func (o *orderRepository) Count(ctx context.Context, status domain.Status) (int64, error) {
	return o.dao.Count(ctx, status.String())
}

func (o *orderRepository) withItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := o.dao.FindItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.OrderItem, len(orders))
	for _, item := range items {
		grouped[item.OrderId] = append(grouped[item.OrderId], item)
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, grouped[src.Id])
	}), nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	ok, err := o.dao.UpdateStatus(ctx, id, from.String(), to.String())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id=%d, from=%s", domain.ErrOrderStatusConflict, id, from)
	}
	return nil
}

func (o *orderRepository) ClaimDispatch(ctx context.Context, id int64, provider string) (bool, error) {
	return o.dao.ClaimDispatch(ctx, id, provider)
}

func (o *orderRepository) ReleaseDispatch(ctx context.Context, id int64, provider string) error {
	return o.dao.ReleaseDispatch(ctx, id, provider)
}

func (o *orderRepository) RecordDispatch(ctx context.Context, id int64, l domain.Logistics) error {
	return o.dao.RecordDispatch(ctx, id, dao.Dispatch{
		Provider:    l.Provider,
		TrackingId:  l.TrackingID,
		RawResponse: l.RawResponse,
		SentAt:      l.SentAt,
	})
}

func (o *orderRepository) MarkPaid(ctx context.Context, id int64, paidAt int64) (bool, error) {
	return o.dao.MarkPaid(ctx, id, paidAt)
}

func (o *orderRepository) Purge(ctx context.Context, id int64) error {
	err := o.dao.Purge(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", domain.ErrOrderNotFound, id)
	}
	return err
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                order.ID,
		SN:                order.SN,
		BuyerId:           order.BuyerID,
		FullName:          order.Address.FullName,
		Phone:             order.Address.Phone,
		Address:           order.Address.Address,
		District:          order.Address.District,
		City:              sqlx.NewNullString(order.Address.City),
		PostalCode:        sqlx.NewNullString(order.Address.PostalCode),
		Country:           order.Address.Country,
		PaymentMethod:     string(order.PaymentMethod),
		ItemsPrice:        order.ItemsPrice,
		ShippingPrice:     order.ShippingPrice,
		TotalPrice:        order.TotalPrice,
		Paid:              order.Paid,
		PaidAt:            order.PaidAt,
		Status:            order.Status.String(),
		LogisticsService:  order.Logistics.Provider,
		TrackingId:        order.Logistics.TrackingID,
		LogisticsResponse: sqlx.NewNullString(order.Logistics.RawResponse),
		SentAt:            order.Logistics.SentAt,
	}
}

func (o *orderRepository) toItemEntity(line domain.OrderLine) dao.OrderItem {
	return dao.OrderItem{
		ProductId: line.ProductID,
		Name:      line.Name,
		Slug:      line.Slug,
		Image:     line.Image,
		Price:     line.Price,
		Quantity:  line.Quantity,
	}
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:      order.Id,
		SN:      order.SN,
		BuyerID: order.BuyerId,
		Lines: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderLine {
			return domain.OrderLine{
				ProductID: src.ProductId,
				Name:      src.Name,
				Slug:      src.Slug,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Address: domain.ShippingAddress{
			FullName:   order.FullName,
			Phone:      order.Phone,
			Address:    order.Address,
			District:   order.District,
			City:       order.City.String,
			PostalCode: order.PostalCode.String,
			Country:    order.Country,
		},
		PaymentMethod: domain.PaymentMethod(order.PaymentMethod),
		ItemsPrice:    order.ItemsPrice,
		ShippingPrice: order.ShippingPrice,
		TotalPrice:    order.TotalPrice,
		Paid:          order.Paid,
		PaidAt:        order.PaidAt,
		Status:        domain.Status(order.Status),
		Logistics: domain.Logistics{
			Provider:    order.LogisticsService,
			TrackingID:  order.TrackingId,
			RawResponse: order.LogisticsResponse.String,
			SentAt:      order.SentAt,
		},
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
