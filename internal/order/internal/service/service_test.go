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
	"testing"

	"github.com/ecodeclub/dokan/internal/catalog"
	catalogmocks "github.com/ecodeclub/dokan/internal/catalog/mocks"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/dokan/internal/order/internal/event/mocks"
	"github.com/ecodeclub/dokan/internal/order/internal/repository"
	cachemocks "github.com/ecodeclub/dokan/internal/order/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/dokan/internal/order/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTx struct {
	calls int
}

func (f *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedID int64

func (f fixedID) Next() int64 {
	return int64(f)
}

type fixedSN string

func (f fixedSN) Generate(buyerID int64) string {
	return fmt.Sprintf("%s%04d", string(f), buyerID)
}

type placeOrderMocks struct {
	repo     *repomocks.MockOrderRepository
	requests *cachemocks.MockRequestCache
	catalog  *catalogmocks.MockService
	stock    *catalogmocks.MockStockLedger
	producer *evtmocks.MockOrderEventProducer
}

func TestService_PlaceOrder(t *testing.T) {
	dec := decimal.RequireFromString
	place := domain.PlaceOrder{
		BuyerID:   7,
		RequestID: "req-1",
		Lines: []domain.PlaceOrderLine{
			{ProductID: 1, Quantity: 2, Price: dec("120")},
		},
		Address: domain.ShippingAddress{
			FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka",
		},
		PaymentMethod: domain.PaymentMethodCOD,
		ItemsPrice:    dec("240"),
		ShippingPrice: dec("60"),
		TotalPrice:    dec("300"),
	}
	validCatalog := func(m placeOrderMocks) {
		m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1}).Return(map[int64]catalog.Product{
			1: {ID: 1, Name: "Panjabi", Slug: "panjabi", Price: dec("120"), Stock: 5},
		}, nil)
		m.catalog.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").
			Return(catalog.District{Name: "Dhaka", DeliveryCharge: dec("60"), IsActive: true}, nil)
	}
	items := []catalog.StockItem{{ProductID: 1, Quantity: 2}}

	testCases := []struct {
		name      string
		mock      func(m placeOrderMocks)
		wantErr   error
		wantTx    int
		wantOrder func(t *testing.T, o domain.Order)
	}{
		{
			name: "下单成功",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(true, nil)
				validCatalog(m)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, o domain.Order) error {
						assert.Equal(t, int64(1001), o.ID)
						assert.Equal(t, "SN0007", o.SN)
						assert.Equal(t, domain.StatusPending, o.Status)
						assert.Equal(t, "Bangladesh", o.Address.Country)
						return nil
					})
				m.stock.EXPECT().Decrement(gomock.Any(), items).Return(nil)
				m.stock.EXPECT().Committed(gomock.Any(), items)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, event.EventTypeCreated, evt.Type)
						assert.Equal(t, "SN0007", evt.OrderSN)
						assert.Equal(t, "300.00", evt.TotalPrice)
						return nil
					})
			},
			wantTx: 1,
			wantOrder: func(t *testing.T, o domain.Order) {
				assert.Equal(t, "SN0007", o.SN)
				require.Len(t, o.Lines, 1)
				assert.Equal(t, "Panjabi", o.Lines[0].Name)
				assert.True(t, o.TotalPrice.Equal(dec("300")))
				assert.NotZero(t, o.Ctime)
			},
		},
		{
			name: "重复提交",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(false, nil)
			},
			wantErr: domain.ErrDuplicateRequest,
		},
		{
			name: "去重缓存不可用时继续下单",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(false, errors.New("redis down"))
				validCatalog(m)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Decrement(gomock.Any(), items).Return(nil)
				m.stock.EXPECT().Committed(gomock.Any(), items)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTx: 1,
		},
		{
			name: "校验失败不写库并允许重试",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(true, nil)
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1}).
					Return(map[int64]catalog.Product{}, nil)
				m.requests.EXPECT().Delete(gomock.Any(), int64(7), "req-1").Return(nil)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "并发扣减库存失败整体回滚",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(true, nil)
				validCatalog(m)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Decrement(gomock.Any(), items).
					Return(fmt.Errorf("%w: product_id=1", catalog.ErrInsufficientStock))
				m.requests.EXPECT().Delete(gomock.Any(), int64(7), "req-1").Return(nil)
			},
			wantErr: domain.ErrInsufficientStock,
			wantTx:  1,
		},
		{
			name: "写入订单失败",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(true, nil)
				validCatalog(m)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				m.requests.EXPECT().Delete(gomock.Any(), int64(7), "req-1").Return(errors.New("redis down"))
			},
			wantErr: errors.New("mock db error"),
			wantTx:  1,
		},
		{
			name: "事件发送失败不影响下单",
			mock: func(m placeOrderMocks) {
				m.requests.EXPECT().SetNX(gomock.Any(), int64(7), "req-1").Return(true, nil)
				validCatalog(m)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Decrement(gomock.Any(), items).Return(nil)
				m.stock.EXPECT().Committed(gomock.Any(), items)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
			wantTx: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := placeOrderMocks{
				repo:     repomocks.NewMockOrderRepository(ctrl),
				requests: cachemocks.NewMockRequestCache(ctrl),
				catalog:  catalogmocks.NewMockService(ctrl),
				stock:    catalogmocks.NewMockStockLedger(ctrl),
				producer: evtmocks.NewMockOrderEventProducer(ctrl),
			}
			tc.mock(m)
			tx := &fakeTx{}
			svc := NewService(m.repo, m.requests, NewValidator(m.catalog), m.stock, tx,
				fixedID(1001), fixedSN("SN"), m.producer, Config{})
			order, err := svc.PlaceOrder(context.Background(), place)
			assert.Equal(t, tc.wantTx, tx.calls)
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, domain.ErrValidation) || errors.Is(tc.wantErr, domain.ErrConflict) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			if tc.wantOrder != nil {
				tc.wantOrder(t, order)
			}
		})
	}
}

func TestService_FindBuyerOrder(t *testing.T) {
	testCases := []struct {
		name    string
		buyerID int64
		wantErr error
	}{
		{name: "自己的订单", buyerID: 7},
		{name: "别人的订单", buyerID: 8, wantErr: domain.ErrOrderNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockOrderRepository(ctrl)
			repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", BuyerID: 7}, nil)
			svc := &service{repo: repo}
			order, err := svc.FindBuyerOrder(context.Background(), tc.buyerID, "SN1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, "SN1", order.SN)
			}
		})
	}
}

func TestService_ListBuyerOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().ListByBuyer(gomock.Any(), int64(7), 0, 20).Return([]domain.Order{{SN: "SN2"}, {SN: "SN1"}}, nil)
	repo.EXPECT().CountByBuyer(gomock.Any(), int64(7)).Return(int64(12), nil)
	svc := &service{repo: repo}
	orders, total, err := svc.ListBuyerOrders(context.Background(), 7, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, orders, 2)
}

func TestAdminService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer)
		to      domain.Status
		wantErr error
	}{
		{
			name: "pending改为processing",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusPending}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusPending, domain.StatusProcessing).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, event.EventTypeStatusChanged, evt.Type)
						assert.Equal(t, "processing", evt.Status)
						return nil
					})
			},
			to: domain.StatusProcessing,
		},
		{
			name: "终态不能变更",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusDelivered}, nil)
			},
			to:      domain.StatusCancelled,
			wantErr: domain.ErrIllegalStatusTransition,
		},
		{
			name: "未知状态",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusPending}, nil)
			},
			to:      domain.Status("lost"),
			wantErr: domain.ErrIllegalStatusTransition,
		},
		{
			name: "并发修改",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusPending}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusPending, domain.StatusCancelled).
					Return(domain.ErrOrderStatusConflict)
			},
			to:      domain.StatusCancelled,
			wantErr: domain.ErrOrderStatusConflict,
		},
		{
			name: "订单不存在",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{}, domain.ErrOrderNotFound)
			},
			to:      domain.StatusCancelled,
			wantErr: domain.ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockOrderRepository(ctrl)
			producer := evtmocks.NewMockOrderEventProducer(ctrl)
			tc.mock(repo, producer)
			svc := NewAdminService(repo, producer)
			order, err := svc.UpdateStatus(context.Background(), "SN1", tc.to)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.to, order.Status)
			}
		})
	}
}

func TestAdminService_MarkPaid(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer)
		wantPaid bool
		wantErr  error
	}{
		{
			name: "标记收款",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusShipped}, nil)
				repo.EXPECT().MarkPaid(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPaid: true,
		},
		{
			name: "已经收过款",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Paid: true, PaidAt: 100}, nil)
			},
			wantPaid: true,
		},
		{
			name: "已取消的订单",
			mock: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1", Status: domain.StatusCancelled}, nil)
			},
			wantErr: domain.ErrIllegalStatusTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockOrderRepository(ctrl)
			producer := evtmocks.NewMockOrderEventProducer(ctrl)
			tc.mock(repo, producer)
			order, err := NewAdminService(repo, producer).MarkPaid(context.Background(), "SN1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.wantPaid, order.Paid)
				assert.NotZero(t, order.PaidAt)
			}
		})
	}
}

func TestAdminService_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{ID: 1, SN: "SN1"}, nil)
	repo.EXPECT().Purge(gomock.Any(), int64(1)).Return(nil)
	var r repository.OrderRepository = repo
	require.NoError(t, NewAdminService(r, evtmocks.NewMockOrderEventProducer(ctrl)).Purge(context.Background(), "SN1"))
}
