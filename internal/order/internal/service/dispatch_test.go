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
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/dokan/internal/logistics"
	logisticsmocks "github.com/ecodeclub/dokan/internal/logistics/mocks"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/dokan/internal/order/internal/event/mocks"
	repomocks "github.com/ecodeclub/dokan/internal/order/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchService_Dispatch(t *testing.T) {
	dec := decimal.RequireFromString
	pending := domain.Order{
		ID:      1001,
		SN:      "SN1",
		BuyerID: 7,
		Lines: []domain.OrderLine{
			{ProductID: 1, Name: "Panjabi", Price: dec("120"), Quantity: 1},
			{ProductID: 2, Name: "Saree", Price: dec("150"), Quantity: 2},
		},
		Address: domain.ShippingAddress{
			FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka", City: "Dhaka",
		},
		PaymentMethod: domain.PaymentMethodCOD,
		ItemsPrice:    dec("420"),
		ShippingPrice: dec("60"),
		TotalPrice:    dec("480"),
		Status:        domain.StatusPending,
	}
	success := logistics.DispatchResult{
		Provider:   logistics.ProviderPathao,
		Success:    true,
		TrackingID: "DL121224",
		Raw:        json.RawMessage(`{"data":{"consignment_id":"DL121224"}}`),
	}

	type mocks struct {
		repo     *repomocks.MockOrderRepository
		manager  *logisticsmocks.MockManager
		producer *evtmocks.MockOrderEventProducer
	}
	testCases := []struct {
		name       string
		provider   string
		mock       func(m mocks)
		wantErr    error
		wantStatus domain.Status
		// 服务商拒单时带回的信息
		wantMsg string
	}{
		{
			name:     "发货成功",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderPathao).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "pathao").Return(true, nil)
				m.manager.EXPECT().Dispatch(gomock.Any(), logistics.ProviderPathao, gomock.Any()).DoAndReturn(
					func(ctx context.Context, p logistics.Provider, s logistics.Shipment) (logistics.DispatchResult, error) {
						assert.Equal(t, "SN1", s.OrderSN)
						assert.Equal(t, int64(3), s.ItemQuantity)
						assert.Equal(t, "Panjabi x1, Saree x2", s.ItemDescription)
						assert.True(t, s.CashToCollect.Equal(dec("480")))
						assert.True(t, s.Value.Equal(dec("420")))
						assert.Equal(t, "fragile", s.Note)
						return success, nil
					})
				m.repo.EXPECT().RecordDispatch(gomock.Any(), int64(1001), gomock.Any()).DoAndReturn(
					func(ctx context.Context, id int64, l domain.Logistics) error {
						assert.Equal(t, "pathao", l.Provider)
						assert.Equal(t, "DL121224", l.TrackingID)
						assert.JSONEq(t, `{"data":{"consignment_id":"DL121224"}}`, l.RawResponse)
						assert.NotZero(t, l.SentAt)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, event.EventTypeDispatched, evt.Type)
						assert.Equal(t, "DL121224", evt.TrackingID)
						return nil
					})
			},
			wantStatus: domain.StatusShipped,
		},
		{
			name:     "已送达的订单发货不改状态",
			provider: "steadfast",
			mock: func(m mocks) {
				delivered := pending
				delivered.Status = domain.StatusDelivered
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(delivered, nil)
				m.manager.EXPECT().Check(logistics.ProviderSteadfast).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "steadfast").Return(true, nil)
				res := success
				res.Provider = logistics.ProviderSteadfast
				m.manager.EXPECT().Dispatch(gomock.Any(), logistics.ProviderSteadfast, gomock.Any()).Return(res, nil)
				m.repo.EXPECT().RecordDispatch(gomock.Any(), int64(1001), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusDelivered,
		},
		{
			name:     "订单不存在",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(domain.Order{}, domain.ErrOrderNotFound)
			},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name:     "已经发货",
			provider: "redx",
			mock: func(m mocks) {
				shipped := pending
				shipped.Logistics = domain.Logistics{Provider: "pathao", TrackingID: "DL1"}
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(shipped, nil)
			},
			wantErr: domain.ErrAlreadyDispatched,
		},
		{
			name:     "已经发货时不检查服务商",
			provider: "dhl",
			mock: func(m mocks) {
				shipped := pending
				shipped.Logistics = domain.Logistics{Provider: "pathao"}
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(shipped, nil)
			},
			wantErr: domain.ErrAlreadyDispatched,
		},
		{
			name:     "未知服务商",
			provider: "dhl",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
			},
			wantErr: logistics.ErrUnknownProvider,
		},
		{
			name:     "服务商未配置",
			provider: "redx",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderRedX).
					Return(fmt.Errorf("%w: redx access_token", logistics.ErrConfiguration))
			},
			wantErr: logistics.ErrConfiguration,
		},
		{
			name:     "抢占失败",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderPathao).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "pathao").Return(false, nil)
			},
			wantErr: domain.ErrAlreadyDispatched,
		},
		{
			name:     "服务商拒绝后释放抢占",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderPathao).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "pathao").Return(true, nil)
				m.manager.EXPECT().Dispatch(gomock.Any(), logistics.ProviderPathao, gomock.Any()).
					Return(logistics.DispatchResult{Provider: logistics.ProviderPathao, Message: "invalid phone"},
						fmt.Errorf("%w: invalid phone", logistics.ErrProvider))
				m.repo.EXPECT().ReleaseDispatch(gomock.Any(), int64(1001), "pathao").Return(nil)
			},
			wantErr: logistics.ErrProvider,
			wantMsg: "invalid phone",
		},
		{
			name:     "释放抢占失败仍然返回服务商错误",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderPathao).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "pathao").Return(true, nil)
				m.manager.EXPECT().Dispatch(gomock.Any(), logistics.ProviderPathao, gomock.Any()).
					Return(logistics.DispatchResult{}, fmt.Errorf("%w: %w", logistics.ErrProvider, context.DeadlineExceeded))
				m.repo.EXPECT().ReleaseDispatch(gomock.Any(), int64(1001), "pathao").Return(errors.New("mock db error"))
			},
			wantErr: logistics.ErrProvider,
		},
		{
			name:     "回写失败保留抢占",
			provider: "pathao",
			mock: func(m mocks) {
				m.repo.EXPECT().FindBySN(gomock.Any(), "SN1").Return(pending, nil)
				m.manager.EXPECT().Check(logistics.ProviderPathao).Return(nil)
				m.repo.EXPECT().ClaimDispatch(gomock.Any(), int64(1001), "pathao").Return(true, nil)
				m.manager.EXPECT().Dispatch(gomock.Any(), logistics.ProviderPathao, gomock.Any()).Return(success, nil)
				m.repo.EXPECT().RecordDispatch(gomock.Any(), int64(1001), gomock.Any()).Return(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := mocks{
				repo:     repomocks.NewMockOrderRepository(ctrl),
				manager:  logisticsmocks.NewMockManager(ctrl),
				producer: evtmocks.NewMockOrderEventProducer(ctrl),
			}
			tc.mock(m)
			svc := NewDispatchService(m.repo, m.manager, m.producer)
			order, res, err := svc.Dispatch(context.Background(), "SN1", tc.provider, " fragile ")
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantMsg, res.Message)
				if errors.Is(tc.wantErr, domain.ErrNotFound) || errors.Is(tc.wantErr, domain.ErrConflict) ||
					errors.Is(tc.wantErr, logistics.ErrProvider) || errors.Is(tc.wantErr, logistics.ErrConfiguration) ||
					errors.Is(tc.wantErr, logistics.ErrUnknownProvider) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, tc.wantStatus, order.Status)
			assert.Equal(t, "DL121224", order.Logistics.TrackingID)
		})
	}
}

func TestDispatchService_CashToCollect(t *testing.T) {
	svc := &dispatchService{}
	paid := domain.Order{
		PaymentMethod: domain.PaymentMethodCOD,
		Paid:          true,
		TotalPrice:    decimal.RequireFromString("480"),
	}
	assert.True(t, svc.shipment(paid, "").CashToCollect.IsZero())
	online := domain.Order{PaymentMethod: domain.PaymentMethodOnline, TotalPrice: decimal.RequireFromString("480")}
	assert.True(t, svc.shipment(online, "").CashToCollect.IsZero())
}
