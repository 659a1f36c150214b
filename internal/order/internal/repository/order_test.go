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
	"database/sql"
	"testing"

	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/dao"
	daomocks "github.com/ecodeclub/dokan/internal/order/internal/repository/dao/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_FindBySN(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) dao.OrderDAO
		wantOrder domain.Order
		wantErr   error
	}{
		{
			name: "查找成功",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindBySN(gomock.Any(), "SN1").Return(dao.Order{
					Id:            1001,
					SN:            "SN1",
					BuyerId:       7,
					FullName:      "Rahim",
					District:      "Dhaka",
					City:          sql.NullString{String: "Dhaka", Valid: true},
					PaymentMethod: "cod",
					TotalPrice:    decimal.RequireFromString("480"),
					Status:        "pending",
				}, nil)
				d.EXPECT().FindItems(gomock.Any(), []int64{1001}).Return([]dao.OrderItem{
					{OrderId: 1001, ProductId: 1, Name: "Panjabi", Price: decimal.RequireFromString("420"), Quantity: 1},
				}, nil)
				return d
			},
			wantOrder: domain.Order{
				ID:      1001,
				SN:      "SN1",
				BuyerID: 7,
				Lines: []domain.OrderLine{
					{ProductID: 1, Name: "Panjabi", Price: decimal.RequireFromString("420"), Quantity: 1},
				},
				Address:       domain.ShippingAddress{FullName: "Rahim", District: "Dhaka", City: "Dhaka"},
				PaymentMethod: domain.PaymentMethodCOD,
				TotalPrice:    decimal.RequireFromString("480"),
				Status:        domain.StatusPending,
			},
		},
		{
			name: "订单不存在",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindBySN(gomock.Any(), "SN1").Return(dao.Order{}, dao.ErrRecordNotFound)
				return d
			},
			wantErr: domain.ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewOrderRepository(tc.mock(ctrl))
			order, err := repo.FindBySN(context.Background(), "SN1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantOrder, order)
		})
	}
}

func TestOrderRepository_ListByBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockOrderDAO(ctrl)
	d.EXPECT().ListByBuyer(gomock.Any(), int64(7), 0, 10).Return([]dao.Order{
		{Id: 2, SN: "SN2"}, {Id: 1, SN: "SN1"},
	}, nil)
	d.EXPECT().FindItems(gomock.Any(), []int64{2, 1}).Return([]dao.OrderItem{
		{OrderId: 1, ProductId: 10, Quantity: 1},
		{OrderId: 2, ProductId: 11, Quantity: 2},
		{OrderId: 2, ProductId: 12, Quantity: 3},
	}, nil)
	repo := NewOrderRepository(d)
	orders, err := repo.ListByBuyer(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "SN2", orders[0].SN)
	assert.Len(t, orders[0].Lines, 2)
	assert.Equal(t, int64(5), orders[0].ItemQuantity())
	assert.Len(t, orders[1].Lines, 1)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		ok      bool
		wantErr error
	}{
		{name: "更新成功", ok: true},
		{name: "状态已变化", ok: false, wantErr: domain.ErrOrderStatusConflict},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := daomocks.NewMockOrderDAO(ctrl)
			d.EXPECT().UpdateStatus(gomock.Any(), int64(1), "pending", "cancelled").Return(tc.ok, nil)
			err := NewOrderRepository(d).UpdateStatus(context.Background(), 1, domain.StatusPending, domain.StatusCancelled)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
