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
	"testing"

	"github.com/ecodeclub/dokan/internal/catalog"
	catalogmocks "github.com/ecodeclub/dokan/internal/catalog/mocks"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestValidator_Validate(t *testing.T) {
	dec := decimal.RequireFromString
	products := map[int64]catalog.Product{
		1: {ID: 1, Name: "Panjabi", Slug: "panjabi", Image: "p.png", Price: dec("120"), Stock: 5},
		2: {ID: 2, Name: "Saree", Slug: "saree", Price: dec("150"), Stock: 2},
	}
	dhaka := catalog.District{ID: 1, Name: "Dhaka", DeliveryCharge: dec("60"), IsActive: true}
	validOrder := func() domain.PlaceOrder {
		return domain.PlaceOrder{
			BuyerID: 7,
			Lines: []domain.PlaceOrderLine{
				{ProductID: 1, Quantity: 1, Price: dec("120")},
				{ProductID: 2, Quantity: 2, Price: dec("150")},
			},
			Address: domain.ShippingAddress{
				FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka",
			},
			PaymentMethod: domain.PaymentMethodCOD,
			ItemsPrice:    dec("420"),
			ShippingPrice: dec("60"),
			TotalPrice:    dec("480"),
		}
	}

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) catalog.Service
		order     func() domain.PlaceOrder
		wantLines []domain.OrderLine
		wantErr   error
	}{
		{
			name: "校验通过",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1, 2}).Return(products, nil)
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").Return(dhaka, nil)
				return svc
			},
			order: validOrder,
			wantLines: []domain.OrderLine{
				{ProductID: 1, Name: "Panjabi", Slug: "panjabi", Image: "p.png", Price: dec("120"), Quantity: 1},
				{ProductID: 2, Name: "Saree", Slug: "saree", Price: dec("150"), Quantity: 2},
			},
		},
		{
			name: "订单项为空",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				return catalogmocks.NewMockService(ctrl)
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Lines = nil
				return po
			},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name: "数量为0",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				return catalogmocks.NewMockService(ctrl)
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Lines[0].Quantity = 0
				return po
			},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name: "未知支付方式",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				return catalogmocks.NewMockService(ctrl)
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.PaymentMethod = "bitcoin"
				return po
			},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name: "缺少收货人电话",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				return catalogmocks.NewMockService(ctrl)
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Address.Phone = " "
				return po
			},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1, 2}).
					Return(map[int64]catalog.Product{1: products[1]}, nil)
				return svc
			},
			order:   validOrder,
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "库存不足",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Lines[1].Quantity = 3
				return po
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "重复商品合计超过库存",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), []int64{2, 2}).Return(products, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Lines = []domain.PlaceOrderLine{
					{ProductID: 2, Quantity: 2, Price: dec("150")},
					{ProductID: 2, Quantity: 1, Price: dec("150")},
				}
				return po
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "价格变化",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.Lines[0].Price = dec("119.99")
				return po
			},
			wantErr: domain.ErrPriceMismatch,
		},
		{
			name: "区域不存在",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").
					Return(catalog.District{}, catalog.ErrDistrictNotFound)
				return svc
			},
			order:   validOrder,
			wantErr: domain.ErrInvalidDistrict,
		},
		{
			name: "区域暂停配送",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				inactive := dhaka
				inactive.IsActive = false
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").Return(inactive, nil)
				return svc
			},
			order:   validOrder,
			wantErr: domain.ErrInvalidDistrict,
		},
		{
			name: "运费变化",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").Return(dhaka, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.ShippingPrice = dec("100")
				po.TotalPrice = dec("520")
				return po
			},
			wantErr: domain.ErrShippingChargeMismatch,
		},
		{
			name: "商品总价不一致",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").Return(dhaka, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.ItemsPrice = dec("400")
				po.TotalPrice = dec("460")
				return po
			},
			wantErr: domain.ErrTotalMismatch,
		},
		{
			name: "订单总价不一致",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
				svc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").Return(dhaka, nil)
				return svc
			},
			order: func() domain.PlaceOrder {
				po := validOrder()
				po.TotalPrice = dec("470")
				return po
			},
			wantErr: domain.ErrTotalMismatch,
		},
		{
			name: "查询商品失败",
			mock: func(ctrl *gomock.Controller) catalog.Service {
				svc := catalogmocks.NewMockService(ctrl)
				svc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("mock db error"))
				return svc
			},
			order:   validOrder,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			v := NewValidator(tc.mock(ctrl))
			lines, err := v.Validate(context.Background(), tc.order())
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, domain.ErrValidation) {
					assert.ErrorIs(t, err, tc.wantErr)
					assert.ErrorIs(t, err, domain.ErrValidation)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLines, lines)
		})
	}
}
