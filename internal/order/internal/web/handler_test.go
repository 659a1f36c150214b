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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/errs"
	ordermocks "github.com/ecodeclub/dokan/internal/order/mocks"
	"github.com/ecodeclub/dokan/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateOrder(t *testing.T) {
	dec := decimal.RequireFromString
	createReq := CreateOrderReq{
		RequestID: "req-1",
		Items:     []OrderItemReq{{ProductID: 1, Quantity: 2, Price: "120"}},
		Address: ShippingAddress{
			FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka",
		},
		PaymentMethod: "cod",
		ItemsPrice:    "240",
		ShippingPrice: "60",
		TotalPrice:    "300",
	}
	testCases := []struct {
		name     string
		mock     func(svc *ordermocks.MockService)
		req      CreateOrderReq
		wantCode int
		wantResp test.Result[Order]
	}{
		{
			name: "下单成功",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().PlaceOrder(gomock.Any(), domain.PlaceOrder{
					BuyerID:       7,
					RequestID:     "req-1",
					Lines:         []domain.PlaceOrderLine{{ProductID: 1, Quantity: 2, Price: dec("120")}},
					Address:       domain.ShippingAddress{FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka"},
					PaymentMethod: domain.PaymentMethodCOD,
					ItemsPrice:    dec("240"),
					ShippingPrice: dec("60"),
					TotalPrice:    dec("300"),
				}).Return(domain.Order{
					SN:            "SN1",
					BuyerID:       7,
					Lines:         []domain.OrderLine{{ProductID: 1, Name: "Panjabi", Price: dec("120"), Quantity: 2}},
					Address:       domain.ShippingAddress{FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka", Country: "Bangladesh"},
					PaymentMethod: domain.PaymentMethodCOD,
					ItemsPrice:    dec("240"),
					ShippingPrice: dec("60"),
					TotalPrice:    dec("300"),
					Status:        domain.StatusPending,
					Ctime:         100,
					Utime:         100,
				}, nil)
			},
			req:      createReq,
			wantCode: http.StatusOK,
			wantResp: test.Result[Order]{Data: Order{
				SN:            "SN1",
				Items:         []OrderItem{{ProductID: 1, Name: "Panjabi", Price: "120.00", Quantity: 2}},
				Address:       ShippingAddress{FullName: "Rahim", Phone: "01700000000", Address: "House 1", District: "Dhaka", Country: "Bangladesh"},
				PaymentMethod: "cod",
				ItemsPrice:    "240.00",
				ShippingPrice: "60.00",
				TotalPrice:    "300.00",
				Status:        "pending",
				Ctime:         100,
				Utime:         100,
			}},
		},
		{
			name: "金额格式错误",
			mock: func(svc *ordermocks.MockService) {},
			req: func() CreateOrderReq {
				req := createReq
				req.TotalPrice = "three hundred"
				return req
			}(),
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Order]{Code: errs.InvalidOrder.Code, Msg: errs.InvalidOrder.Msg},
		},
		{
			name: "价格变化",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					Return(domain.Order{}, fmt.Errorf("%w: product_id=1", domain.ErrPriceMismatch))
			},
			req:      createReq,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Order]{Code: errs.PriceMismatch.Code, Msg: errs.PriceMismatch.Msg},
		},
		{
			name: "重复提交",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(domain.Order{}, domain.ErrDuplicateRequest)
			},
			req:      createReq,
			wantCode: http.StatusConflict,
			wantResp: test.Result[Order]{Code: errs.DuplicateRequest.Code, Msg: errs.DuplicateRequest.Msg},
		},
		{
			name: "系统错误",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(domain.Order{}, errors.New("mock db error"))
			},
			req:      createReq,
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Order]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			tc.mock(svc)
			server := gin.New()
			server.Use(test.WithSession(7, false))
			NewHandler(svc).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	svc.EXPECT().FindBuyerOrder(gomock.Any(), int64(7), "SN9").Return(domain.Order{}, domain.ErrOrderNotFound)
	server := gin.New()
	server.Use(test.WithSession(7, false))
	NewHandler(svc).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/order/detail", iox.NewJSONReader(SNReq{SN: "SN9"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[Order]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, errs.OrderNotFound.Code, recorder.MustScan().Code)
}

func TestAdminHandler_Dispatch(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *ordermocks.MockDispatchService)
		wantCode int
		wantResp test.Result[DispatchResp]
	}{
		{
			name: "发货成功",
			mock: func(svc *ordermocks.MockDispatchService) {
				svc.EXPECT().Dispatch(gomock.Any(), "SN1", "pathao", "call first").Return(domain.Order{
					SN:         "SN1",
					BuyerID:    7,
					TotalPrice: decimal.RequireFromString("480"),
					Status:     domain.StatusShipped,
					Logistics: domain.Logistics{
						Provider:    "pathao",
						TrackingID:  "DL1",
						RawResponse: `{"code":200}`,
						SentAt:      200,
					},
				}, logistics.DispatchResult{
					Provider:   logistics.ProviderPathao,
					Success:    true,
					TrackingID: "DL1",
					Raw:        json.RawMessage(`{"code":200}`),
				}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[DispatchResp]{Data: DispatchResp{
				Order: &Order{
					SN:            "SN1",
					BuyerID:       7,
					Items:         []OrderItem{},
					ItemsPrice:    "0.00",
					ShippingPrice: "0.00",
					TotalPrice:    "480.00",
					Status:        "shipped",
					Logistics:     Logistics{Provider: "pathao", TrackingID: "DL1", SentAt: 200, Response: `{"code":200}`},
				},
				Result: DispatchResult{Provider: "pathao", Success: true, TrackingID: "DL1", Response: `{"code":200}`},
			}},
		},
		{
			name: "已经发货",
			mock: func(svc *ordermocks.MockDispatchService) {
				svc.EXPECT().Dispatch(gomock.Any(), "SN1", "pathao", "call first").
					Return(domain.Order{}, logistics.DispatchResult{}, domain.ErrAlreadyDispatched)
			},
			wantCode: http.StatusConflict,
			wantResp: test.Result[DispatchResp]{Code: errs.AlreadyDispatched.Code, Msg: errs.AlreadyDispatched.Msg},
		},
		{
			name: "服务商未配置",
			mock: func(svc *ordermocks.MockDispatchService) {
				svc.EXPECT().Dispatch(gomock.Any(), "SN1", "pathao", "call first").
					Return(domain.Order{}, logistics.DispatchResult{}, fmt.Errorf("%w: pathao", logistics.ErrConfiguration))
			},
			wantCode: http.StatusServiceUnavailable,
			wantResp: test.Result[DispatchResp]{Code: errs.LogisticsNotConfigured.Code, Msg: errs.LogisticsNotConfigured.Msg},
		},
		{
			name: "服务商下单失败",
			mock: func(svc *ordermocks.MockDispatchService) {
				svc.EXPECT().Dispatch(gomock.Any(), "SN1", "pathao", "call first").
					Return(domain.Order{}, logistics.DispatchResult{}, fmt.Errorf("%w: timeout", logistics.ErrProvider))
			},
			wantCode: http.StatusBadGateway,
			wantResp: test.Result[DispatchResp]{
				Code: errs.LogisticsFailed.Code,
				Msg:  errs.LogisticsFailed.Msg,
				Data: DispatchResp{Result: DispatchResult{}},
			},
		},
		{
			name: "服务商拒单时返回原始响应",
			mock: func(svc *ordermocks.MockDispatchService) {
				svc.EXPECT().Dispatch(gomock.Any(), "SN1", "pathao", "call first").
					Return(domain.Order{}, logistics.DispatchResult{
						Provider: logistics.ProviderPathao,
						Message:  "recipient_phone invalid",
						Raw:      json.RawMessage(`{"code":422,"message":"recipient_phone invalid"}`),
					}, fmt.Errorf("%w: status=422", logistics.ErrProvider))
			},
			wantCode: http.StatusBadGateway,
			wantResp: test.Result[DispatchResp]{
				Code: errs.LogisticsFailed.Code,
				Msg:  errs.LogisticsFailed.Msg,
				Data: DispatchResp{Result: DispatchResult{
					Provider: "pathao",
					Message:  "recipient_phone invalid",
					Response: `{"code":422,"message":"recipient_phone invalid"}`,
				}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			dispatchSvc := ordermocks.NewMockDispatchService(ctrl)
			tc.mock(dispatchSvc)
			server := gin.New()
			NewAdminHandler(ordermocks.NewMockAdminService(ctrl), dispatchSvc).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/order/dispatch",
				iox.NewJSONReader(DispatchReq{SN: "SN1", Provider: "pathao", Note: "call first"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[DispatchResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockAdminService(ctrl)
	svc.EXPECT().UpdateStatus(gomock.Any(), "SN1", domain.StatusPending).
		Return(domain.Order{}, fmt.Errorf("%w: shipped -> pending", domain.ErrIllegalStatusTransition))
	server := gin.New()
	NewAdminHandler(svc, ordermocks.NewMockDispatchService(ctrl)).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/order/status",
		iox.NewJSONReader(UpdateStatusReq{SN: "SN1", Status: "pending"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[Order]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, errs.IllegalStatusTransition.Code, recorder.MustScan().Code)
}

func TestAdminHandler_Providers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatchSvc := ordermocks.NewMockDispatchService(ctrl)
	dispatchSvc.EXPECT().Providers().Return([]logistics.ProviderStatus{
		{Provider: logistics.ProviderPathao, Configured: true},
		{Provider: logistics.ProviderSteadfast},
		{Provider: logistics.ProviderRedX},
	})
	server := gin.New()
	NewAdminHandler(ordermocks.NewMockAdminService(ctrl), dispatchSvc).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/logistics/providers", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]Provider]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []Provider{
		{Name: "pathao", Configured: true},
		{Name: "steadfast"},
		{Name: "redx"},
	}, recorder.MustScan().Data)
}
