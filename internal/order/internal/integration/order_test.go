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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/dokan/internal/catalog"
	catalogmocks "github.com/ecodeclub/dokan/internal/catalog/mocks"
	"github.com/ecodeclub/dokan/internal/logistics"
	logisticsmocks "github.com/ecodeclub/dokan/internal/logistics/mocks"
	"github.com/ecodeclub/dokan/internal/order"
	"github.com/ecodeclub/dokan/internal/order/internal/errs"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/dao"
	"github.com/ecodeclub/dokan/internal/order/internal/web"
	"github.com/ecodeclub/dokan/internal/test"
	testioc "github.com/ecodeclub/dokan/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	admin  *egin.Component
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))

	ctrl := gomock.NewController(s.T())
	catalogSvc := catalogmocks.NewMockService(ctrl)
	catalogSvc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]catalog.Product{
			1: {ID: 1, Name: "Green Tea", Slug: "green-tea", Price: decimal.RequireFromString("120.50"), Stock: 10},
		}, nil).AnyTimes()
	catalogSvc.EXPECT().FindDistrictByName(gomock.Any(), "Dhaka").
		Return(catalog.District{ID: 1, Name: "Dhaka", DeliveryCharge: decimal.RequireFromString("60"), IsActive: true}, nil).AnyTimes()
	stock := catalogmocks.NewMockStockLedger(ctrl)
	stock.EXPECT().Decrement(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	stock.EXPECT().Committed(gomock.Any(), gomock.Any()).AnyTimes()
	manager := logisticsmocks.NewMockManager(ctrl)
	manager.EXPECT().Check(gomock.Any()).Return(logistics.ErrConfiguration).AnyTimes()

	module, err := order.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(),
		&catalog.Module{Svc: catalogSvc, StockLedger: stock},
		&logistics.Module{Svc: manager})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"debug": true})
	s.server = egin.Load("server").Build()
	s.server.Use(test.WithSession(testUID, false))
	module.Hdl.PrivateRoutes(s.server.Engine)

	s.admin = egin.Load("server").Build()
	s.admin.Use(test.WithSession(1, true))
	module.AdminHdl.PrivateRoutes(s.admin.Engine)
}

func (s *OrderModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
}

func (s *OrderModuleTestSuite) createOrder(t *testing.T, requestID string) test.Result[web.Order] {
	req := web.CreateOrderReq{
		RequestID: requestID,
		Items:     []web.OrderItemReq{{ProductID: 1, Quantity: 2, Price: "120.50"}},
		Address: web.ShippingAddress{
			FullName: "Rahim",
			Phone:    "01700000000",
			Address:  "House 1, Road 2",
			District: "Dhaka",
		},
		PaymentMethod: "cod",
		ItemsPrice:    "241.00",
		ShippingPrice: "60.00",
		TotalPrice:    "301.00",
	}
	recorder := s.do(t, s.server, "/order/create", req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *OrderModuleTestSuite) do(t *testing.T, server *egin.Component, path string, body any) test.JSONResponseRecorder[web.Order] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *OrderModuleTestSuite) TestCreateAndFetch() {
	t := s.T()
	created := s.createOrder(t, "req-1")
	o := created.Data
	assert.NotEmpty(t, o.SN)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, "301.00", o.TotalPrice)
	assert.Equal(t, "Bangladesh", o.Address.Country)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Green Tea", o.Items[0].Name)

	var cnt int64
	require.NoError(t, s.db.WithContext(context.Background()).Model(&dao.OrderItem{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	detail := s.do(t, s.server, "/order/detail", web.SNReq{SN: o.SN})
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Equal(t, o.SN, detail.MustScan().Data.SN)
}

func (s *OrderModuleTestSuite) TestDuplicateRequest() {
	t := s.T()
	s.createOrder(t, "req-dup")
	req := web.CreateOrderReq{
		RequestID:     "req-dup",
		Items:         []web.OrderItemReq{{ProductID: 1, Quantity: 1, Price: "120.50"}},
		Address:       web.ShippingAddress{FullName: "Rahim", Phone: "017", Address: "a", District: "Dhaka"},
		PaymentMethod: "cod",
		ItemsPrice:    "120.50",
		ShippingPrice: "60.00",
		TotalPrice:    "180.50",
	}
	recorder := s.do(t, s.server, "/order/create", req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, errs.DuplicateRequest.Code, recorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestAdminStatusAndDispatch() {
	t := s.T()
	o := s.createOrder(t, "").Data

	recorder := s.do(t, s.admin, "/order/status", web.UpdateStatusReq{SN: o.SN, Status: "processing"})
	require.Equal(t, http.StatusOK, recorder.Code)
	// 非法状态跳转
	recorder = s.do(t, s.admin, "/order/status", web.UpdateStatusReq{SN: o.SN, Status: "delivered"})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// 服务商未配置时不会占用派送
	recorder = s.do(t, s.admin, "/order/dispatch", web.DispatchReq{SN: o.SN, Provider: "pathao"})
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var entity dao.Order
	require.NoError(t, s.db.Where("sn = ?", o.SN).First(&entity).Error)
	assert.Equal(t, "", entity.LogisticsService)
	assert.Equal(t, "processing", entity.Status)

	recorder = s.do(t, s.admin, "/order/purge", web.SNReq{SN: o.SN})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = s.do(t, s.admin, "/order/detail", web.SNReq{SN: o.SN})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
