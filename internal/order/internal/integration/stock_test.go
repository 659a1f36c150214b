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
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/ecodeclub/dokan/internal/catalog"
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
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 下单和真实的商品目录一起跑，库存扣减走数据库
func TestOrderStock(t *testing.T) {
	suite.Run(t, new(OrderStockTestSuite))
}

type OrderStockTestSuite struct {
	suite.Suite
	db      *egorm.Component
	cmd     redis.Cmdable
	catalog *catalog.Module
	server  *egin.Component
}

func (s *OrderStockTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.cmd = testioc.InitRedis()
	require.NoError(s.T(), dao.InitTables(s.db))

	var err error
	s.catalog, err = catalog.InitModule(s.db, testioc.InitCache(), s.cmd)
	require.NoError(s.T(), err)

	ctrl := gomock.NewController(s.T())
	manager := logisticsmocks.NewMockManager(ctrl)
	manager.EXPECT().Check(gomock.Any()).Return(logistics.ErrConfiguration).AnyTimes()
	module, err := order.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(),
		s.catalog, &logistics.Module{Svc: manager})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"debug": true})
	s.server = egin.Load("server").Build()
	s.server.Use(test.WithSession(testUID, false))
	module.Hdl.PrivateRoutes(s.server.Engine)
}

func (s *OrderStockTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "products", "categories", "districts"} {
		require.NoError(s.T(), s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
	ctx := context.Background()
	keys, err := s.cmd.Keys(ctx, "dokan:catalog:*").Result()
	require.NoError(s.T(), err)
	if len(keys) > 0 {
		require.NoError(s.T(), s.cmd.Del(ctx, keys...).Err())
	}
}

func (s *OrderStockTestSuite) TestLastUnit() {
	t := s.T()
	ctx := context.Background()
	cid, err := s.catalog.AdminSvc.SaveCategory(ctx, catalog.Category{Name: "Tea"})
	require.NoError(t, err)
	pid, err := s.catalog.AdminSvc.SaveProduct(ctx, catalog.Product{
		Name:     "Green Tea",
		Price:    decimal.RequireFromString("120.50"),
		Stock:    1,
		Category: catalog.Category{ID: cid},
	})
	require.NoError(t, err)
	_, err = s.catalog.AdminSvc.SaveDistrict(ctx, catalog.District{
		Name: "Dhaka", DeliveryCharge: decimal.RequireFromString("60"), IsActive: true,
	})
	require.NoError(t, err)

	const buyers = 2
	reqs := make([]*http.Request, 0, buyers)
	for i := 0; i < buyers; i++ {
		req, err := http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID: fmt.Sprintf("last-unit-%d", i),
			Items:     []web.OrderItemReq{{ProductID: pid, Quantity: 1, Price: "120.50"}},
			Address: web.ShippingAddress{
				FullName: "Rahim",
				Phone:    "01700000000",
				Address:  "House 1, Road 2",
				District: "Dhaka",
			},
			PaymentMethod: "cod",
			ItemsPrice:    "120.50",
			ShippingPrice: "60.00",
			TotalPrice:    "180.50",
		}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		reqs = append(reqs, req)
	}

	recorders := make([]test.JSONResponseRecorder[web.Order], buyers)
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	for i := range reqs {
		recorders[i] = test.NewJSONResponseRecorder[web.Order]()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			s.server.ServeHTTP(recorders[i], reqs[i])
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, rejected int
	for _, recorder := range recorders {
		switch recorder.Code {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			assert.Equal(t, errs.InsufficientStock.Code, recorder.MustScan().Code)
			rejected++
		default:
			t.Fatalf("意外的状态码 %d", recorder.Code)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)

	var stock int64
	require.NoError(t, s.db.Raw("SELECT `stock` FROM `products` WHERE `id` = ?", pid).Scan(&stock).Error)
	assert.Equal(t, int64(0), stock)
	var orders int64
	require.NoError(t, s.db.Model(&dao.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)
}
