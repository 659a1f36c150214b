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

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/dokan/internal/catalog"
	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	"github.com/ecodeclub/dokan/internal/order/internal/repository"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/cache"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/dao"
	"github.com/ecodeclub/dokan/internal/order/internal/service"
	"github.com/ecodeclub/dokan/internal/order/internal/web"
	"github.com/ecodeclub/dokan/internal/pkg/database"
	"github.com/ecodeclub/dokan/internal/pkg/sequencenumber"
	"github.com/ecodeclub/dokan/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	initConfig,
	initServiceConfig,
	initRequestCache,
	initIDGenerator,
	initSNGenerator,
	repository.NewOrderRepository,
	database.NewTxManager,
	wire.Bind(new(service.Transactor), new(*database.TxManager)),
	event.NewOrderEventProducer,
	service.NewValidator,
	service.NewService,
	service.NewAdminService,
	service.NewDispatchService,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ,
	catalogModule *catalog.Module, logisticsModule *logistics.Module) (*Module, error) {
	wire.Build(
		ServiceSet,
		wire.FieldsOf(new(*catalog.Module), "Svc", "StockLedger"),
		wire.FieldsOf(new(*logistics.Module), "Svc"),
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

type Config struct {
	DefaultCountry string `yaml:"defaultCountry"`
	// RequestExpiration 下单请求去重的有效期
	RequestExpiration time.Duration `yaml:"requestExpiration"`
	// Node 雪花算法的节点号，每个实例不同
	Node int64 `yaml:"node"`
}

func initConfig() Config {
	var cfg Config
	if econf.Get("order") == nil {
		return cfg
	}
	if err := econf.UnmarshalKey("order", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func initServiceConfig(cfg Config) service.Config {
	return service.Config{DefaultCountry: cfg.DefaultCountry}
}

func initRequestCache(ec ecache.Cache, cfg Config) cache.RequestCache {
	return cache.NewRequestECache(ec, cfg.RequestExpiration)
}

func initIDGenerator(cfg Config) (service.IDGenerator, error) {
	g, err := snowflake.NewIDGenerator(cfg.Node)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func initSNGenerator() service.SNGenerator {
	return sequencenumber.NewGenerator()
}
