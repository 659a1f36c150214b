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

package catalog

import (
	"sync"
	"time"

	"github.com/ecodeclub/dokan/internal/catalog/internal/job"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/dokan/internal/catalog/internal/service"
	"github.com/ecodeclub/dokan/internal/catalog/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	dao.NewCategoryGORMDAO,
	dao.NewDistrictGORMDAO,
	initCacheConfig,
	initCatalogCache,
	repository.NewProductRepository,
	repository.NewCategoryRepository,
	repository.NewDistrictRepository,
	service.NewInvalidator,
	service.NewService,
	service.NewAdminService,
	service.NewStockLedger,
)

func InitModule(db *egorm.Component, ec ecache.Cache, cmd redis.Cmdable) (*Module, error) {
	wire.Build(
		ServiceSet,
		web.NewHandler,
		web.NewAdminHandler,
		initWarmCatalogCacheJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}

func initCacheConfig() repository.CacheConfig {
	var cfg repository.CacheConfig
	if econf.Get("catalog.cache") == nil {
		return cfg
	}
	if err := econf.UnmarshalKey("catalog.cache", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func initCatalogCache(ec ecache.Cache, cmd redis.Cmdable, cfg repository.CacheConfig) cache.CatalogCache {
	// ec 已经带上了 ioc 按同一个配置设置的命名空间
	return cache.NewCatalogECache(ec, cmd, econf.GetString("redis.namespace"), cfg.IndexExpiration())
}

func initWarmCatalogCacheJob(svc service.Service) *job.WarmCatalogCacheJob {
	type Config struct {
		PageSize int           `yaml:"pageSize"`
		Timeout  time.Duration `yaml:"timeout"`
	}
	cfg := Config{PageSize: 20, Timeout: time.Minute}
	if econf.Get("catalog.warm") != nil {
		if err := econf.UnmarshalKey("catalog.warm", &cfg); err != nil {
			panic(err)
		}
	}
	return job.NewWarmCatalogCacheJob(svc, cfg.PageSize, cfg.Timeout)
}
