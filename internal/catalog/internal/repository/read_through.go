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
	"time"

	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

type CacheConfig struct {
	ProductExpiration time.Duration `yaml:"productExpiration"`
	ListExpiration    time.Duration `yaml:"listExpiration"`
}

// IndexExpiration 缓存分组索引的过期时间，不小于任何一种缓存
func (c CacheConfig) IndexExpiration() time.Duration {
	c = c.withDefaults()
	return max(c.ProductExpiration, c.ListExpiration)
}

func (c CacheConfig) withDefaults() CacheConfig {
	if c.ProductExpiration <= 0 {
		c.ProductExpiration = 10 * time.Minute
	}
	if c.ListExpiration <= 0 {
		c.ListExpiration = 5 * time.Minute
	}
	return c
}

// readThrough 缓存读失败一律当作未命中，回写失败只记日志。
// 同一个 key 的并发回源合并成一次。回源之前读到的版本交给 fill，
// 回源期间发生过失效就不写回，避免把旧数据写进缓存。
type readThrough struct {
	cache  cache.CatalogCache
	group  singleflight.Group
	logger *elog.Component
}

func newReadThrough(c cache.CatalogCache) *readThrough {
	return &readThrough{cache: c, logger: elog.DefaultLogger}
}

func get[T any](ctx context.Context, r *readThrough, key string,
	load func(ctx context.Context) (T, error),
	fill func(ctx context.Context, ver cache.Version, val T) error) (T, error) {
	var res T
	err := r.cache.Get(ctx, key, &res)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("读取缓存失败", elog.String("key", key), elog.FieldErr(err))
	}
	val, err, _ := r.group.Do(key, func() (any, error) {
		ver, verErr := r.cache.Version(ctx, key)
		v, er := load(ctx)
		if er != nil {
			return v, er
		}
		if verErr != nil {
			r.logger.Warn("读取缓存版本失败，不回写", elog.String("key", key), elog.FieldErr(verErr))
			return v, nil
		}
		er = fill(ctx, ver, v)
		switch {
		case errors.Is(er, cache.ErrStaleFill):
			r.logger.Debug("回源期间缓存已失效，不回写", elog.String("key", key))
		case er != nil:
			r.logger.Warn("回写缓存失败", elog.String("key", key), elog.FieldErr(er))
		}
		return v, nil
	})
	if err != nil {
		return res, err
	}
	return val.(T), nil
}
