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

	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

// Invalidator 目录数据变更后删除受影响的缓存。
// 调用时数据库已经提交，所以删除失败只记录日志，由过期时间兜底。
type Invalidator struct {
	cache  cache.CatalogCache
	logger *elog.Component
}

func NewInvalidator(c cache.CatalogCache) *Invalidator {
	return &Invalidator{cache: c, logger: elog.DefaultLogger}
}

// ProductChanged before 是修改前的分类，新建商品时为 0
func (i *Invalidator) ProductChanged(ctx context.Context, id, beforeCategory, afterCategory int64) {
	i.delete(ctx, []string{cache.ProductKey(id), cache.FeaturedProductsKey},
		i.categoryGroups(beforeCategory, afterCategory)...)
	i.logger.Debug("商品缓存已失效", elog.Int64("pid", id))
}

func (i *Invalidator) CategoryChanged(ctx context.Context, id int64) {
	// 列表里带着分类名字
	i.delete(ctx, []string{cache.CategoriesKey}, i.categoryGroups(id)...)
}

func (i *Invalidator) DistrictChanged(ctx context.Context) {
	i.delete(ctx, []string{cache.ActiveDistrictsKey})
}

// StockChanged 下单扣减库存后调用，只影响商品详情
func (i *Invalidator) StockChanged(ctx context.Context, ids ...int64) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cache.ProductKey(id))
	}
	i.delete(ctx, keys)
}

func (i *Invalidator) categoryGroups(cids ...int64) []string {
	groups := []string{cache.ProductPagesGroup}
	seen := map[int64]struct{}{}
	for _, cid := range cids {
		if cid <= 0 {
			continue
		}
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		groups = append(groups, cache.CategoryProductsGroup(cid), cache.RelatedProductsGroup(cid))
	}
	return groups
}

func (i *Invalidator) delete(ctx context.Context, keys []string, groups ...string) {
	if err := i.cache.Delete(ctx, keys...); err != nil {
		i.logger.Error("删除缓存失败", elog.Any("keys", keys), elog.FieldErr(err))
	}
	if len(groups) == 0 {
		return
	}
	if err := i.cache.DeleteGroups(ctx, groups...); err != nil {
		i.logger.Error("删除缓存分组失败", elog.Any("groups", groups), elog.FieldErr(err))
	}
}
