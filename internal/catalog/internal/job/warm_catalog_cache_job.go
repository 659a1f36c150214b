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

package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/dokan/internal/catalog/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// WarmCatalogCacheJob 定时读一遍热点数据，让缓存在失效之后尽快被填上
type WarmCatalogCacheJob struct {
	svc      service.Service
	pageSize int
	timeout  time.Duration
	logger   *elog.Component
}

func NewWarmCatalogCacheJob(svc service.Service, pageSize int, timeout time.Duration) *WarmCatalogCacheJob {
	return &WarmCatalogCacheJob{svc: svc, pageSize: pageSize, timeout: timeout, logger: elog.DefaultLogger}
}

func (w *WarmCatalogCacheJob) Name() string {
	return "WarmCatalogCacheJob"
}

func (w *WarmCatalogCacheJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	var errs []error
	if _, err := w.svc.FeaturedProducts(ctx); err != nil {
		errs = append(errs, fmt.Errorf("预热推荐商品失败: %w", err))
	}
	if _, err := w.svc.ActiveDistricts(ctx); err != nil {
		errs = append(errs, fmt.Errorf("预热配送区域失败: %w", err))
	}
	if _, _, err := w.svc.ListProducts(ctx, 0, w.pageSize); err != nil {
		errs = append(errs, fmt.Errorf("预热商品列表失败: %w", err))
	}
	categories, err := w.svc.Categories(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("预热分类失败: %w", err))
	}
	for _, c := range categories {
		if _, _, err = w.svc.ListCategoryProducts(ctx, c.ID, 0, w.pageSize); err != nil {
			errs = append(errs, fmt.Errorf("预热分类商品失败 cid=%d: %w", c.ID, err))
		}
	}
	w.logger.Info("商品缓存预热完成", elog.FieldCost(time.Since(start)), elog.Int("categories", len(categories)))
	return errors.Join(errs...)
}
