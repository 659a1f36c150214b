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
	"fmt"
	"slices"

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository"
)

// StockLedger 扣减库存，只减不加
//
//go:generate mockgen -source=./stock.go -package=catalogmocks -destination=../../mocks/stock.mock.go StockLedger
type StockLedger interface {
	// Decrement 要在调用方的事务中执行，任何一项库存不足都返回 ErrInsufficientStock，
	// 由调用方回滚整个事务
	Decrement(ctx context.Context, items []domain.StockItem) error
	// Committed 事务提交之后调用，刷新商品详情缓存
	Committed(ctx context.Context, items []domain.StockItem)
}

type stockLedger struct {
	repo        repository.ProductRepository
	invalidator *Invalidator
}

func NewStockLedger(repo repository.ProductRepository, invalidator *Invalidator) StockLedger {
	return &stockLedger{repo: repo, invalidator: invalidator}
}

func (s *stockLedger) Decrement(ctx context.Context, items []domain.StockItem) error {
	for _, item := range merge(items) {
		if item.Quantity <= 0 {
			continue
		}
		err := s.repo.DecrementStock(ctx, item)
		if err != nil {
			return fmt.Errorf("%w: product_id=%d, quantity=%d", err, item.ProductID, item.Quantity)
		}
	}
	return nil
}

func (s *stockLedger) Committed(ctx context.Context, items []domain.StockItem) {
	ids := make([]int64, 0, len(items))
	for _, item := range merge(items) {
		ids = append(ids, item.ProductID)
	}
	s.invalidator.StockChanged(ctx, ids...)
}

// merge 合并同一商品的数量，并按商品 ID 排序，
// 并发订单按相同顺序加行锁，避免死锁
func merge(items []domain.StockItem) []domain.StockItem {
	quantities := make(map[int64]int64, len(items))
	for _, item := range items {
		quantities[item.ProductID] += item.Quantity
	}
	res := make([]domain.StockItem, 0, len(quantities))
	for id, q := range quantities {
		res = append(res, domain.StockItem{ProductID: id, Quantity: q})
	}
	slices.SortFunc(res, func(a, b domain.StockItem) int {
		switch {
		case a.ProductID < b.ProductID:
			return -1
		case a.ProductID > b.ProductID:
			return 1
		}
		return 0
	})
	return res
}
