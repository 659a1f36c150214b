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
	"testing"

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	cachemocks "github.com/ecodeclub/dokan/internal/catalog/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/dokan/internal/catalog/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStockLedger_Decrement(t *testing.T) {
	testCases := []struct {
		name    string
		items   []domain.StockItem
		mock    func(pr *repomocks.MockProductRepository)
		wantErr error
	}{
		{
			name: "相同商品合并后按 id 顺序扣减",
			items: []domain.StockItem{
				{ProductID: 7, Quantity: 1},
				{ProductID: 3, Quantity: 2},
				{ProductID: 7, Quantity: 4},
			},
			mock: func(pr *repomocks.MockProductRepository) {
				gomock.InOrder(
					pr.EXPECT().DecrementStock(gomock.Any(), domain.StockItem{ProductID: 3, Quantity: 2}).Return(nil),
					pr.EXPECT().DecrementStock(gomock.Any(), domain.StockItem{ProductID: 7, Quantity: 5}).Return(nil),
				)
			},
		},
		{
			name: "库存不足立刻返回",
			items: []domain.StockItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 2},
			},
			mock: func(pr *repomocks.MockProductRepository) {
				pr.EXPECT().DecrementStock(gomock.Any(), domain.StockItem{ProductID: 1, Quantity: 2}).
					Return(domain.ErrInsufficientStock)
			},
			wantErr: domain.ErrInsufficientStock,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			pr := repomocks.NewMockProductRepository(ctrl)
			tc.mock(pr)
			ledger := NewStockLedger(pr, NewInvalidator(cachemocks.NewMockCatalogCache(ctrl)))
			err := ledger.Decrement(context.Background(), tc.items)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestStockLedger_Committed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockCatalogCache(ctrl)
	c.EXPECT().Delete(gomock.Any(), "product:3", "product:7").Return(nil)
	ledger := NewStockLedger(repomocks.NewMockProductRepository(ctrl), NewInvalidator(c))
	ledger.Committed(context.Background(), []domain.StockItem{
		{ProductID: 7, Quantity: 1},
		{ProductID: 3, Quantity: 1},
		{ProductID: 7, Quantity: 1},
	})
}
