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

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("商品不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrDistrictNotFound  = errors.New("配送区域不存在")
	ErrInsufficientStock = errors.New("库存不足")
	ErrCategoryInUse     = errors.New("分类下仍有商品")
	ErrDuplicateName     = errors.New("名称或 slug 已存在")
	ErrInvalidProduct    = errors.New("商品信息非法")
	ErrInvalidCategory   = errors.New("分类信息非法")
	ErrInvalidDistrict   = errors.New("配送区域信息非法")
)

type Product struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Image       string
	// 精确到分，比较时必须用 Equal
	Price    decimal.Decimal
	Stock    int64
	Category Category
	Featured bool
	Ctime    int64
	Utime    int64
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) Validate() error {
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 || p.Category.ID <= 0 {
		return ErrInvalidProduct
	}
	return nil
}

type Category struct {
	ID   int64
	Name string
	Slug string
}

// StockItem 一次扣减的商品及数量
type StockItem struct {
	ProductID int64
	Quantity  int64
}
