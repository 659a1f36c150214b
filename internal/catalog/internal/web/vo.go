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

package web

import (
	"fmt"

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (p Page) normalize() (int, int) {
	offset, limit := p.Offset, p.Limit
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return offset, limit
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CategoryProductsReq struct {
	CategoryID int64 `json:"categoryID"`
	Page
}

type Product struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	// 金额用字符串传输，避免精度丢失
	Price        string `json:"price,omitempty"`
	Stock        int64  `json:"stock"`
	InStock      bool   `json:"inStock"`
	CategoryID   int64  `json:"categoryID,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	Featured     bool   `json:"featured"`
	Utime        int64  `json:"utime,omitempty"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Image:        p.Image,
		Price:        p.Price.StringFixed(2),
		Stock:        p.Stock,
		InStock:      p.InStock(),
		CategoryID:   p.Category.ID,
		CategoryName: p.Category.Name,
		Featured:     p.Featured,
		Utime:        p.Utime,
	}
}

func (p Product) toDomain() (domain.Product, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: price=%q", domain.ErrInvalidProduct, p.Price)
	}
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Image:       p.Image,
		Price:       price,
		Stock:       p.Stock,
		Category:    domain.Category{ID: p.CategoryID},
		Featured:    p.Featured,
	}, nil
}

type ProductList struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

func newCategory(c domain.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

type District struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	DeliveryCharge string `json:"deliveryCharge,omitempty"`
	IsActive       bool   `json:"isActive"`
}

func newDistrict(d domain.District) District {
	return District{
		ID:             d.ID,
		Name:           d.Name,
		DeliveryCharge: d.DeliveryCharge.StringFixed(2),
		IsActive:       d.IsActive,
	}
}

func (d District) toDomain() (domain.District, error) {
	charge, err := decimal.NewFromString(d.DeliveryCharge)
	if err != nil {
		return domain.District{}, fmt.Errorf("%w: deliveryCharge=%q", domain.ErrInvalidDistrict, d.DeliveryCharge)
	}
	return domain.District{
		ID:             d.ID,
		Name:           d.Name,
		DeliveryCharge: charge,
		IsActive:       d.IsActive,
	}, nil
}

type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveCategoryReq struct {
	Category Category `json:"category"`
}

type SaveDistrictReq struct {
	District District `json:"district"`
}
