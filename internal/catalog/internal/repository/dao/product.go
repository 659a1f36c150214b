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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/dokan/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./product.go -package=daomocks -destination=./mocks/product.mock.go ProductDAO
type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	ListByCategory(ctx context.Context, cid int64, offset, limit int) ([]Product, error)
	CountByCategory(ctx context.Context, cid int64) (int64, error)
	ListFeatured(ctx context.Context, limit int) ([]Product, error)
	ListRelated(ctx context.Context, cid, excludeID int64, limit int) ([]Product, error)
	Save(ctx context.Context, p Product) (int64, error)
	Delete(ctx context.Context, id int64) error
	// DecrementStock 库存足够才扣减，返回 false 表示库存不足或者商品不存在
	DecrementStock(ctx context.Context, id, quantity int64) (bool, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := database.Conn(ctx, d.db).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	if len(ids) == 0 {
		return res, nil
	}
	err := database.Conn(ctx, d.db).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListByCategory(ctx context.Context, cid int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("category_id = ?", cid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountByCategory(ctx context.Context, cid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("category_id = ?", cid).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListFeatured(ctx context.Context, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("featured = ?", true).
		Order("utime DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListRelated(ctx context.Context, cid, excludeID int64, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", cid, excludeID).
		Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return p.Id, err
	}
	// 管理员保存时以提交的库存为准
	res := d.db.WithContext(ctx).Model(&Product{}).Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"slug":        p.Slug,
			"description": p.Description,
			"image":       p.Image,
			"price":       p.Price,
			"stock":       p.Stock,
			"category_id": p.CategoryId,
			"featured":    p.Featured,
			"utime":       p.Utime,
		})
	if isDuplicate(res.Error) {
		return 0, ErrDuplicate
	}
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return p.Id, nil
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

func (d *ProductGORMDAO) DecrementStock(ctx context.Context, id, quantity int64) (bool, error) {
	res := database.Conn(ctx, d.db).Model(&Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
