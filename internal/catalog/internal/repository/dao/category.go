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

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./category.go -package=daomocks -destination=./mocks/category.mock.go CategoryDAO
type CategoryDAO interface {
	FindByID(ctx context.Context, id int64) (Category, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Category, error)
	List(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, c Category) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryGORMDAO struct {
	db *egorm.Component
}

func NewCategoryGORMDAO(db *egorm.Component) CategoryDAO {
	return &CategoryGORMDAO{db: db}
}

func (d *CategoryGORMDAO) FindByID(ctx context.Context, id int64) (Category, error) {
	var res Category
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Category, error) {
	var res []Category
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) List(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Order("name ASC").Find(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) Save(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := d.db.WithContext(ctx).Create(&c).Error
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return c.Id, err
	}
	res := d.db.WithContext(ctx).Model(&Category{}).Where("id = ?", c.Id).
		Updates(map[string]any{
			"name":  c.Name,
			"slug":  c.Slug,
			"utime": c.Utime,
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
	return c.Id, nil
}

func (d *CategoryGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Category{}).Error
}
