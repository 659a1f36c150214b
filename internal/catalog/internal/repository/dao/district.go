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
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./district.go -package=daomocks -destination=./mocks/district.mock.go DistrictDAO
type DistrictDAO interface {
	FindByName(ctx context.Context, name string) (District, error)
	FindByID(ctx context.Context, id int64) (District, error)
	List(ctx context.Context, onlyActive bool) ([]District, error)
	// Save 有 ID 时按 ID 更新，否则按名称插入或者更新
	Save(ctx context.Context, d District) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type DistrictGORMDAO struct {
	db *egorm.Component
}

func NewDistrictGORMDAO(db *egorm.Component) DistrictDAO {
	return &DistrictGORMDAO{db: db}
}

func (d *DistrictGORMDAO) FindByName(ctx context.Context, name string) (District, error) {
	var res District
	err := d.db.WithContext(ctx).Where("name = ?", name).First(&res).Error
	return res, err
}

func (d *DistrictGORMDAO) FindByID(ctx context.Context, id int64) (District, error) {
	var res District
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *DistrictGORMDAO) List(ctx context.Context, onlyActive bool) ([]District, error) {
	var res []District
	db := d.db.WithContext(ctx)
	if onlyActive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&res).Error
	return res, err
}

func (d *DistrictGORMDAO) Save(ctx context.Context, district District) (int64, error) {
	now := time.Now().UnixMilli()
	district.Ctime, district.Utime = now, now
	if district.Id > 0 {
		res := d.db.WithContext(ctx).Model(&District{}).Where("id = ?", district.Id).
			Updates(map[string]any{
				"name":            district.Name,
				"delivery_charge": district.DeliveryCharge,
				"is_active":       district.IsActive,
				"utime":           now,
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
		return district.Id, nil
	}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"delivery_charge": district.DeliveryCharge,
			"is_active":       district.IsActive,
			"utime":           now,
		}),
	}).Create(&district).Error
	if err != nil {
		return 0, err
	}
	// 命中 ON DUPLICATE KEY UPDATE 时回填的 ID 不可靠
	found, err := d.FindByName(ctx, district.Name)
	return found.Id, err
}

func (d *DistrictGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&District{}).Error
}
