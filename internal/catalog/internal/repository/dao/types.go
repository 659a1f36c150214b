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
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicate      = errors.New("唯一索引冲突")
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Category{}, &Product{}, &District{})
}

type Product struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name        string          `gorm:"type:varchar(255);not null;comment:商品名称"`
	Slug        string          `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_slug;comment:商品对外展示的唯一标识"`
	Description string          `gorm:"type:text;comment:商品描述"`
	Image       string          `gorm:"type:varchar(512);not null;default:'';comment:商品主图"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:单价"`
	Stock       int64           `gorm:"not null;default:0;check:chk_product_stock,stock >= 0;comment:库存数量, 永远不小于0"`
	CategoryId  int64           `gorm:"not null;index:idx_category_id;comment:分类ID"`
	Featured    bool            `gorm:"not null;default:false;index:idx_featured;comment:是否推荐"`
	Ctime       int64
	Utime       int64
}

type Category struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:分类自增ID"`
	Name  string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_category_name;comment:分类名称"`
	Slug  string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_category_slug;comment:分类对外展示的唯一标识"`
	Ctime int64
	Utime int64
}

type District struct {
	Id             int64           `gorm:"primaryKey;autoIncrement;comment:配送区域自增ID"`
	Name           string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_district_name;comment:区域名称"`
	DeliveryCharge decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:运费"`
	IsActive       bool            `gorm:"not null;default:true;comment:是否可配送"`
	Ctime          int64
	Utime          int64
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const duplicateErr uint16 = 1062
		return me.Number == duplicateErr
	}
	return false
}
