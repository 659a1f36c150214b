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
	"database/sql"
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicate      = errors.New("订单序列号冲突")
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	Id            int64           `gorm:"primaryKey;autoIncrement:false;comment:订单ID, 雪花算法生成"`
	SN            string          `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId       int64           `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	FullName      string          `gorm:"type:varchar(128);not null;comment:收货人"`
	Phone         string          `gorm:"type:varchar(32);not null;comment:收货人电话"`
	Address       string          `gorm:"type:varchar(512);not null;comment:详细地址"`
	District      string          `gorm:"type:varchar(128);not null;comment:配送区域"`
	City          sql.NullString  `gorm:"type:varchar(128);comment:城市"`
	PostalCode    sql.NullString  `gorm:"type:varchar(32);comment:邮编"`
	Country       string          `gorm:"type:varchar(64);not null;comment:国家"`
	PaymentMethod string          `gorm:"type:varchar(16);not null;comment:支付方式 cod=货到付款 online=在线支付"`
	ItemsPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:商品总价"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:运费"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:订单总价"`
	Paid          bool            `gorm:"not null;default:false;comment:是否已收款"`
	PaidAt        int64           `gorm:"not null;default:0;comment:收款时间"`
	Status        string          `gorm:"type:varchar(16);not null;index:idx_status;comment:订单状态 pending processing shipped delivered cancelled"`
	// 非空就表示已经发货，只能写入一次
	LogisticsService  string         `gorm:"type:varchar(32);not null;default:'';comment:物流服务商"`
	TrackingId        string         `gorm:"type:varchar(128);not null;default:'';comment:物流单号"`
	LogisticsResponse sql.NullString `gorm:"type:text;comment:物流服务商原始响应"`
	SentAt            int64          `gorm:"not null;default:0;comment:发货时间"`
	Ctime             int64
	Utime             int64
}

type OrderItem struct {
	Id        int64           `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64           `gorm:"not null;index:idx_order_id;comment:订单ID"`
	ProductId int64           `gorm:"not null;index:idx_product_id;comment:商品ID"`
	Name      string          `gorm:"type:varchar(255);not null;comment:下单时的商品名称"`
	Slug      string          `gorm:"type:varchar(255);not null;comment:下单时的商品slug"`
	Image     string          `gorm:"type:varchar(512);not null;default:'';comment:下单时的商品主图"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:下单时的单价"`
	Quantity  int64           `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}

// Dispatch 发货成功后回写的物流信息
type Dispatch struct {
	Provider    string
	TrackingId  string
	RawResponse string
	SentAt      int64
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const duplicateErr uint16 = 1062
		return me.Number == duplicateErr
	}
	return false
}
