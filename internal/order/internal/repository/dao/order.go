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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go OrderDAO
type OrderDAO interface {
	// Create 写入订单和订单项，ctx 中有事务就加入该事务
	Create(ctx context.Context, o Order, items []OrderItem) error
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindItems(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	// List status 为空表示全部
	List(ctx context.Context, status string, offset, limit int) ([]Order, error)
	Count(ctx context.Context, status string) (int64, error)

	// UpdateStatus 当前状态是 from 才会更新，返回 false 表示状态已经变了
	UpdateStatus(ctx context.Context, id int64, from, to string) (bool, error)
	// ClaimDispatch 抢占发货，返回 false 表示已经被别的请求抢占
	ClaimDispatch(ctx context.Context, id int64, provider string) (bool, error)
	// ReleaseDispatch 只释放还没有写入物流单号的抢占
	ReleaseDispatch(ctx context.Context, id int64, provider string) error
	// RecordDispatch 回写物流信息，订单还在 pending 或 processing 时改为 shipped
	RecordDispatch(ctx context.Context, id int64, d Dispatch) error
	// MarkPaid 返回 false 表示已经收过款了
	MarkPaid(ctx context.Context, id int64, paidAt int64) (bool, error)
	Purge(ctx context.Context, id int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) error {
	if o.Ctime == 0 {
		o.Ctime = time.Now().UnixMilli()
	}
	o.Utime = o.Ctime
	for i := range items {
		items[i].OrderId = o.Id
		items[i].Ctime, items[i].Utime = o.Ctime, o.Ctime
	}
	create := func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			if isDuplicate(err) {
				return ErrDuplicate
			}
			return err
		}
		return tx.Create(&items).Error
	}
	if database.InTransaction(ctx) {
		return create(database.Conn(ctx, d.db))
	}
	return d.db.WithContext(ctx).Transaction(create)
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItems(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("order_id IN ?", orderIDs).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, status string, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.statusScope(ctx, status).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, status string) (int64, error) {
	var res int64
	err := d.statusScope(ctx, status).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) statusScope(ctx context.Context, status string) *gorm.DB {
	db := d.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected == 1, res.Error
}

func (d *OrderGORMDAO) ClaimDispatch(ctx context.Context, id int64, provider string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND logistics_service = ?", id, "").
		Updates(map[string]any{
			"logistics_service": provider,
			"utime":             time.Now().UnixMilli(),
		})
	return res.RowsAffected == 1, res.Error
}

func (d *OrderGORMDAO) ReleaseDispatch(ctx context.Context, id int64, provider string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND logistics_service = ? AND tracking_id = ?", id, provider, "").
		Updates(map[string]any{
			"logistics_service": "",
			"utime":             time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) RecordDispatch(ctx context.Context, id int64, dispatch Dispatch) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND logistics_service = ?", id, dispatch.Provider).
		Updates(map[string]any{
			"tracking_id":        dispatch.TrackingId,
			"logistics_response": sqlx.NewNullString(dispatch.RawResponse),
			"sent_at":            dispatch.SentAt,
			"status":             gorm.Expr("CASE WHEN status IN ? THEN ? ELSE status END", []string{"pending", "processing"}, "shipped"),
			"utime":              time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *OrderGORMDAO) MarkPaid(ctx context.Context, id int64, paidAt int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND paid = ?", id, false).
		Updates(map[string]any{
			"paid":    true,
			"paid_at": paidAt,
			"utime":   time.Now().UnixMilli(),
		})
	return res.RowsAffected == 1, res.Error
}

func (d *OrderGORMDAO) Purge(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}
