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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/dokan/internal/catalog"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	"github.com/ecodeclub/dokan/internal/order/internal/repository"
	"github.com/ecodeclub/dokan/internal/order/internal/repository/cache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// Transactor 由 database.TxManager 实现
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type IDGenerator interface {
	Next() int64
}

type SNGenerator interface {
	Generate(buyerID int64) string
}

type Config struct {
	DefaultCountry string `yaml:"defaultCountry"`
}

func (c Config) withDefaults() Config {
	if c.DefaultCountry == "" {
		c.DefaultCountry = "Bangladesh"
	}
	return c
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service,AdminService
type Service interface {
	PlaceOrder(ctx context.Context, po domain.PlaceOrder) (domain.Order, error)
	// FindBuyerOrder 不属于该买家的订单当作不存在
	FindBuyerOrder(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
}

type AdminService interface {
	// ListOrders status 为空表示全部
	ListOrders(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	FindOrder(ctx context.Context, sn string) (domain.Order, error)
	UpdateStatus(ctx context.Context, sn string, to domain.Status) (domain.Order, error)
	MarkPaid(ctx context.Context, sn string) (domain.Order, error)
	Purge(ctx context.Context, sn string) error
}

type service struct {
	repo      repository.OrderRepository
	requests  cache.RequestCache
	validator *Validator
	stock     catalog.StockLedger
	tx        Transactor
	ids       IDGenerator
	sns       SNGenerator
	producer  event.OrderEventProducer
	cfg       Config
	logger    *elog.Component
}

func NewService(repo repository.OrderRepository,
	requests cache.RequestCache,
	validator *Validator,
	stock catalog.StockLedger,
	tx Transactor,
	ids IDGenerator,
	sns SNGenerator,
	producer event.OrderEventProducer,
	cfg Config) Service {
	return &service{
		repo:      repo,
		requests:  requests,
		validator: validator,
		stock:     stock,
		tx:        tx,
		ids:       ids,
		sns:       sns,
		producer:  producer,
		cfg:       cfg.withDefaults(),
		logger:    elog.DefaultLogger,
	}
}

func (s *service) PlaceOrder(ctx context.Context, po domain.PlaceOrder) (domain.Order, error) {
	if po.RequestID != "" {
		ok, err := s.requests.SetNX(ctx, po.BuyerID, po.RequestID)
		if err != nil {
			// 去重只是保护，缓存不可用时继续下单
			s.logger.Warn("检查下单请求失败",
				elog.Int64("buyer_id", po.BuyerID),
				elog.String("request_id", po.RequestID),
				elog.FieldErr(err))
		} else if !ok {
			return domain.Order{}, fmt.Errorf("%w: request_id=%s", domain.ErrDuplicateRequest, po.RequestID)
		}
	}
	order, err := s.placeOrder(ctx, po)
	if err != nil && po.RequestID != "" {
		if er := s.requests.Delete(ctx, po.BuyerID, po.RequestID); er != nil {
			s.logger.Warn("删除下单请求失败",
				elog.Int64("buyer_id", po.BuyerID),
				elog.String("request_id", po.RequestID),
				elog.FieldErr(er))
		}
	}
	return order, err
}

func (s *service) placeOrder(ctx context.Context, po domain.PlaceOrder) (domain.Order, error) {
	lines, err := s.validator.Validate(ctx, po)
	if err != nil {
		return domain.Order{}, err
	}
	if po.Address.Country == "" {
		po.Address.Country = s.cfg.DefaultCountry
	}
	now := time.Now().UnixMilli()
	order := domain.Order{
		ID:            s.ids.Next(),
		SN:            s.sns.Generate(po.BuyerID),
		BuyerID:       po.BuyerID,
		Lines:         lines,
		Address:       po.Address,
		PaymentMethod: po.PaymentMethod,
		ItemsPrice:    po.ItemsPrice,
		ShippingPrice: po.ShippingPrice,
		TotalPrice:    po.TotalPrice,
		Status:        domain.StatusPending,
		Ctime:         now,
		Utime:         now,
	}
	items := slice.Map(lines, func(idx int, src domain.OrderLine) catalog.StockItem {
		return catalog.StockItem{ProductID: src.ProductID, Quantity: src.Quantity}
	})
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if er := s.repo.CreateOrder(ctx, order); er != nil {
			return er
		}
		return s.stock.Decrement(ctx, items)
	})
	if errors.Is(err, catalog.ErrInsufficientStock) {
		// 校验之后库存被别的订单抢走了
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrInsufficientStock, err)
	}
	if err != nil {
		return domain.Order{}, err
	}
	s.stock.Committed(ctx, items)
	s.publish(ctx, event.EventTypeCreated, order)
	return order, nil
}

func (s *service) FindBuyerOrder(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if order.BuyerID != buyerID {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", domain.ErrOrderNotFound, sn)
	}
	return order, nil
}

func (s *service) ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListByBuyer(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, buyerID)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) publish(ctx context.Context, typ event.EventType, order domain.Order) {
	publishEvent(ctx, s.producer, s.logger, typ, order)
}

// publishEvent 事件发送失败只记录日志，订单已经落库
func publishEvent(ctx context.Context, producer event.OrderEventProducer,
	logger *elog.Component, typ event.EventType, order domain.Order) {
	evt := event.OrderEvent{
		Type:       typ,
		OrderSN:    order.SN,
		BuyerID:    order.BuyerID,
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice.StringFixed(2),
		Provider:   order.Logistics.Provider,
		TrackingID: order.Logistics.TrackingID,
		Utime:      order.Utime,
	}
	if err := producer.Produce(ctx, evt); err != nil {
		logger.Error("发送订单事件失败",
			elog.String("order_sn", order.SN),
			elog.String("type", string(typ)),
			elog.FieldErr(err))
	}
}

type adminService struct {
	repo     repository.OrderRepository
	producer event.OrderEventProducer
	logger   *elog.Component
}

func NewAdminService(repo repository.OrderRepository, producer event.OrderEventProducer) AdminService {
	return &adminService{repo: repo, producer: producer, logger: elog.DefaultLogger}
}

func (s *adminService) ListOrders(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *adminService) FindOrder(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *adminService) UpdateStatus(ctx context.Context, sn string, to domain.Status) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if !to.Valid() || !order.Status.CanTransitTo(to) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s, %s -> %s",
			domain.ErrIllegalStatusTransition, sn, order.Status, to)
	}
	if err = s.repo.UpdateStatus(ctx, order.ID, order.Status, to); err != nil {
		return domain.Order{}, err
	}
	order.Status = to
	order.Utime = time.Now().UnixMilli()
	publishEvent(ctx, s.producer, s.logger, event.EventTypeStatusChanged, order)
	return order, nil
}

// MarkPaid 货到付款收到货款。重复调用不会报错
func (s *adminService) MarkPaid(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Paid {
		return order, nil
	}
	if order.Status == domain.StatusCancelled {
		return domain.Order{}, fmt.Errorf("%w: sn=%s 已取消", domain.ErrIllegalStatusTransition, sn)
	}
	now := time.Now().UnixMilli()
	ok, err := s.repo.MarkPaid(ctx, order.ID, now)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return s.repo.FindBySN(ctx, sn)
	}
	order.Paid, order.PaidAt, order.Utime = true, now, now
	publishEvent(ctx, s.producer, s.logger, event.EventTypePaid, order)
	return order, nil
}

func (s *adminService) Purge(ctx context.Context, sn string) error {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	if err = s.repo.Purge(ctx, order.ID); err != nil {
		return err
	}
	s.logger.Info("订单已删除", elog.String("order_sn", sn), elog.Int64("buyer_id", order.BuyerID))
	return nil
}
