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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	"github.com/ecodeclub/dokan/internal/order/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

const releaseTimeout = 3 * time.Second

// DispatchService 把订单交给物流服务商，每个订单最多成功发货一次
//
//go:generate mockgen -source=./dispatch.go -package=ordermocks -destination=../../mocks/dispatch.mock.go DispatchService
type DispatchService interface {
	// Dispatch 服务商拒单时返回的 DispatchResult 带有原始响应，note 是给快递员的备注
	Dispatch(ctx context.Context, sn string, provider string, note string) (domain.Order, logistics.DispatchResult, error)
	Providers() []logistics.ProviderStatus
}

type dispatchService struct {
	repo     repository.OrderRepository
	manager  logistics.Manager
	producer event.OrderEventProducer
	logger   *elog.Component
}

func NewDispatchService(repo repository.OrderRepository,
	manager logistics.Manager,
	producer event.OrderEventProducer) DispatchService {
	return &dispatchService{
		repo:     repo,
		manager:  manager,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *dispatchService) Providers() []logistics.ProviderStatus {
	return s.manager.Providers()
}

func (s *dispatchService) Dispatch(ctx context.Context, sn string, provider string, note string) (domain.Order, logistics.DispatchResult, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, logistics.DispatchResult{}, err
	}
	if order.Dispatched() {
		return domain.Order{}, logistics.DispatchResult{}, fmt.Errorf("%w: sn=%s, provider=%s",
			domain.ErrAlreadyDispatched, sn, order.Logistics.Provider)
	}
	p, err := logistics.ParseProvider(provider)
	if err != nil {
		return domain.Order{}, logistics.DispatchResult{}, err
	}
	if err = s.manager.Check(p); err != nil {
		return domain.Order{}, logistics.DispatchResult{}, err
	}

	ok, err := s.repo.ClaimDispatch(ctx, order.ID, p.String())
	if err != nil {
		return domain.Order{}, logistics.DispatchResult{}, err
	}
	if !ok {
		return domain.Order{}, logistics.DispatchResult{}, fmt.Errorf("%w: sn=%s", domain.ErrAlreadyDispatched, sn)
	}

	res, err := s.manager.Dispatch(ctx, p, s.shipment(order, note))
	if err != nil {
		s.release(ctx, order, p)
		return domain.Order{}, res, err
	}

	// 服务商已经接单，回写失败时保留抢占，避免重复发货
	sentAt := time.Now().UnixMilli()
	l := domain.Logistics{
		Provider:    p.String(),
		TrackingID:  res.TrackingID,
		RawResponse: string(res.Raw),
		SentAt:      sentAt,
	}
	if err = s.repo.RecordDispatch(ctx, order.ID, l); err != nil {
		s.logger.Error("物流信息回写失败，需要人工核对",
			elog.String("order_sn", sn),
			elog.String("provider", p.String()),
			elog.String("tracking_id", res.TrackingID),
			elog.FieldErr(err))
		return domain.Order{}, res, err
	}
	order.Logistics = l
	if order.Status == domain.StatusPending || order.Status == domain.StatusProcessing {
		order.Status = domain.StatusShipped
	}
	order.Utime = sentAt
	publishEvent(ctx, s.producer, s.logger, event.EventTypeDispatched, order)
	return order, res, nil
}

// release 调用方放弃请求也要释放，否则订单再也无法发货
func (s *dispatchService) release(ctx context.Context, order domain.Order, p logistics.Provider) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := s.repo.ReleaseDispatch(ctx, order.ID, p.String()); err != nil {
		s.logger.Error("释放发货抢占失败",
			elog.String("order_sn", order.SN),
			elog.String("provider", p.String()),
			elog.FieldErr(err))
	}
}

func (s *dispatchService) shipment(order domain.Order, note string) logistics.Shipment {
	names := slice.Map(order.Lines, func(idx int, src domain.OrderLine) string {
		return fmt.Sprintf("%s x%d", src.Name, src.Quantity)
	})
	return logistics.Shipment{
		OrderSN:         order.SN,
		RecipientName:   order.Address.FullName,
		RecipientPhone:  order.Address.Phone,
		Address:         order.Address.Address,
		District:        order.Address.District,
		City:            order.Address.City,
		PostalCode:      order.Address.PostalCode,
		ItemQuantity:    order.ItemQuantity(),
		ItemDescription: strings.Join(names, ", "),
		Value:           order.ItemsPrice,
		CashToCollect:   order.CashToCollect(),
		Note:            strings.TrimSpace(note),
	}
}
