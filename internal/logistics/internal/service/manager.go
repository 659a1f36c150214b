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

	"github.com/ecodeclub/dokan/internal/logistics/internal/client"
	"github.com/ecodeclub/dokan/internal/logistics/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dokan",
		Subsystem: "logistics",
		Name:      "dispatch_total",
		Help:      "发往物流服务商的运单数",
	}, []string{"provider", "outcome"})
	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dokan",
		Subsystem: "logistics",
		Name:      "dispatch_duration_seconds",
		Help:      "物流服务商接口耗时",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider"})
)

//go:generate mockgen -source=./manager.go -package=logisticsmocks -destination=../../mocks/logistics.mock.go Manager
type Manager interface {
	// Providers 列出所有服务商以及是否已经配置
	Providers() []domain.ProviderStatus
	// Check 不发起网络请求，未知服务商返回 ErrUnknownProvider，配置缺失返回 ErrConfiguration
	Check(p domain.Provider) error
	// Dispatch 不重试，错误是 ErrUnknownProvider、ErrConfiguration 或者 ErrProvider
	Dispatch(ctx context.Context, p domain.Provider, s domain.Shipment) (domain.DispatchResult, error)
}

type dispatchManager struct {
	pathao    client.Client
	steadfast client.Client
	redx      client.Client
	timeout   time.Duration
	logger    *elog.Component
}

func NewManager(timeout time.Duration, pathao, steadfast, redx client.Client) Manager {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &dispatchManager{
		pathao:    pathao,
		steadfast: steadfast,
		redx:      redx,
		timeout:   timeout,
		logger:    elog.DefaultLogger,
	}
}

func (m *dispatchManager) client(p domain.Provider) (client.Client, error) {
	switch p {
	case domain.ProviderPathao:
		return m.pathao, nil
	case domain.ProviderSteadfast:
		return m.steadfast, nil
	case domain.ProviderRedX:
		return m.redx, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, p)
	}
}

func (m *dispatchManager) Providers() []domain.ProviderStatus {
	providers := domain.Providers()
	res := make([]domain.ProviderStatus, 0, len(providers))
	for _, p := range providers {
		res = append(res, domain.ProviderStatus{Provider: p, Configured: m.Check(p) == nil})
	}
	return res
}

func (m *dispatchManager) Check(p domain.Provider) error {
	c, err := m.client(p)
	if err != nil {
		return err
	}
	return c.Ready()
}

func (m *dispatchManager) Dispatch(ctx context.Context, p domain.Provider, s domain.Shipment) (domain.DispatchResult, error) {
	c, err := m.client(p)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	if err = c.Ready(); err != nil {
		dispatchTotal.WithLabelValues(p.String(), "configuration").Inc()
		return domain.DispatchResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	start := time.Now()
	res, err := c.Send(ctx, s)
	dispatchDuration.WithLabelValues(p.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		if !errors.Is(err, domain.ErrProvider) && !errors.Is(err, domain.ErrConfiguration) {
			err = fmt.Errorf("%w: provider=%s, %w", domain.ErrProvider, p, err)
		}
		dispatchTotal.WithLabelValues(p.String(), "failed").Inc()
		m.logger.Error("物流下单失败",
			elog.String("provider", p.String()),
			elog.String("order_sn", s.OrderSN),
			elog.String("message", res.Message),
			elog.FieldErr(err))
		res.Provider, res.Success = p, false
		return res, err
	}
	dispatchTotal.WithLabelValues(p.String(), "success").Inc()
	m.logger.Info("物流下单成功",
		elog.String("provider", p.String()),
		elog.String("order_sn", s.OrderSN),
		elog.String("tracking_id", res.TrackingID))
	return res, nil
}
