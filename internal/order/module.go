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

package order

import (
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/event"
	"github.com/ecodeclub/dokan/internal/order/internal/service"
	"github.com/ecodeclub/dokan/internal/order/internal/web"
)

type (
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	Service         = service.Service
	AdminService    = service.AdminService
	DispatchService = service.DispatchService

	Order      = domain.Order
	OrderLine  = domain.OrderLine
	Status     = domain.Status
	OrderEvent = event.OrderEvent
)

const (
	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusShipped    = domain.StatusShipped
	StatusDelivered  = domain.StatusDelivered
	StatusCancelled  = domain.StatusCancelled
)

var (
	ErrValidation = domain.ErrValidation
	ErrConflict   = domain.ErrConflict
	ErrNotFound   = domain.ErrNotFound
)

type Module struct {
	Svc         Service
	AdminSvc    AdminService
	DispatchSvc DispatchService
	Hdl         *Handler
	AdminHdl    *AdminHandler
}
