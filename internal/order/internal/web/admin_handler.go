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

package web

import (
	"errors"

	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc         service.AdminService
	dispatchSvc service.DispatchService
}

func NewAdminHandler(svc service.AdminService, dispatchSvc service.DispatchService) *AdminHandler {
	return &AdminHandler{svc: svc, dispatchSvc: dispatchSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[SNReq](h.Detail))
	g.POST("/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/paid", ginx.B[SNReq](h.MarkPaid))
	g.POST("/dispatch", ginx.B[DispatchReq](h.Dispatch))
	g.POST("/purge", ginx.B[SNReq](h.Purge))
	server.POST("/logistics/providers", ginx.W(h.Providers))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	offset, limit := req.normalize()
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), domain.Status(req.Status), offset, limit)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: OrderList{
		Total:  total,
		Orders: slice.Map(orders, func(idx int, src domain.Order) Order { return newAdminOrder(src) }),
	}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.SN)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newAdminOrder(order)}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), req.SN, domain.Status(req.Status))
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newAdminOrder(order)}, nil
}

// MarkPaid 货到付款的订单收到货款
func (h *AdminHandler) MarkPaid(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	order, err := h.svc.MarkPaid(ctx.Request.Context(), req.SN)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newAdminOrder(order)}, nil
}

func (h *AdminHandler) Dispatch(ctx *ginx.Context, req DispatchReq) (ginx.Result, error) {
	order, res, err := h.dispatchSvc.Dispatch(ctx.Request.Context(), req.SN, req.Provider, req.Note)
	if errors.Is(err, logistics.ErrProvider) {
		return renderErrorWithData(ctx, err, DispatchResp{Result: newDispatchResult(res)})
	}
	if err != nil {
		return renderError(ctx, err)
	}
	o := newAdminOrder(order)
	return ginx.Result{Data: DispatchResp{
		Order:  &o,
		Result: newDispatchResult(res),
	}}, nil
}

func (h *AdminHandler) Purge(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	if err := h.svc.Purge(ctx.Request.Context(), req.SN); err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Providers(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: slice.Map(h.dispatchSvc.Providers(), func(idx int, src logistics.ProviderStatus) Provider {
		return Provider{Name: src.Provider.String(), Configured: src.Configured}
	})}, nil
}
