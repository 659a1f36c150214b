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
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
	g.POST("/list", ginx.BS[Page](h.List))
}

// CreateOrder 下单，返回订单详情
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	po, err := req.toDomain(sess.Claims().Uid)
	if err != nil {
		return renderError(ctx, err)
	}
	order, err := h.svc.PlaceOrder(ctx.Request.Context(), po)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBuyerOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	offset, limit := req.normalize()
	orders, total, err := h.svc.ListBuyerOrders(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: OrderList{
		Total:  total,
		Orders: slice.Map(orders, func(idx int, src domain.Order) Order { return newOrder(src) }),
	}}, nil
}
