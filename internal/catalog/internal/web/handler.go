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
	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[Page](h.ProductList))
	g.POST("/detail", ginx.B[IDReq](h.ProductDetail))
	g.POST("/featured", ginx.W(h.FeaturedProducts))
	g.POST("/category", ginx.B[CategoryProductsReq](h.CategoryProducts))
	g.POST("/related", ginx.B[IDReq](h.RelatedProducts))
	server.POST("/category/list", ginx.W(h.Categories))
	server.POST("/district/list", ginx.W(h.ActiveDistricts))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) ProductList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	offset, limit := req.normalize()
	products, total, err := h.svc.ListProducts(ctx.Request.Context(), offset, limit)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: h.toProductList(products, total)}, nil
}

func (h *Handler) ProductDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.ProductDetail(ctx.Request.Context(), req.ID)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *Handler) FeaturedProducts(ctx *ginx.Context) (ginx.Result, error) {
	products, err := h.svc.FeaturedProducts(ctx.Request.Context())
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: h.toProductList(products, int64(len(products)))}, nil
}

func (h *Handler) CategoryProducts(ctx *ginx.Context, req CategoryProductsReq) (ginx.Result, error) {
	offset, limit := req.normalize()
	products, total, err := h.svc.ListCategoryProducts(ctx.Request.Context(), req.CategoryID, offset, limit)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: h.toProductList(products, total)}, nil
}

func (h *Handler) RelatedProducts(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	products, err := h.svc.RelatedProducts(ctx.Request.Context(), req.ID)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: h.toProductList(products, int64(len(products)))}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	categories, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: slice.Map(categories, func(idx int, src domain.Category) Category {
		return newCategory(src)
	})}, nil
}

func (h *Handler) ActiveDistricts(ctx *ginx.Context) (ginx.Result, error) {
	districts, err := h.svc.ActiveDistricts(ctx.Request.Context())
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: slice.Map(districts, func(idx int, src domain.District) District {
		return newDistrict(src)
	})}, nil
}

func (h *Handler) toProductList(products []domain.Product, total int64) ProductList {
	return ProductList{
		Total: total,
		Products: slice.Map(products, func(idx int, src domain.Product) Product {
			return newProduct(src)
		}),
	}
}
