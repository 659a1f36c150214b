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

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	p := server.Group("/product")
	p.POST("/list", ginx.B[Page](h.ProductList))
	p.POST("/save", ginx.B[SaveProductReq](h.SaveProduct))
	p.POST("/delete", ginx.B[IDReq](h.DeleteProduct))

	c := server.Group("/category")
	c.POST("/save", ginx.B[SaveCategoryReq](h.SaveCategory))
	c.POST("/delete", ginx.B[IDReq](h.DeleteCategory))

	d := server.Group("/district")
	d.POST("/list", ginx.W(h.DistrictList))
	d.POST("/save", ginx.B[SaveDistrictReq](h.SaveDistrict))
	d.POST("/delete", ginx.B[IDReq](h.DeleteDistrict))
}

func (h *AdminHandler) ProductList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	offset, limit := req.normalize()
	products, total, err := h.svc.ListProducts(ctx.Request.Context(), offset, limit)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: ProductList{
		Total: total,
		Products: slice.Map(products, func(idx int, src domain.Product) Product {
			return newProduct(src)
		}),
	}}, nil
}

func (h *AdminHandler) SaveProduct(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	p, err := req.Product.toDomain()
	if err != nil {
		return renderError(ctx, err)
	}
	id, err := h.svc.SaveProduct(ctx.Request.Context(), p)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteProduct(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.DeleteProduct(ctx.Request.Context(), req.ID); err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	id, err := h.svc.SaveCategory(ctx.Request.Context(), domain.Category{
		ID:   req.Category.ID,
		Name: req.Category.Name,
		Slug: req.Category.Slug,
	})
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteCategory(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.DeleteCategory(ctx.Request.Context(), req.ID); err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) DistrictList(ctx *ginx.Context) (ginx.Result, error) {
	districts, err := h.svc.ListDistricts(ctx.Request.Context())
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: slice.Map(districts, func(idx int, src domain.District) District {
		return newDistrict(src)
	})}, nil
}

func (h *AdminHandler) SaveDistrict(ctx *ginx.Context, req SaveDistrictReq) (ginx.Result, error) {
	d, err := req.District.toDomain()
	if err != nil {
		return renderError(ctx, err)
	}
	id, err := h.svc.SaveDistrict(ctx.Request.Context(), d)
	if err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteDistrict(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.DeleteDistrict(ctx.Request.Context(), req.ID); err != nil {
		return renderError(ctx, err)
	}
	return ginx.Result{}, nil
}
