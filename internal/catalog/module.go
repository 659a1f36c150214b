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

package catalog

import (
	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/job"
	"github.com/ecodeclub/dokan/internal/catalog/internal/service"
	"github.com/ecodeclub/dokan/internal/catalog/internal/web"
)

type (
	Handler             = web.Handler
	AdminHandler        = web.AdminHandler
	Service             = service.Service
	AdminService        = service.AdminService
	StockLedger         = service.StockLedger
	WarmCatalogCacheJob = job.WarmCatalogCacheJob

	Product   = domain.Product
	Category  = domain.Category
	District  = domain.District
	StockItem = domain.StockItem
)

var (
	ErrProductNotFound   = domain.ErrProductNotFound
	ErrDistrictNotFound  = domain.ErrDistrictNotFound
	ErrInsufficientStock = domain.ErrInsufficientStock
)

type Module struct {
	Svc         Service
	AdminSvc    AdminService
	StockLedger StockLedger
	Hdl         *Handler
	AdminHdl    *AdminHandler
	WarmJob     *WarmCatalogCacheJob
}
