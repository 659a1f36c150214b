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
	"net/http"

	"github.com/ecodeclub/dokan/internal/logistics"
	"github.com/ecodeclub/dokan/internal/order/internal/domain"
	"github.com/ecodeclub/dokan/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

// 具体错误在前，分类错误在后
var errorCodes = []struct {
	err    error
	status int
	code   errs.ErrorCode
}{
	{err: domain.ErrInvalidOrder, status: http.StatusBadRequest, code: errs.InvalidOrder},
	{err: domain.ErrProductNotFound, status: http.StatusBadRequest, code: errs.ProductNotFound},
	{err: domain.ErrInsufficientStock, status: http.StatusBadRequest, code: errs.InsufficientStock},
	{err: domain.ErrPriceMismatch, status: http.StatusBadRequest, code: errs.PriceMismatch},
	{err: domain.ErrInvalidDistrict, status: http.StatusBadRequest, code: errs.InvalidDistrict},
	{err: domain.ErrShippingChargeMismatch, status: http.StatusBadRequest, code: errs.ShippingChargeMismatch},
	{err: domain.ErrTotalMismatch, status: http.StatusBadRequest, code: errs.TotalMismatch},
	{err: domain.ErrOrderNotFound, status: http.StatusNotFound, code: errs.OrderNotFound},
	{err: domain.ErrAlreadyDispatched, status: http.StatusConflict, code: errs.AlreadyDispatched},
	{err: domain.ErrIllegalStatusTransition, status: http.StatusConflict, code: errs.IllegalStatusTransition},
	{err: domain.ErrOrderStatusConflict, status: http.StatusConflict, code: errs.OrderStatusConflict},
	{err: domain.ErrDuplicateRequest, status: http.StatusConflict, code: errs.DuplicateRequest},
	{err: logistics.ErrUnknownProvider, status: http.StatusBadRequest, code: errs.UnknownProvider},
	{err: logistics.ErrConfiguration, status: http.StatusServiceUnavailable, code: errs.LogisticsNotConfigured},
	{err: logistics.ErrProvider, status: http.StatusBadGateway, code: errs.LogisticsFailed},
	{err: domain.ErrValidation, status: http.StatusBadRequest, code: errs.InvalidOrder},
	{err: domain.ErrNotFound, status: http.StatusNotFound, code: errs.OrderNotFound},
	{err: domain.ErrConflict, status: http.StatusConflict, code: errs.OrderStatusConflict},
}

func renderError(ctx *ginx.Context, err error) (ginx.Result, error) {
	return renderErrorWithData(ctx, err, nil)
}

// renderErrorWithData 错误响应里也带上数据，例如服务商的原始响应
func renderErrorWithData(ctx *ginx.Context, err error, data any) (ginx.Result, error) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			elog.DefaultLogger.Warn("请求失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			ctx.JSON(c.status, ginx.Result{Code: c.code.Code, Msg: c.code.Msg, Data: data})
			return ginx.Result{}, ginx.ErrNoResponse
		}
	}
	elog.DefaultLogger.Error("执行业务逻辑失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	return ginx.Result{}, ginx.ErrNoResponse
}
