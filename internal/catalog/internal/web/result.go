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

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/errs"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

var errorCodes = []struct {
	err    error
	status int
	code   errs.ErrorCode
}{
	{err: domain.ErrProductNotFound, status: http.StatusNotFound, code: errs.ProductNotFound},
	{err: domain.ErrCategoryNotFound, status: http.StatusNotFound, code: errs.CategoryNotFound},
	{err: domain.ErrDistrictNotFound, status: http.StatusNotFound, code: errs.DistrictNotFound},
	{err: domain.ErrInvalidProduct, status: http.StatusBadRequest, code: errs.InvalidProduct},
	{err: domain.ErrInvalidCategory, status: http.StatusBadRequest, code: errs.InvalidCategory},
	{err: domain.ErrInvalidDistrict, status: http.StatusBadRequest, code: errs.InvalidDistrict},
	{err: domain.ErrCategoryInUse, status: http.StatusConflict, code: errs.CategoryInUse},
	{err: domain.ErrDuplicateName, status: http.StatusConflict, code: errs.DuplicateName},
}

// renderError 按错误类型写出状态码和错误码，由 handler 直接返回
func renderError(ctx *ginx.Context, err error) (ginx.Result, error) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			elog.DefaultLogger.Warn("请求失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			ctx.JSON(c.status, ginx.Result{Code: c.code.Code, Msg: c.code.Msg})
			return ginx.Result{}, ginx.ErrNoResponse
		}
	}
	elog.DefaultLogger.Error("执行业务逻辑失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	return ginx.Result{}, ginx.ErrNoResponse
}
