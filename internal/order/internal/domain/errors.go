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

package domain

import "errors"

// 错误分两层：具体错误都属于某一类，调用方可以只按类判断
var (
	ErrValidation = errors.New("订单校验失败")
	ErrConflict   = errors.New("订单状态冲突")
	ErrNotFound   = errors.New("订单不存在")
)

var (
	ErrInvalidOrder           = newError(ErrValidation, "订单信息不完整")
	ErrProductNotFound        = newError(ErrValidation, "商品不存在")
	ErrInsufficientStock      = newError(ErrValidation, "库存不足")
	ErrPriceMismatch          = newError(ErrValidation, "商品价格已变化")
	ErrInvalidDistrict        = newError(ErrValidation, "配送区域不可用")
	ErrShippingChargeMismatch = newError(ErrValidation, "运费已变化")
	ErrTotalMismatch          = newError(ErrValidation, "订单金额不一致")

	ErrOrderNotFound = newError(ErrNotFound, "订单不存在")

	ErrAlreadyDispatched       = newError(ErrConflict, "订单已经发货")
	ErrIllegalStatusTransition = newError(ErrConflict, "非法的订单状态变更")
	ErrOrderStatusConflict     = newError(ErrConflict, "订单状态已被修改")
	ErrDuplicateRequest        = newError(ErrConflict, "重复提交订单")
)

type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}
