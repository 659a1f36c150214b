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

import "github.com/shopspring/decimal"

// District 配送区域，名称唯一，下单时按名称匹配运费
type District struct {
	ID             int64
	Name           string
	DeliveryCharge decimal.Decimal
	IsActive       bool
}

func (d District) Validate() error {
	if d.Name == "" || d.DeliveryCharge.IsNegative() {
		return ErrInvalidDistrict
	}
	return nil
}
