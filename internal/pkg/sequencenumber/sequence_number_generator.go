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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Length 订单号的固定长度
const Length = 24

type ClockFunc func() time.Time

type RandomFunc func() string

// Generator 生成对外展示的订单号:
// 14 位时间 (yyyyMMddHHmmss) + 买家 ID 后四位 + 6 位随机串
type Generator struct {
	clock  ClockFunc
	random RandomFunc
}

func NewGeneratorWith(clock ClockFunc, random RandomFunc) *Generator {
	return &Generator{clock: clock, random: random}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

func (g *Generator) Generate(buyerID int64) string {
	if buyerID < 0 {
		buyerID = -buyerID
	}
	sn := fmt.Sprintf("%s%04d%s", g.clock().Format("20060102150405"), buyerID%10000, g.random())
	return sn[:Length]
}
