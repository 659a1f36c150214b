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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

// RequestCache 下单请求去重，同一个买家同一个 request id 在有效期内只能下单一次
//
//go:generate mockgen -source=./order.go -package=cachemocks -destination=./mocks/order.mock.go RequestCache
type RequestCache interface {
	// SetNX 返回 false 表示请求已经提交过
	SetNX(ctx context.Context, buyerID int64, requestID string) (bool, error)
	// Delete 下单失败后删除，允许买家重试
	Delete(ctx context.Context, buyerID int64, requestID string) error
}

type RequestECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRequestECache(ec ecache.Cache, expiration time.Duration) RequestCache {
	if expiration <= 0 {
		expiration = 10 * time.Minute
	}
	return &RequestECache{
		ec: &ecache.NamespaceCache{
			Namespace: "order:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *RequestECache) SetNX(ctx context.Context, buyerID int64, requestID string) (bool, error) {
	return c.ec.SetNX(ctx, c.key(buyerID, requestID), buyerID, c.expiration)
}

func (c *RequestECache) Delete(ctx context.Context, buyerID int64, requestID string) error {
	_, err := c.ec.Delete(ctx, c.key(buyerID, requestID))
	return err
}

// 注意 Namespace 设置
func (c *RequestECache) key(buyerID int64, requestID string) string {
	return fmt.Sprintf("create:%d:%s", buyerID, requestID)
}
