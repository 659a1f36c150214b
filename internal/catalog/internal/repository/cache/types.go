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
	"errors"
	"fmt"
	"time"
)

var (
	ErrKeyNotFound = errors.New("缓存不存在")
	// ErrStaleFill 回源期间缓存被删除过，读到的数据可能是旧的，不能写回
	ErrStaleFill = errors.New("缓存回源期间已经失效")
)

// Version 删除 key 会推进 Key，删除任意分组会推进 Groups
type Version struct {
	Key    int64
	Groups int64
}

// CatalogCache 商品目录的读缓存。
// Set 写入的是精确 key；SetInGroup 写入的 key 同时登记到 group 里，
// 失效时通过 DeleteGroups 整组删除，不依赖存储的模式扫描。
// 回源之前先读 Version，写回时版本变了就返回 ErrStaleFill。
//
//go:generate mockgen -source=./types.go -package=cachemocks -destination=./mocks/catalog.mock.go CatalogCache
type CatalogCache interface {
	Get(ctx context.Context, key string, val any) error
	Version(ctx context.Context, key string) (Version, error)
	Set(ctx context.Context, key string, val any, ver Version, expiration time.Duration) error
	SetInGroup(ctx context.Context, group, key string, val any, ver Version, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteGroups(ctx context.Context, groups ...string) error
}

// 注意 Namespace 设置，这里的 key 都不带前缀

const (
	FeaturedProductsKey = "products:featured"
	CategoriesKey       = "categories:all"
	ActiveDistrictsKey  = "districts:active"

	ProductPagesGroup = "products:pages"
)

func ProductKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func ProductPageKey(offset, limit int) string {
	return fmt.Sprintf("products:page:%d:%d", offset, limit)
}

func CategoryProductsGroup(cid int64) string {
	return fmt.Sprintf("products:category:%d", cid)
}

func CategoryProductsKey(cid int64, offset, limit int) string {
	return fmt.Sprintf("products:category:%d:%d:%d", cid, offset, limit)
}

// RelatedProductsGroup 同一个分类下所有商品的“相关商品”缓存
func RelatedProductsGroup(cid int64) string {
	return fmt.Sprintf("products:related:%d", cid)
}

func RelatedProductsKey(pid int64) string {
	return fmt.Sprintf("products:related:product:%d", pid)
}
