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
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const namespace = "catalog:"

var (
	//go:embed lua/fill.lua
	luaFill    string
	fillScript = redis.NewScript(luaFill)
)

// CatalogECache 读写走 ecache，回写和分组索引要和版本一起原子判断，直接用 redis。
// 版本 key 不过期，只有精确删除过的 key 才会有版本，数量有限。
type CatalogECache struct {
	ec       ecache.Cache
	cmd      redis.Cmdable
	prefix   string
	indexTTL time.Duration
}

// NewCatalogECache appNamespace 是 ec 已经带上的应用前缀，直接访问 redis 的 key 要自己拼上。
// indexTTL 不能小于组内任何缓存的过期时间，每次登记都会刷新。
func NewCatalogECache(ec ecache.Cache, cmd redis.Cmdable, appNamespace string, indexTTL time.Duration) CatalogCache {
	return &CatalogECache{
		ec: &ecache.NamespaceCache{
			Namespace: namespace,
			C:         ec,
		},
		cmd:      cmd,
		prefix:   appNamespace + namespace,
		indexTTL: indexTTL,
	}
}

func (c *CatalogECache) Get(ctx context.Context, key string, val any) error {
	res := c.ec.Get(ctx, key)
	if res.KeyNotFound() {
		return ErrKeyNotFound
	}
	if res.Err != nil {
		return errors.Wrap(res.Err, "查询缓存出错")
	}
	str, ok := res.Val.(string)
	if !ok {
		return errors.Errorf("缓存数据类型错误 key=%s", key)
	}
	if err := json.Unmarshal([]byte(str), val); err != nil {
		return errors.Wrap(err, "反序列化缓存失败")
	}
	return nil
}

func (c *CatalogECache) Version(ctx context.Context, key string) (Version, error) {
	vals, err := c.cmd.MGet(ctx, c.versionKey(key), c.groupsVersionKey()).Result()
	if err != nil {
		return Version{}, errors.Wrap(err, "读取缓存版本失败")
	}
	return Version{Key: parseVersion(vals[0]), Groups: parseVersion(vals[1])}, nil
}

func (c *CatalogECache) Set(ctx context.Context, key string, val any, ver Version, expiration time.Duration) error {
	return c.fill(ctx, "", key, val, ver, expiration)
}

func (c *CatalogECache) SetInGroup(ctx context.Context, group, key string, val any, ver Version, expiration time.Duration) error {
	return c.fill(ctx, group, key, val, ver, expiration)
}

func (c *CatalogECache) fill(ctx context.Context, group, key string, val any, ver Version, expiration time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化缓存失败")
	}
	keys := []string{c.prefix + key, c.versionKey(key)}
	args := []any{string(data), expiration.Milliseconds(), ver.Key}
	if group != "" {
		// 登记和写入在同一个脚本里，写进去的 key 一定能被整组删除
		keys = append(keys, c.groupsVersionKey(), c.indexKey(group))
		args = append(args, ver.Groups, c.indexTTL.Milliseconds(), key)
	}
	ok, err := fillScript.Run(ctx, c.cmd, keys, args...).Bool()
	if err != nil {
		return errors.Wrap(err, "回写缓存失败")
	}
	if !ok {
		return ErrStaleFill
	}
	return nil
}

// Delete 先推进版本再删除，正在回源的写入要么被删掉，要么因为版本不一致被放弃
func (c *CatalogECache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	pipe := c.cmd.TxPipeline()
	for _, k := range keys {
		pipe.Incr(ctx, c.versionKey(k))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "推进缓存版本失败")
	}
	_, err := c.ec.Delete(ctx, keys...)
	return err
}

func (c *CatalogECache) DeleteGroups(ctx context.Context, groups ...string) error {
	if len(groups) == 0 {
		return nil
	}
	if err := c.cmd.Incr(ctx, c.groupsVersionKey()).Err(); err != nil {
		return errors.Wrap(err, "推进缓存分组版本失败")
	}
	var errs []error
	for _, g := range groups {
		if err := c.deleteGroup(ctx, g); err != nil {
			errs = append(errs, errors.Wrapf(err, "group=%s", g))
		}
	}
	return stderrors.Join(errs...)
}

func (c *CatalogECache) deleteGroup(ctx context.Context, group string) error {
	idx := c.indexKey(group)
	keys, err := c.cmd.SMembers(ctx, idx).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if _, err = c.ec.Delete(ctx, keys...); err != nil {
		return err
	}
	// 只移除已经删掉的 key，并发登记进来的 key 留给下次
	members := slice.Map(keys, func(idx int, src string) any {
		return src
	})
	return c.cmd.SRem(ctx, idx, members...).Err()
}

func (c *CatalogECache) versionKey(key string) string {
	return c.prefix + "version:" + key
}

func (c *CatalogECache) groupsVersionKey() string {
	return c.prefix + "version:groups"
}

func (c *CatalogECache) indexKey(group string) string {
	return c.prefix + "index:" + group
}

func parseVersion(v any) int64 {
	str, _ := v.(string)
	n, _ := strconv.ParseInt(str, 10, 64)
	return n
}
