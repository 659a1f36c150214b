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

package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cmd           redis.Cmdable
	cache         ecache.Cache
	redisInitOnce sync.Once
)

func InitRedis() redis.Cmdable {
	redisInitOnce.Do(func() {
		cmd = redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "dokan:",
		}
	})
	return cmd
}

func InitCache() ecache.Cache {
	InitRedis()
	return cache
}
