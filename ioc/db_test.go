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

package ioc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDBConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mysql   map[string]any
		wantCfg DBConfig
	}{
		{
			name:  "没有配置等待参数",
			mysql: map[string]any{"dsn": "root:root@tcp(localhost:13316)/dokan"},
			wantCfg: DBConfig{
				DSN: "root:root@tcp(localhost:13316)/dokan",
				Wait: DBWaitConfig{
					InitialInterval: time.Second,
					MaxInterval:     10 * time.Second,
					MaxRetries:      10,
					PingTimeout:     5 * time.Second,
				},
			},
		},
		{
			name: "读取等待参数",
			mysql: map[string]any{
				"dsn": "dsn",
				"wait": map[string]any{
					"initialInterval": "200ms",
					"maxInterval":     "3s",
					"maxRetries":      3,
					"pingTimeout":     "1s",
				},
			},
			wantCfg: DBConfig{
				DSN: "dsn",
				Wait: DBWaitConfig{
					InitialInterval: 200 * time.Millisecond,
					MaxInterval:     3 * time.Second,
					MaxRetries:      3,
					PingTimeout:     time.Second,
				},
			},
		},
		{
			name: "最大间隔小于初始间隔",
			mysql: map[string]any{
				"dsn":  "dsn",
				"wait": map[string]any{"initialInterval": "20s", "maxInterval": "1s"},
			},
			wantCfg: DBConfig{
				DSN: "dsn",
				Wait: DBWaitConfig{
					InitialInterval: 20 * time.Second,
					MaxInterval:     20 * time.Second,
					MaxRetries:      10,
					PingTimeout:     5 * time.Second,
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			econf.Set("mysql", tc.mysql)
			assert.Equal(t, tc.wantCfg, LoadDBConfig())
		})
	}
}

func TestWaitFor(t *testing.T) {
	cfg := DBWaitConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxRetries:      2,
		PingTimeout:     time.Second,
	}
	testCases := []struct {
		name      string
		failures  int
		wantPings int
		wantErr   bool
	}{
		{name: "直接成功", failures: 0, wantPings: 1},
		{name: "重试之后成功", failures: 2, wantPings: 3},
		{name: "重试次数用完", failures: 5, wantPings: 3, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pings := 0
			err := waitFor(context.Background(), cfg, func(ctx context.Context) error {
				pings++
				_, ok := ctx.Deadline()
				require.True(t, ok)
				if pings <= tc.failures {
					return errors.New("connection refused")
				}
				return nil
			})
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantPings, pings)
		})
	}
}
