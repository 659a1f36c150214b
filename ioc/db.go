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
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/dokan/internal/pkg/database"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// DBConfig 只包含启动时等待数据库需要的字段，连接池等配置由 egorm 从同一个 key 读取
type DBConfig struct {
	DSN  string       `yaml:"dsn"`
	Wait DBWaitConfig `yaml:"wait"`
}

// DBWaitConfig 数据库就绪之前按指数退避重试 ping
type DBWaitConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	// MaxRetries 必须大于 0，否则会一直等下去
	MaxRetries  int32         `yaml:"maxRetries"`
	PingTimeout time.Duration `yaml:"pingTimeout"`
}

func (c DBWaitConfig) withDefaults() DBWaitConfig {
	if c.InitialInterval <= 0 {
		c.InitialInterval = time.Second
	}
	if c.MaxInterval < c.InitialInterval {
		c.MaxInterval = max(10*time.Second, c.InitialInterval)
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 10
	}
	if c.PingTimeout <= 0 {
		c.PingTimeout = 5 * time.Second
	}
	return c
}

func LoadDBConfig() DBConfig {
	var cfg DBConfig
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	cfg.Wait = cfg.Wait.withDefaults()
	return cfg
}

func InitDB() *egorm.Component {
	if err := WaitForDB(context.Background(), LoadDBConfig()); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	err := database.NewTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDB 在容器编排里 mysql 往往比应用晚就绪
func WaitForDB(ctx context.Context, cfg DBConfig) error {
	sqlDB, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return fmt.Errorf("打开数据库失败 %w", err)
	}
	defer sqlDB.Close()
	return waitFor(ctx, cfg.Wait, sqlDB.PingContext)
}

func waitFor(ctx context.Context, cfg DBWaitConfig, ping func(ctx context.Context) error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(cfg.InitialInterval, cfg.MaxInterval, cfg.MaxRetries)
	if err != nil {
		return err
	}
	for {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
		err = ping(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待数据库就绪失败 %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
