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

//go:build wireinject

package logistics

import (
	"net/http"
	"time"

	"github.com/ecodeclub/dokan/internal/logistics/internal/client"
	"github.com/ecodeclub/dokan/internal/logistics/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache) (*Module, error) {
	wire.Build(
		initConfig,
		initManager,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type Config struct {
	Timeout   time.Duration          `yaml:"timeout"`
	Pathao    client.PathaoConfig    `yaml:"pathao"`
	Steadfast client.SteadfastConfig `yaml:"steadfast"`
	RedX      client.RedXConfig      `yaml:"redx"`
}

func initConfig() Config {
	var cfg Config
	// 没有配置时所有服务商都处于未配置状态
	if econf.Get("logistics") == nil {
		return cfg
	}
	if err := econf.UnmarshalKey("logistics", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func initManager(cfg Config, ec ecache.Cache) service.Manager {
	hc := &http.Client{}
	return service.NewManager(cfg.Timeout,
		client.NewPathao(cfg.Pathao, ec, hc),
		client.NewSteadfast(cfg.Steadfast, hc),
		client.NewRedX(cfg.RedX, hc))
}
