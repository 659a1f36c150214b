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
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// 订单事件 topic 没有配置时也要创建
var defaultTopics = []topicConfig{
	{Name: "order_events", Partitions: 1},
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}
	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = createTopics(ctx, q, mergeTopics(defaultTopics, cfg.Topics)); err != nil {
		panic(err)
	}
	return q
}

func createTopics(ctx context.Context, q mq.MQ, topics []topicConfig) error {
	for _, t := range topics {
		if err := q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			return fmt.Errorf("创建Topic失败: %w, Topic = %s, Partitions = %d", err, t.Name, t.Partitions)
		}
	}
	return nil
}

// mergeTopics 配置里的同名 topic 覆盖默认值
func mergeTopics(defaults, configured []topicConfig) []topicConfig {
	res := make([]topicConfig, 0, len(defaults)+len(configured))
	seen := make(map[string]struct{}, len(configured))
	for _, t := range configured {
		if t.Partitions <= 0 {
			t.Partitions = 1
		}
		seen[t.Name] = struct{}{}
		res = append(res, t)
	}
	for _, t := range defaults {
		if _, ok := seen[t.Name]; !ok {
			res = append(res, t)
		}
	}
	return res
}
