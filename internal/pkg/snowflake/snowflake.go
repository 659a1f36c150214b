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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// 默认的 bwmarrin/snowflake 布局: 41 位时间戳 + 10 位节点 + 12 位序列号
const maxNode int64 = 1<<10 - 1

var ErrExceedNode = errors.New("node超出限制")

// IDGenerator 订单等实体的全局 ID 生成器，每个实例部署时配置不同的 node
type IDGenerator struct {
	node *snowflake.Node
}

func NewIDGenerator(nodeID int64) (*IDGenerator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: node=%d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &IDGenerator{node: n}, nil
}

func (g *IDGenerator) Next() int64 {
	return g.node.Generate().Int64()
}

// Node 从 ID 中解析出生成它的节点
func Node(id int64) int64 {
	return snowflake.ID(id).Node()
}
