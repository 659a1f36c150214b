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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/dokan/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

// InitDB 集成测试使用 config/local.yaml 里的 mysql
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		if err := ioc.WaitForDB(context.Background(), ioc.LoadDBConfig()); err != nil {
			panic(err)
		}
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 从当前目录向上查找 config/local.yaml
func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		path := filepath.Join(dir, "config", "local.yaml")
		content, err := os.ReadFile(path)
		if err == nil {
			return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return err
		}
		dir = parent
	}
}
