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

package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce sync.Once
	durations   *prometheus.HistogramVec
	requests    *prometheus.CounterVec
)

func initVectors() {
	labels := []string{"server", "method", "path", "status_code"}
	durations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dokan",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1, 3, 10},
	}, labels)
	requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dokan",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
}

// MetricsBuilder 统计每个接口的耗时和次数，server 用于区分 web 和 admin
type MetricsBuilder struct {
	server string
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	metricsOnce.Do(initVectors)
	return &MetricsBuilder{server: server}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有命中路由，避免 path 维度爆炸
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		durations.WithLabelValues(b.server, ctx.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		requests.WithLabelValues(b.server, ctx.Request.Method, path, status).Inc()
	}
}
