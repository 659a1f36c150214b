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

package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/dokan/internal/pkg/database"
	spanKey             = "dokan:tracing:span"
)

var _ gorm.Plugin = &TracingPlugin{}

// TracingPlugin 给每一条 SQL 打一个 client span
type TracingPlugin struct {
	tracer trace.Tracer
}

func NewTracingPlugin() *TracingPlugin {
	return &TracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *TracingPlugin) Name() string {
	return "dokan:tracing"
}

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	type register struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}
	registers := []register{
		{op: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
		{op: "ROW", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
	}
	for _, r := range registers {
		if err := r.before("dokan:tracing:before_"+r.op, p.before(r.op)); err != nil {
			return err
		}
		if err := r.after("dokan:tracing:after_"+r.op, p.after(r.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *TracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *TracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		span.SetAttributes(
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		)
		// 没找到数据不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
