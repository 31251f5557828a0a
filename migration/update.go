// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
)

// UpdateRoot is returned by Context.Update.
type UpdateRoot struct {
	ctx *Context
}

// Table adds an update data expression.
//	ctx.Update().Table("users").Set("active", true).Where("id", 1)
func (r *UpdateRoot) Table(name string) *UpdateDataBuilder {
	b := &UpdateDataBuilder{expr: &expression.UpdateData{Table: expression.Table{TableName: name}}}
	r.ctx.Add(b.expr)
	return b
}

// UpdateDataBuilder is returned by UpdateRoot.Table.
type UpdateDataBuilder struct {
	expr *expression.UpdateData
}

// InSchema defines the schema of the table.
func (b *UpdateDataBuilder) InSchema(name string) *UpdateDataBuilder {
	b.expr.SchemaName = name
	return b
}

// Set a column value. The order of the calls is kept.
func (b *UpdateDataBuilder) Set(column string, value interface{}) *UpdateDataBuilder {
	b.expr.Set = append(b.expr.Set, expression.KeyValue{Key: column, Value: value})
	return b
}

// Where adds an equal condition. A nil value is rendered as IS NULL.
func (b *UpdateDataBuilder) Where(column string, value interface{}) *UpdateDataBuilder {
	b.expr.Where = append(b.expr.Where, expression.KeyValue{Key: column, Value: value})
	return b
}

// AllRows updates every row of the table.
func (b *UpdateDataBuilder) AllRows() *UpdateDataBuilder {
	b.expr.IsAllRows = true
	return b
}
