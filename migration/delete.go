// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
)

// DeleteRoot is returned by Context.Delete.
type DeleteRoot struct {
	ctx *Context
}

// Table adds a delete table expression.
func (r *DeleteRoot) Table(name string) *DeleteTableBuilder {
	b := &DeleteTableBuilder{expr: &expression.DeleteTable{Table: expression.Table{TableName: name}}}
	r.ctx.Add(b.expr)
	return b
}

// DeleteTableBuilder is returned by DeleteRoot.Table.
type DeleteTableBuilder struct {
	expr *expression.DeleteTable
}

// InSchema defines the schema of the table.
func (b *DeleteTableBuilder) InSchema(name string) *DeleteTableBuilder {
	b.expr.SchemaName = name
	return b
}

// Column starts a delete column expression.
func (r *DeleteRoot) Column(name string) *DeleteColumnTarget {
	return &DeleteColumnTarget{ctx: r.ctx, names: []string{name}}
}

// DeleteColumnTarget is returned by DeleteRoot.Column.
type DeleteColumnTarget struct {
	ctx   *Context
	names []string
}

// Column adds another column to delete.
func (t *DeleteColumnTarget) Column(name string) *DeleteColumnTarget {
	t.names = append(t.names, name)
	return t
}

// FromTable adds the delete column expression.
func (t *DeleteColumnTarget) FromTable(name string) *DeleteColumnBuilder {
	b := &DeleteColumnBuilder{expr: &expression.DeleteColumn{Table: expression.Table{TableName: name}, ColumnNames: t.names}}
	t.ctx.Add(b.expr)
	return b
}

// DeleteColumnBuilder is returned by DeleteColumnTarget.FromTable.
type DeleteColumnBuilder struct {
	expr *expression.DeleteColumn
}

// InSchema defines the schema of the table.
func (b *DeleteColumnBuilder) InSchema(name string) *DeleteColumnBuilder {
	b.expr.SchemaName = name
	return b
}
