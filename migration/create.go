// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/model"
)

// CreateRoot is returned by Context.Create.
type CreateRoot struct {
	ctx *Context
}

// Table adds a create table expression.
//	ctx.Create().Table("users").
//		WithColumn("id").AsInt64().PrimaryKey().Identity().
//		WithColumn("name").AsString(255).NotNullable()
func (r *CreateRoot) Table(name string) *CreateTableBuilder {
	b := &CreateTableBuilder{expr: &expression.CreateTable{Table: expression.Table{TableName: name}}, current: -1}
	b.columnSyntax = columnSyntax[*CreateTableBuilder]{self: b, builder: b, ctx: r.ctx}
	r.ctx.Add(b.expr)
	return b
}

// Column adds a create column expression, the fluent form of Alter().Table(t).AddColumn(name).
func (r *CreateRoot) Column(name string) *CreateColumnTarget {
	return &CreateColumnTarget{ctx: r.ctx, name: name}
}

// CreateTableBuilder describes a new table.
type CreateTableBuilder struct {
	columnSyntax[*CreateTableBuilder]
	expr    *expression.CreateTable
	current int
	tables  []*expression.Table
}

// InSchema defines the schema of the table, also for the queued steps of already described columns.
func (b *CreateTableBuilder) InSchema(name string) *CreateTableBuilder {
	b.expr.SchemaName = name
	for _, t := range b.tables {
		t.SchemaName = name
	}
	return b
}

func (b *CreateTableBuilder) follow(t *expression.Table) {
	b.tables = append(b.tables, t)
}

// WithColumn starts a new column.
func (b *CreateTableBuilder) WithColumn(name string) *CreateTableBuilder {
	b.expr.Columns = append(b.expr.Columns, model.Column{Name: name, TableName: b.expr.TableName, ModificationType: model.Create})
	b.current = len(b.expr.Columns) - 1
	b.reset()
	return b
}

// SchemaName of the table.
func (b *CreateTableBuilder) SchemaName() string {
	return b.expr.SchemaName
}

// TableName of the table.
func (b *CreateTableBuilder) TableName() string {
	return b.expr.TableName
}

// Column returns the current column or nil.
func (b *CreateTableBuilder) Column() *model.Column {
	if b.current < 0 {
		return nil
	}
	return &b.expr.Columns[b.current]
}

// CreateColumnTarget is returned by CreateRoot.Column.
type CreateColumnTarget struct {
	ctx  *Context
	name string
}

// OnTable adds the create column expression.
func (t *CreateColumnTarget) OnTable(name string) *CreateColumnBuilder {
	b := &CreateColumnBuilder{expr: &expression.CreateColumn{
		Table:  expression.Table{TableName: name},
		Column: model.Column{Name: t.name, TableName: name, ModificationType: model.Create},
	}}
	b.columnSyntax = columnSyntax[*CreateColumnBuilder]{self: b, builder: b, ctx: t.ctx}
	b.reset()
	t.ctx.Add(b.expr)
	return b
}

// CreateColumnBuilder describes a single new column.
type CreateColumnBuilder struct {
	columnSyntax[*CreateColumnBuilder]
	expr   *expression.CreateColumn
	tables []*expression.Table
}

// InSchema defines the schema of the table, also for the queued steps of the column.
func (b *CreateColumnBuilder) InSchema(name string) *CreateColumnBuilder {
	b.expr.SchemaName = name
	for _, t := range b.tables {
		t.SchemaName = name
	}
	return b
}

func (b *CreateColumnBuilder) follow(t *expression.Table) {
	b.tables = append(b.tables, t)
}

// SchemaName of the table.
func (b *CreateColumnBuilder) SchemaName() string {
	return b.expr.SchemaName
}

// TableName of the table.
func (b *CreateColumnBuilder) TableName() string {
	return b.expr.TableName
}

// Column returns the column.
func (b *CreateColumnBuilder) Column() *model.Column {
	return &b.expr.Column
}
