// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/model"
)

// AlterRoot is returned by Context.Alter.
type AlterRoot struct {
	ctx *Context
}

// Table starts altering a table. Columns can be added or altered.
func (r *AlterRoot) Table(name string) *AlterTableBuilder {
	b := &AlterTableBuilder{table: expression.Table{SchemaName: r.ctx.DefaultSchema(), TableName: name}}
	b.columnSyntax = columnSyntax[*AlterTableBuilder]{self: b, builder: b, ctx: r.ctx}
	return b
}

// Column starts altering a single column.
func (r *AlterRoot) Column(name string) *AlterColumnTarget {
	return &AlterColumnTarget{ctx: r.ctx, name: name}
}

// AlterTableBuilder adds or alters columns of an existing table.
type AlterTableBuilder struct {
	columnSyntax[*AlterTableBuilder]
	table   expression.Table
	tables  []*expression.Table
	current *model.Column
}

// InSchema defines the schema of the table, also for the already described columns.
func (b *AlterTableBuilder) InSchema(name string) *AlterTableBuilder {
	b.table.SchemaName = name
	for _, t := range b.tables {
		t.SchemaName = name
	}
	return b
}

// AddColumn adds a create column expression.
func (b *AlterTableBuilder) AddColumn(name string) *AlterTableBuilder {
	e := &expression.CreateColumn{Table: b.table, Column: model.Column{Name: name, TableName: b.table.TableName, ModificationType: model.Create}}
	b.start(e, &e.Table, &e.Column)
	return b
}

// AlterColumn adds an alter column expression.
// The column must be described completely, the generators replace the whole definition.
func (b *AlterTableBuilder) AlterColumn(name string) *AlterTableBuilder {
	e := &expression.AlterColumn{Table: b.table, Column: model.Column{Name: name, TableName: b.table.TableName, ModificationType: model.Alter}}
	b.start(e, &e.Table, &e.Column)
	return b
}

func (b *AlterTableBuilder) follow(t *expression.Table) {
	b.tables = append(b.tables, t)
}

func (b *AlterTableBuilder) start(e expression.Expression, table *expression.Table, column *model.Column) {
	b.ctx.Add(e)
	b.follow(table)
	b.current = column
	b.reset()
}

// SchemaName of the table.
func (b *AlterTableBuilder) SchemaName() string {
	return b.table.SchemaName
}

// TableName of the table.
func (b *AlterTableBuilder) TableName() string {
	return b.table.TableName
}

// Column returns the current column or nil.
func (b *AlterTableBuilder) Column() *model.Column {
	return b.current
}

// AlterColumnTarget is returned by AlterRoot.Column.
type AlterColumnTarget struct {
	ctx  *Context
	name string
}

// OnTable adds the alter column expression.
func (t *AlterColumnTarget) OnTable(name string) *AlterColumnBuilder {
	b := &AlterColumnBuilder{expr: &expression.AlterColumn{
		Table:  expression.Table{TableName: name},
		Column: model.Column{Name: t.name, TableName: name, ModificationType: model.Alter},
	}}
	b.columnSyntax = columnSyntax[*AlterColumnBuilder]{self: b, builder: b, ctx: t.ctx}
	b.reset()
	t.ctx.Add(b.expr)
	return b
}

// AlterColumnBuilder describes the new definition of a column.
type AlterColumnBuilder struct {
	columnSyntax[*AlterColumnBuilder]
	expr *expression.AlterColumn
}

// InSchema defines the schema of the table.
func (b *AlterColumnBuilder) InSchema(name string) *AlterColumnBuilder {
	b.expr.SchemaName = name
	return b
}

// SchemaName of the table.
func (b *AlterColumnBuilder) SchemaName() string {
	return b.expr.SchemaName
}

// TableName of the table.
func (b *AlterColumnBuilder) TableName() string {
	return b.expr.TableName
}

// Column returns the column.
func (b *AlterColumnBuilder) Column() *model.Column {
	return &b.expr.Column
}
