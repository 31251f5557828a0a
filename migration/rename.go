// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
)

// RenameRoot is returned by Context.Rename.
type RenameRoot struct {
	ctx *Context
}

// Column starts a rename column expression.
func (r *RenameRoot) Column(name string) *RenameColumnTarget {
	return &RenameColumnTarget{ctx: r.ctx, oldName: name}
}

// RenameColumnTarget is returned by RenameRoot.Column.
type RenameColumnTarget struct {
	ctx     *Context
	oldName string
	table   string
}

// OnTable defines the table of the column.
func (t *RenameColumnTarget) OnTable(name string) *RenameColumnTarget {
	t.table = name
	return t
}

// To adds the rename column expression.
func (t *RenameColumnTarget) To(name string) *RenameColumnBuilder {
	b := &RenameColumnBuilder{expr: &expression.RenameColumn{Table: expression.Table{TableName: t.table}, OldName: t.oldName, NewName: name}}
	t.ctx.Add(b.expr)
	return b
}

// RenameColumnBuilder is returned by RenameColumnTarget.To.
type RenameColumnBuilder struct {
	expr *expression.RenameColumn
}

// InSchema defines the schema of the table.
func (b *RenameColumnBuilder) InSchema(name string) *RenameColumnBuilder {
	b.expr.SchemaName = name
	return b
}
