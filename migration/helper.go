// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"errors"

	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/model"
	"gopkg.in/guregu/null.v4"
)

// ErrNullableToggle - a column can not become nullable again after an existing row default
// queued the not null alter step.
var ErrNullableToggle = errors.New("migration: nullable after an existing row default and not nullable is not supported")

// ColumnBuilder gives the ColumnHelper access to the column draft and its table.
// Column is requested on every call and must not be retained.
type ColumnBuilder interface {
	SchemaName() string
	TableName() string
	Column() *model.Column
}

// schemaFollower is implemented by builders whose schema can change after a column was described.
// The tables of queued expressions are registered, so a later InSchema reaches them too.
type schemaFollower interface {
	follow(t *expression.Table)
}

// ColumnHelper routes the nullability and existing row default of a column draft.
// If a new column must be NOT NULL and existing rows should get a value, the column is
// created nullable, the rows are updated and an additional alter step sets NOT NULL.
type ColumnHelper struct {
	builder ColumnBuilder
	ctx     *Context

	// set once an existing row default was requested.
	backfill *expression.UpdateData
	// set once the not null constraint was moved into a separate alter step.
	notNull *expression.AlterColumn
}

// NewColumnHelper creates a helper for the builders current column.
func NewColumnHelper(builder ColumnBuilder, ctx *Context) *ColumnHelper {
	return &ColumnHelper{builder: builder, ctx: ctx}
}

// SetNullable defines the nullability of the column.
// Without an existing row default the column is changed directly. Otherwise a not nullable request
// queues one alter column expression and the column itself stays nullable.
// ErrNullableToggle returns if the column should become nullable after the alter step was queued.
func (h *ColumnHelper) SetNullable(nullable bool) error {
	column := h.builder.Column()

	if h.backfill == nil {
		column.IsNullable = null.BoolFrom(nullable)
		return nil
	}

	if nullable {
		if h.notNull != nil {
			return ErrNullableToggle
		}
		column.IsNullable = null.BoolFrom(true)
		return nil
	}

	if h.notNull == nil {
		alter := column.AlterCopy()
		alter.IsNullable = null.BoolFrom(false)
		h.notNull = &expression.AlterColumn{
			Table:  expression.Table{SchemaName: h.builder.SchemaName(), TableName: h.builder.TableName()},
			Column: alter,
		}
		h.ctx.Add(h.notNull)
		h.follow(&h.notNull.Table)
	}
	column.IsNullable = null.BoolFrom(true)
	return nil
}

// SetExistingRowDefaultValue updates all existing rows of a created column with the value.
// It has no effect on altered columns. If the column was already defined as not nullable, the
// update is followed by an alter column expression which sets NOT NULL.
// Calling it again replaces the value of the queued update.
func (h *ColumnHelper) SetExistingRowDefaultValue(value interface{}) {
	column := h.builder.Column()
	if column.ModificationType != model.Create {
		return
	}

	if h.backfill != nil {
		h.backfill.Set[0].Value = value
		return
	}

	h.backfill = &expression.UpdateData{
		Table:     expression.Table{SchemaName: h.builder.SchemaName(), TableName: h.builder.TableName()},
		Set:       []expression.KeyValue{{Key: column.Name, Value: value}},
		IsAllRows: true,
	}
	h.ctx.Add(h.backfill)
	h.follow(&h.backfill.Table)

	if column.IsNullable.Valid && !column.IsNullable.Bool {
		// can not fail, only a nullable request returns an error.
		_ = h.SetNullable(false)
	}
}

// follow registers the table of a queued expression with the builder.
func (h *ColumnHelper) follow(t *expression.Table) {
	if f, ok := h.builder.(schemaFollower); ok {
		f.follow(t)
	}
}
