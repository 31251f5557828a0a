// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"errors"

	"github.com/patrickascher/gofer-migrate/model"
	"gopkg.in/guregu/null.v4"
)

// ErrNoColumn - a column method was called before a column was added to the builder.
var ErrNoColumn = errors.New("migration: no column defined, call WithColumn, AddColumn or AlterColumn first")

// columnSyntax provides the column methods for every builder which describes columns.
// T is the builder itself, so the chain can continue after a column method.
type columnSyntax[T any] struct {
	self    T
	builder ColumnBuilder
	ctx     *Context
	helper  *ColumnHelper
}

// reset starts a new column.
func (c *columnSyntax[T]) reset() {
	c.helper = NewColumnHelper(c.builder, c.ctx)
}

// apply calls fn with the current column.
func (c *columnSyntax[T]) apply(fn func(*model.Column)) T {
	col := c.builder.Column()
	if col == nil {
		c.ctx.addError(ErrNoColumn)
		return c.self
	}
	fn(col)
	return c.self
}

func (c *columnSyntax[T]) as(t model.DbType, size ...int64) T {
	return c.apply(func(col *model.Column) {
		col.Type = t
		col.CustomType = ""
		if len(size) > 0 {
			col.Size = null.IntFrom(size[0])
		}
		if len(size) > 1 {
			col.Precision = null.IntFrom(size[1])
		}
	})
}

// AsAnsiString defines a non unicode string column. A size of 0 uses the dialects default.
func (c *columnSyntax[T]) AsAnsiString(size int64) T {
	if size == 0 {
		return c.as(model.AnsiString)
	}
	return c.as(model.AnsiString, size)
}

// AsString defines a unicode string column. A size of 0 uses the dialects default.
func (c *columnSyntax[T]) AsString(size int64) T {
	if size == 0 {
		return c.as(model.String)
	}
	return c.as(model.String, size)
}

// AsBinary defines a binary column. A size of 0 uses the dialects default.
func (c *columnSyntax[T]) AsBinary(size int64) T {
	if size == 0 {
		return c.as(model.Binary)
	}
	return c.as(model.Binary, size)
}

// AsDecimal defines a decimal column with the total digits and the digits after the decimal point.
func (c *columnSyntax[T]) AsDecimal(size int64, precision int64) T {
	return c.as(model.Decimal, size, precision)
}

func (c *columnSyntax[T]) AsBoolean() T        { return c.as(model.Boolean) }
func (c *columnSyntax[T]) AsByte() T           { return c.as(model.Byte) }
func (c *columnSyntax[T]) AsCurrency() T       { return c.as(model.Currency) }
func (c *columnSyntax[T]) AsDate() T           { return c.as(model.Date) }
func (c *columnSyntax[T]) AsDateTime() T       { return c.as(model.DateTime) }
func (c *columnSyntax[T]) AsDateTimeOffset() T { return c.as(model.DateTimeOffset) }
func (c *columnSyntax[T]) AsDouble() T         { return c.as(model.Double) }
func (c *columnSyntax[T]) AsFloat() T          { return c.as(model.Float) }
func (c *columnSyntax[T]) AsGUID() T           { return c.as(model.GUID) }
func (c *columnSyntax[T]) AsInt16() T          { return c.as(model.Int16) }
func (c *columnSyntax[T]) AsInt32() T          { return c.as(model.Int32) }
func (c *columnSyntax[T]) AsInt64() T          { return c.as(model.Int64) }
func (c *columnSyntax[T]) AsTime() T           { return c.as(model.Time) }
func (c *columnSyntax[T]) AsXML() T            { return c.as(model.XML) }

// AsCustom defines a database specific type which is rendered as it is.
func (c *columnSyntax[T]) AsCustom(customType string) T {
	return c.apply(func(col *model.Column) { col.CustomType = customType })
}

// Nullable allows NULL values.
func (c *columnSyntax[T]) Nullable() T {
	return c.apply(func(*model.Column) { c.ctx.addError(c.helper.SetNullable(true)) })
}

// NotNullable forbids NULL values.
func (c *columnSyntax[T]) NotNullable() T {
	return c.apply(func(*model.Column) { c.ctx.addError(c.helper.SetNullable(false)) })
}

// SetExistingRowsTo updates all existing rows with the value before a NOT NULL constraint is added.
// It only has an effect on new columns.
func (c *columnSyntax[T]) SetExistingRowsTo(value interface{}) T {
	return c.apply(func(*model.Column) { c.helper.SetExistingRowDefaultValue(value) })
}

// WithDefaultValue defines the DEFAULT of the column.
func (c *columnSyntax[T]) WithDefaultValue(value interface{}) T {
	return c.apply(func(col *model.Column) { col.DefaultValue = value })
}

// PrimaryKey marks the column as primary key.
func (c *columnSyntax[T]) PrimaryKey() T {
	return c.apply(func(col *model.Column) { col.IsPrimaryKey = true })
}

// Unique adds a unique constraint.
func (c *columnSyntax[T]) Unique() T {
	return c.apply(func(col *model.Column) { col.IsUnique = true })
}

// Identity marks the column as auto increment.
func (c *columnSyntax[T]) Identity() T {
	return c.apply(func(col *model.Column) { col.IsIdentity = true })
}
