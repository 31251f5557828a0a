// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package model holds the column and table definitions which are built by the fluent api
// and embedded into the migration expressions.
package model

import (
	"gopkg.in/guregu/null.v4"
)

// Column describes a column which is created or altered.
//
// IsNullable is tri-state: an invalid null.Bool means the nullability was not defined
// and the generator falls back to the database default.
// Type and CustomType are both carried, CustomType wins on rendering if it is set.
type Column struct {
	Name       string `validate:"required"`
	Type       DbType
	CustomType string
	Size       null.Int
	Precision  null.Int

	IsNullable   null.Bool
	IsPrimaryKey bool
	IsUnique     bool
	IsIdentity   bool
	// DefaultValue is rendered as DEFAULT clause. nil means no default.
	DefaultValue interface{}

	ModificationType ModificationType `validate:"oneof=0 1"`
	TableName        string
}

// HasType returns true if a semantic or custom type is defined.
func (c Column) HasType() bool {
	return c.Type != Unset || c.CustomType != ""
}

// AlterCopy returns a new column for an alter step. Name, type information and the table
// are copied, everything else starts undefined.
func (c Column) AlterCopy() Column {
	return Column{
		Name:             c.Name,
		Type:             c.Type,
		CustomType:       c.CustomType,
		Size:             c.Size,
		Precision:        c.Precision,
		TableName:        c.TableName,
		ModificationType: Alter,
	}
}
