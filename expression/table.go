// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expression

import (
	"github.com/patrickascher/gofer-migrate/model"
)

// CreateTable creates a table with its columns.
type CreateTable struct {
	Table
	Columns []model.Column `validate:"required,min=1,dive"`
}

// Validate the expression.
func (e *CreateTable) Validate() error {
	if err := validateStruct(e); err != nil {
		return err
	}
	return validateColumns(e.Columns)
}

// Accept the visitor.
func (e *CreateTable) Accept(v Visitor) (string, error) {
	return v.CreateTable(e)
}

func (e *CreateTable) String() string {
	return "CreateTable " + e.qualified()
}

// DeleteTable drops a table.
type DeleteTable struct {
	Table
}

// Validate the expression.
func (e *DeleteTable) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *DeleteTable) Accept(v Visitor) (string, error) {
	return v.DeleteTable(e)
}

func (e *DeleteTable) String() string {
	return "DeleteTable " + e.qualified()
}
