// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expression

import (
	"github.com/patrickascher/gofer-migrate/model"
)

// CreateColumn adds a column to an existing table.
type CreateColumn struct {
	Table
	Column model.Column
}

// Validate the expression.
func (e *CreateColumn) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *CreateColumn) Accept(v Visitor) (string, error) {
	return v.CreateColumn(e)
}

func (e *CreateColumn) String() string {
	return "CreateColumn " + e.qualified() + " " + e.Column.Name
}

// AlterColumn changes the definition of an existing column.
// The column is held by value, later changes on the fluent column draft are not visible here.
type AlterColumn struct {
	Table
	Column model.Column
}

// Validate the expression.
func (e *AlterColumn) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *AlterColumn) Accept(v Visitor) (string, error) {
	return v.AlterColumn(e)
}

func (e *AlterColumn) String() string {
	return "AlterColumn " + e.qualified() + " " + e.Column.Name
}

// DeleteColumn drops one or more columns.
type DeleteColumn struct {
	Table
	ColumnNames []string `validate:"required,min=1,dive,required"`
}

// Validate the expression.
func (e *DeleteColumn) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *DeleteColumn) Accept(v Visitor) (string, error) {
	return v.DeleteColumn(e)
}

func (e *DeleteColumn) String() string {
	return "DeleteColumn " + e.qualified()
}

// RenameColumn renames a column.
type RenameColumn struct {
	Table
	OldName string `validate:"required"`
	NewName string `validate:"required,nefield=OldName"`
}

// Validate the expression.
func (e *RenameColumn) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *RenameColumn) Accept(v Visitor) (string, error) {
	return v.RenameColumn(e)
}

func (e *RenameColumn) String() string {
	return "RenameColumn " + e.qualified() + " " + e.OldName + " -> " + e.NewName
}
