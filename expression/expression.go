// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expression provides the dialect-neutral migration operations.
// Expressions are appended by the fluent api to a migration context and rendered by a generator.
// They carry no sql, every generator decides how an expression is rendered for its database.
package expression

import (
	"errors"
	"fmt"

	valid "github.com/go-playground/validator/v10"
	"github.com/patrickascher/gofer-migrate/model"
	"github.com/patrickascher/gofer-migrate/slicer"
)

// Error messages.
var (
	ErrValidation      = "expression: validation failed for '%s' on tag '%s'"
	ErrColumnType      = "expression: column '%s' has no type"
	ErrDuplicateColumn = "expression: column '%s' is defined more than once"
	ErrNoRowFilter     = errors.New("expression: update data needs a where condition or all rows")
)

// validate is the package wide validator instance.
var validate *valid.Validate

func init() {
	validate = valid.New()
	validate.RegisterStructValidation(columnValidation, model.Column{})
}

// columnValidation checks that a type is defined.
func columnValidation(sl valid.StructLevel) {
	c := sl.Current().Interface().(model.Column)
	if !c.HasType() {
		sl.ReportError(c.Type, "Type", "Type", "type", c.Name)
	}
}

// Expression is a single migration operation.
type Expression interface {
	// Validate checks the mandatory fields before the expression is rendered.
	Validate() error
	// Accept calls the matching Visitor method.
	Accept(Visitor) (string, error)
	// String describes the expression for logs.
	String() string
}

// SchemaExpression is implemented by all expressions which are bound to a schema.
type SchemaExpression interface {
	Schema() string
	SetSchema(string)
}

// Visitor renders every kind of expression. The generators implement it.
type Visitor interface {
	CreateTable(*CreateTable) (string, error)
	DeleteTable(*DeleteTable) (string, error)
	CreateColumn(*CreateColumn) (string, error)
	AlterColumn(*AlterColumn) (string, error)
	DeleteColumn(*DeleteColumn) (string, error)
	RenameColumn(*RenameColumn) (string, error)
	UpdateData(*UpdateData) (string, error)
	ExecuteSQL(*ExecuteSQL) (string, error)
}

// Table is embedded in all table bound expressions.
type Table struct {
	SchemaName string
	TableName  string `validate:"required"`
}

// Schema returns the schema name.
func (t *Table) Schema() string {
	return t.SchemaName
}

// SetSchema sets the schema name.
func (t *Table) SetSchema(name string) {
	t.SchemaName = name
}

// qualified returns schema.table or table.
func (t *Table) qualified() string {
	if t.SchemaName == "" {
		return t.TableName
	}
	return t.SchemaName + "." + t.TableName
}

// validateStruct runs the validator and converts the first error into ErrValidation.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs valid.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		if vErrs[0].Tag() == "type" {
			return fmt.Errorf(ErrColumnType, vErrs[0].Param())
		}
		return fmt.Errorf(ErrValidation, vErrs[0].StructNamespace(), vErrs[0].Tag())
	}
	return err
}

// validateColumns checks the names for duplicates.
func validateColumns(columns []model.Column) error {
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.Name)
	}
	if dup := slicer.StringDuplicates(names); len(dup) > 0 {
		return fmt.Errorf(ErrDuplicateColumn, dup[0])
	}
	return nil
}
