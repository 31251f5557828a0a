// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package oracle renders migration expressions for Oracle 12c and newer.
package oracle

import (
	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/generator"
	"github.com/patrickascher/gofer-migrate/model"
)

var types *generator.TypeMap

// init registers the generator under oracle.
func init() {
	types = generator.NewTypeMap("Oracle")
	types.Set(model.AnsiString, "CLOB")
	types.SetSized(model.AnsiString, "VARCHAR2($size CHAR)", 4000, 255)
	types.Set(model.String, "NCLOB")
	types.SetSized(model.String, "NVARCHAR2($size)", 2000, 255)
	types.Set(model.Binary, "BLOB")
	types.SetSized(model.Binary, "RAW($size)", 2000, 0)
	types.Set(model.Boolean, "NUMBER(1,0)")
	types.Set(model.Byte, "NUMBER(3,0)")
	types.Set(model.Currency, "NUMBER(19,4)")
	types.Set(model.Date, "DATE")
	types.Set(model.DateTime, "TIMESTAMP(4)")
	types.Set(model.DateTimeOffset, "TIMESTAMP(4) WITH TIME ZONE")
	types.Set(model.Decimal, "NUMBER(19,5)")
	types.SetSized(model.Decimal, "NUMBER($size,$precision)", 38, 0)
	types.Set(model.Double, "DOUBLE PRECISION")
	types.Set(model.Float, "FLOAT(24)")
	types.Set(model.GUID, "RAW(16)")
	types.Set(model.Int16, "NUMBER(5,0)")
	types.Set(model.Int32, "NUMBER(10,0)")
	types.Set(model.Int64, "NUMBER(19,0)")
	types.Set(model.Time, "DATE")
	types.Set(model.XML, "XMLTYPE")

	err := generator.Register("oracle", newOracle)
	if err != nil {
		panic(err)
	}
}

// OracleGenerator renders Oracle statements.
type OracleGenerator struct {
	generator.Base
}

// newOracle creates a new generator.Generator.
func newOracle() (generator.Generator, error) {
	g := &OracleGenerator{}
	g.Base = generator.Base{Dialect: g, Name: "Oracle", AddColumn: "ADD"}
	return g, nil
}

// QuoteIdentifierChars for oracle.
func (g *OracleGenerator) QuoteIdentifierChars() (string, string) {
	return `"`, `"`
}

// Types of oracle.
func (g *OracleGenerator) Types() *generator.TypeMap {
	return types
}

// BoolLiteral returns 1 or 0.
func (g *OracleGenerator) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Identity for oracle.
func (g *OracleGenerator) Identity() string {
	return "GENERATED BY DEFAULT ON NULL AS IDENTITY"
}

// AlterColumn uses MODIFY with the complete column definition.
func (g *OracleGenerator) AlterColumn(e *expression.AlterColumn) (string, error) {
	def, err := g.ColumnDefinition(e.Column)
	if err != nil {
		return "", err
	}
	return "ALTER TABLE " + g.QuoteTable(e.Table) + " MODIFY " + def, nil
}

// DeleteColumn uses DROP (a, b) for more than one column.
func (g *OracleGenerator) DeleteColumn(e *expression.DeleteColumn) (string, error) {
	if len(e.ColumnNames) == 1 {
		return g.Base.DeleteColumn(e)
	}
	return "ALTER TABLE " + g.QuoteTable(e.Table) + " DROP (" + g.QuoteIdentifier(e.ColumnNames...) + ")", nil
}
