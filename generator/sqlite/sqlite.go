// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sqlite renders migration expressions for SQLite 3.35 and newer.
// Schemas are ignored and columns can not be altered.
package sqlite

import (
	"fmt"

	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/generator"
	"github.com/patrickascher/gofer-migrate/model"
)

// name of the database in error messages.
const name = "SQLite"

var types *generator.TypeMap

// init registers the generator under sqlite.
func init() {
	types = generator.NewTypeMap(name)
	for _, t := range []model.DbType{model.AnsiString, model.String, model.GUID, model.XML} {
		types.Set(t, "TEXT")
	}
	for _, t := range []model.DbType{model.Boolean, model.Byte, model.Int16, model.Int32, model.Int64} {
		types.Set(t, "INTEGER")
	}
	for _, t := range []model.DbType{model.Date, model.DateTime, model.DateTimeOffset, model.Time} {
		types.Set(t, "DATETIME")
	}
	types.Set(model.Binary, "BLOB")
	types.Set(model.Currency, "NUMERIC")
	types.Set(model.Decimal, "NUMERIC")
	types.Set(model.Double, "DOUBLE")
	types.Set(model.Float, "REAL")

	err := generator.Register("sqlite", newSqlite)
	if err != nil {
		panic(err)
	}
}

// SqliteGenerator renders SQLite statements.
type SqliteGenerator struct {
	generator.Base
}

// newSqlite creates a new generator.Generator.
func newSqlite() (generator.Generator, error) {
	g := &SqliteGenerator{}
	g.Base = generator.Base{Dialect: g, Name: name, NoSchema: true, IdentityIsPrimaryKey: true}
	return g, nil
}

// QuoteIdentifierChars for sqlite.
func (g *SqliteGenerator) QuoteIdentifierChars() (string, string) {
	return `"`, `"`
}

// Types of sqlite.
func (g *SqliteGenerator) Types() *generator.TypeMap {
	return types
}

// BoolLiteral returns 1 or 0.
func (g *SqliteGenerator) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Identity is rendered after PRIMARY KEY.
func (g *SqliteGenerator) Identity() string {
	return "AUTOINCREMENT"
}

// AlterColumn is not supported.
func (g *SqliteGenerator) AlterColumn(e *expression.AlterColumn) (string, error) {
	return "", fmt.Errorf(generator.ErrNotSupported, "alter column", name)
}

// DeleteColumn drops a single column. More columns need one expression each.
func (g *SqliteGenerator) DeleteColumn(e *expression.DeleteColumn) (string, error) {
	if len(e.ColumnNames) > 1 {
		return "", fmt.Errorf(generator.ErrNotSupported, "dropping more than one column per statement", name)
	}
	return g.Base.DeleteColumn(e)
}
