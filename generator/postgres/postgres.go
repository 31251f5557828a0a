// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package postgres renders migration expressions for PostgreSQL.
package postgres

import (
	"strings"

	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/generator"
	"github.com/patrickascher/gofer-migrate/model"
)

var types *generator.TypeMap

// init registers the generator under postgres.
func init() {
	types = generator.NewTypeMap("PostgreSQL")
	types.Set(model.AnsiString, "TEXT")
	types.SetSized(model.AnsiString, "VARCHAR($size)", 10485760, 0)
	types.Set(model.String, "TEXT")
	types.SetSized(model.String, "VARCHAR($size)", 10485760, 0)
	types.Set(model.Binary, "BYTEA")
	types.Set(model.Boolean, "BOOLEAN")
	types.Set(model.Byte, "SMALLINT")
	types.Set(model.Currency, "MONEY")
	types.Set(model.Date, "DATE")
	types.Set(model.DateTime, "TIMESTAMP")
	types.Set(model.DateTimeOffset, "TIMESTAMPTZ")
	types.Set(model.Decimal, "DECIMAL(19,5)")
	types.SetSized(model.Decimal, "DECIMAL($size,$precision)", 1000, 0)
	types.Set(model.Double, "DOUBLE PRECISION")
	types.Set(model.Float, "REAL")
	types.Set(model.GUID, "UUID")
	types.Set(model.Int16, "SMALLINT")
	types.Set(model.Int32, "INTEGER")
	types.Set(model.Int64, "BIGINT")
	types.Set(model.Time, "TIME")
	types.Set(model.XML, "XML")

	err := generator.Register("postgres", newPostgres)
	if err != nil {
		panic(err)
	}
}

// PostgresGenerator renders PostgreSQL statements.
type PostgresGenerator struct {
	generator.Base
}

// newPostgres creates a new generator.Generator.
func newPostgres() (generator.Generator, error) {
	g := &PostgresGenerator{}
	g.Base = generator.Base{Dialect: g, Name: "PostgreSQL"}
	return g, nil
}

// QuoteIdentifierChars for postgres.
func (g *PostgresGenerator) QuoteIdentifierChars() (string, string) {
	return `"`, `"`
}

// Types of postgres.
func (g *PostgresGenerator) Types() *generator.TypeMap {
	return types
}

// BoolLiteral returns true or false.
func (g *PostgresGenerator) BoolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Identity for postgres.
func (g *PostgresGenerator) Identity() string {
	return "GENERATED BY DEFAULT AS IDENTITY"
}

// AlterColumn renders one ALTER COLUMN action for the type and each defined attribute.
func (g *PostgresGenerator) AlterColumn(e *expression.AlterColumn) (string, error) {
	t, err := types.Get(e.Column)
	if err != nil {
		return "", err
	}

	column := "ALTER COLUMN " + g.QuoteIdentifier(e.Column.Name)
	actions := []string{column + " TYPE " + t}
	if e.Column.IsNullable.Valid {
		if e.Column.IsNullable.Bool {
			actions = append(actions, column+" DROP NOT NULL")
		} else {
			actions = append(actions, column+" SET NOT NULL")
		}
	}
	if e.Column.DefaultValue != nil {
		v, err := g.Literal(e.Column.DefaultValue)
		if err != nil {
			return "", err
		}
		actions = append(actions, column+" SET DEFAULT "+v)
	}
	return "ALTER TABLE " + g.QuoteTable(e.Table) + " " + strings.Join(actions, ", "), nil
}
