// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sqlserver renders migration expressions for Microsoft SQL Server 2016 and newer.
package sqlserver

import (
	"strings"

	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/generator"
	"github.com/patrickascher/gofer-migrate/model"
)

var types *generator.TypeMap

// init registers the generator under sqlserver.
func init() {
	types = generator.NewTypeMap("SQL Server")
	types.Set(model.AnsiString, "VARCHAR(MAX)")
	types.SetSized(model.AnsiString, "VARCHAR($size)", 8000, 255)
	types.Set(model.String, "NVARCHAR(MAX)")
	types.SetSized(model.String, "NVARCHAR($size)", 4000, 255)
	types.Set(model.Binary, "VARBINARY(MAX)")
	types.SetSized(model.Binary, "VARBINARY($size)", 8000, 0)
	types.Set(model.Boolean, "BIT")
	types.Set(model.Byte, "TINYINT")
	types.Set(model.Currency, "MONEY")
	types.Set(model.Date, "DATE")
	types.Set(model.DateTime, "DATETIME2")
	types.Set(model.DateTimeOffset, "DATETIMEOFFSET")
	types.Set(model.Decimal, "DECIMAL(19,5)")
	types.SetSized(model.Decimal, "DECIMAL($size,$precision)", 38, 0)
	types.Set(model.Double, "DOUBLE PRECISION")
	types.Set(model.Float, "REAL")
	types.Set(model.GUID, "UNIQUEIDENTIFIER")
	types.Set(model.Int16, "SMALLINT")
	types.Set(model.Int32, "INT")
	types.Set(model.Int64, "BIGINT")
	types.Set(model.Time, "TIME")
	types.Set(model.XML, "XML")

	err := generator.Register("sqlserver", newSqlServer)
	if err != nil {
		panic(err)
	}
}

// SqlServerGenerator renders SQL Server statements.
type SqlServerGenerator struct {
	generator.Base
}

// newSqlServer creates a new generator.Generator.
func newSqlServer() (generator.Generator, error) {
	g := &SqlServerGenerator{}
	g.Base = generator.Base{Dialect: g, Name: "SQL Server", AddColumn: "ADD"}
	return g, nil
}

// QuoteIdentifierChars for sql server.
func (g *SqlServerGenerator) QuoteIdentifierChars() (string, string) {
	return "[", "]"
}

// Types of sql server.
func (g *SqlServerGenerator) Types() *generator.TypeMap {
	return types
}

// BoolLiteral returns 1 or 0.
func (g *SqlServerGenerator) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Identity for sql server.
func (g *SqlServerGenerator) Identity() string {
	return "IDENTITY(1,1)"
}

// AlterColumn renders the type and nullability. ALTER COLUMN does not accept a default value,
// it is added as constraint in the same batch.
func (g *SqlServerGenerator) AlterColumn(e *expression.AlterColumn) (string, error) {
	t, err := types.Get(e.Column)
	if err != nil {
		return "", err
	}

	table := g.QuoteTable(e.Table)
	stmt := "ALTER TABLE " + table + " ALTER COLUMN " + g.QuoteIdentifier(e.Column.Name) + " " + t
	if e.Column.IsNullable.Valid {
		if e.Column.IsNullable.Bool {
			stmt += " NULL"
		} else {
			stmt += " NOT NULL"
		}
	}
	if e.Column.DefaultValue != nil {
		v, err := g.Literal(e.Column.DefaultValue)
		if err != nil {
			return "", err
		}
		stmt += "; ALTER TABLE " + table + " ADD DEFAULT " + v + " FOR " + g.QuoteIdentifier(e.Column.Name)
	}
	return stmt, nil
}

// DeleteColumn drops all columns in one statement.
func (g *SqlServerGenerator) DeleteColumn(e *expression.DeleteColumn) (string, error) {
	return "ALTER TABLE " + g.QuoteTable(e.Table) + " DROP COLUMN " + g.QuoteIdentifier(e.ColumnNames...), nil
}

// RenameColumn uses the sp_rename procedure.
func (g *SqlServerGenerator) RenameColumn(e *expression.RenameColumn) (string, error) {
	object := e.TableName + "." + e.OldName
	if e.SchemaName != "" {
		object = e.SchemaName + "." + object
	}
	return "EXEC sp_rename N'" + escape(object) + "', N'" + escape(e.NewName) + "', 'COLUMN'", nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
