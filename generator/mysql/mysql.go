// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mysql renders migration expressions for MySQL 8.
package mysql

import (
	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/generator"
	"github.com/patrickascher/gofer-migrate/model"
)

var types *generator.TypeMap

// init registers the generator under mysql.
func init() {
	types = generator.NewTypeMap("MySQL")
	types.Set(model.AnsiString, "LONGTEXT")
	types.SetSized(model.AnsiString, "VARCHAR($size)", 16383, 255)
	types.Set(model.String, "LONGTEXT")
	types.SetSized(model.String, "VARCHAR($size)", 16383, 255)
	types.Set(model.Binary, "LONGBLOB")
	types.SetSized(model.Binary, "VARBINARY($size)", 65535, 0)
	types.Set(model.Boolean, "TINYINT(1)")
	types.Set(model.Byte, "TINYINT UNSIGNED")
	types.Set(model.Currency, "DECIMAL(19,4)")
	types.Set(model.Date, "DATE")
	types.Set(model.DateTime, "DATETIME")
	types.Set(model.DateTimeOffset, "TIMESTAMP")
	types.Set(model.Decimal, "DECIMAL(19,5)")
	types.SetSized(model.Decimal, "DECIMAL($size,$precision)", 65, 0)
	types.Set(model.Double, "DOUBLE")
	types.Set(model.Float, "FLOAT")
	types.Set(model.GUID, "CHAR(36)")
	types.Set(model.Int16, "SMALLINT")
	types.Set(model.Int32, "INTEGER")
	types.Set(model.Int64, "BIGINT")
	types.Set(model.Time, "TIME")
	types.Set(model.XML, "LONGTEXT")

	err := generator.Register("mysql", newMysql)
	if err != nil {
		panic(err)
	}
}

// MysqlGenerator renders MySQL statements.
type MysqlGenerator struct {
	generator.Base
}

// newMysql creates a new generator.Generator.
func newMysql() (generator.Generator, error) {
	g := &MysqlGenerator{}
	g.Base = generator.Base{Dialect: g, Name: "MySQL"}
	return g, nil
}

// QuoteIdentifierChars for mysql.
func (g *MysqlGenerator) QuoteIdentifierChars() (string, string) {
	return "`", "`"
}

// Types of mysql.
func (g *MysqlGenerator) Types() *generator.TypeMap {
	return types
}

// BoolLiteral returns 1 or 0.
func (g *MysqlGenerator) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Identity for mysql.
func (g *MysqlGenerator) Identity() string {
	return "AUTO_INCREMENT"
}

// AlterColumn uses MODIFY COLUMN with the complete column definition.
func (g *MysqlGenerator) AlterColumn(e *expression.AlterColumn) (string, error) {
	def, err := g.ColumnDefinition(e.Column)
	if err != nil {
		return "", err
	}
	return "ALTER TABLE " + g.QuoteTable(e.Table) + " MODIFY COLUMN " + def, nil
}
