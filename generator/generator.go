// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package generator renders migration expressions into the sql of a database.
//
// Every dialect lives in its own package and registers a constructor in its init function.
// The registry is built once on the first Lookup or Names call. The lookup name is the type name
// of the generator without the "Generator" suffix (PostgresGenerator is registered as Postgres).
//	import _ "github.com/patrickascher/gofer-migrate/generator/postgres"
//
//	g, ok := generator.Lookup("postgres")
//	stmts, err := generator.Render(g, ctx.Expressions())
package generator

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickascher/gofer-migrate/expression"
	"github.com/patrickascher/gofer-migrate/model"
)

// Error messages.
var (
	ErrLiteral      = "generator: value %v of type %T can not be rendered as literal"
	ErrNotSupported = "generator: %s is not supported by %s"
	ErrNoGenerator  = errors.New("generator: generator is nil")
)

// Generator renders every expression kind into a sql statement.
type Generator interface {
	expression.Visitor
}

// Dialect defines the database specific parts which are used by Base.
type Dialect interface {
	// QuoteIdentifierChars returns the opening and closing identifier quote.
	QuoteIdentifierChars() (string, string)
	// Types maps the semantic column types.
	Types() *TypeMap
	// BoolLiteral renders a boolean value.
	BoolLiteral(bool) string
	// Identity returns the auto increment clause of a column.
	Identity() string
}

// Render validates and renders the expressions in order.
func Render(g Generator, expressions []expression.Expression) ([]string, error) {
	if g == nil {
		return nil, ErrNoGenerator
	}
	stmts := make([]string, 0, len(expressions))
	for _, e := range expressions {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("generator: %s: %w", e, err)
		}
		stmt, err := e.Accept(g)
		if err != nil {
			return nil, fmt.Errorf("generator: %s: %w", e, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Base renders the ANSI parts of the expressions. It is embedded by the dialects which
// override the methods their database handles differently.
type Base struct {
	Dialect Dialect
	// Name of the database, used in error messages.
	Name string
	// NoSchema ignores the schema name of the expressions.
	NoSchema bool
	// AddColumn is the keyword to add a column, "ADD COLUMN" if empty.
	AddColumn string
	// IdentityIsPrimaryKey renders the primary key inline on identity columns.
	IdentityIsPrimaryKey bool
}

// QuoteIdentifier quotes every name with the dialects quote characters.
// Quote characters inside the name are removed. "users.id" is rendered as "users"."id".
func (b *Base) QuoteIdentifier(names ...string) string {
	open, closing := b.Dialect.QuoteIdentifierChars()
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.NewReplacer(open, "", closing, "").Replace(n)
		parts := strings.Split(n, ".")
		for i, p := range parts {
			parts[i] = open + p + closing
		}
		quoted = append(quoted, strings.Join(parts, "."))
	}
	return strings.Join(quoted, ", ")
}

// QuoteTable quotes the table with its schema.
func (b *Base) QuoteTable(t expression.Table) string {
	if t.SchemaName == "" || b.NoSchema {
		return b.QuoteIdentifier(t.TableName)
	}
	return b.QuoteIdentifier(t.SchemaName + "." + t.TableName)
}

// Literal renders a value. Strings are quoted with single quotes, nil and invalid null types are NULL.
func (b *Base) Literal(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "NULL", nil
	case model.RawSQL:
		return string(v), nil
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	case bool:
		return b.Dialect.BoolLiteral(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'", nil
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return "", err
		}
		return b.Literal(dv)
	}
	return "", fmt.Errorf(ErrLiteral, value, value)
}

// ColumnDefinition renders name, type, default, identity, nullability and unique constraint.
func (b *Base) ColumnDefinition(c model.Column) (string, error) {
	t, err := b.Dialect.Types().Get(c)
	if err != nil {
		return "", err
	}

	def := []string{b.QuoteIdentifier(c.Name), t}
	if c.DefaultValue != nil {
		v, err := b.Literal(c.DefaultValue)
		if err != nil {
			return "", err
		}
		def = append(def, "DEFAULT "+v)
	}
	if c.IsIdentity && !b.IdentityIsPrimaryKey {
		def = append(def, b.Dialect.Identity())
	}
	if c.IsNullable.Valid {
		if c.IsNullable.Bool {
			def = append(def, "NULL")
		} else {
			def = append(def, "NOT NULL")
		}
	}
	if c.IsIdentity && b.IdentityIsPrimaryKey {
		def = append(def, "PRIMARY KEY", b.Dialect.Identity())
	}
	if c.IsUnique {
		def = append(def, "UNIQUE")
	}
	return strings.Join(def, " "), nil
}

// CreateTable renders CREATE TABLE with a primary key constraint.
func (b *Base) CreateTable(e *expression.CreateTable) (string, error) {
	var defs, pk []string
	for _, c := range e.Columns {
		def, err := b.ColumnDefinition(c)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
		if c.IsPrimaryKey && !(c.IsIdentity && b.IdentityIsPrimaryKey) {
			pk = append(pk, c.Name)
		}
	}
	if len(pk) > 0 {
		defs = append(defs, "PRIMARY KEY ("+b.QuoteIdentifier(pk...)+")")
	}
	return "CREATE TABLE " + b.QuoteTable(e.Table) + " (" + strings.Join(defs, ", ") + ")", nil
}

// DeleteTable renders DROP TABLE.
func (b *Base) DeleteTable(e *expression.DeleteTable) (string, error) {
	return "DROP TABLE " + b.QuoteTable(e.Table), nil
}

// CreateColumn renders ALTER TABLE ADD COLUMN.
func (b *Base) CreateColumn(e *expression.CreateColumn) (string, error) {
	def, err := b.ColumnDefinition(e.Column)
	if err != nil {
		return "", err
	}
	keyword := b.AddColumn
	if keyword == "" {
		keyword = "ADD COLUMN"
	}
	return "ALTER TABLE " + b.QuoteTable(e.Table) + " " + keyword + " " + def, nil
}

// AlterColumn renders ALTER TABLE ALTER COLUMN with the complete definition.
func (b *Base) AlterColumn(e *expression.AlterColumn) (string, error) {
	def, err := b.ColumnDefinition(e.Column)
	if err != nil {
		return "", err
	}
	return "ALTER TABLE " + b.QuoteTable(e.Table) + " ALTER COLUMN " + def, nil
}

// DeleteColumn renders one DROP COLUMN clause per column.
func (b *Base) DeleteColumn(e *expression.DeleteColumn) (string, error) {
	drops := make([]string, 0, len(e.ColumnNames))
	for _, c := range e.ColumnNames {
		drops = append(drops, "DROP COLUMN "+b.QuoteIdentifier(c))
	}
	return "ALTER TABLE " + b.QuoteTable(e.Table) + " " + strings.Join(drops, ", "), nil
}

// RenameColumn renders ALTER TABLE RENAME COLUMN.
func (b *Base) RenameColumn(e *expression.RenameColumn) (string, error) {
	return "ALTER TABLE " + b.QuoteTable(e.Table) + " RENAME COLUMN " + b.QuoteIdentifier(e.OldName) + " TO " + b.QuoteIdentifier(e.NewName), nil
}

// UpdateData renders UPDATE. The where condition is ignored if all rows are updated.
func (b *Base) UpdateData(e *expression.UpdateData) (string, error) {
	set, err := b.pairs(e.Set, false)
	if err != nil {
		return "", err
	}
	stmt := "UPDATE " + b.QuoteTable(e.Table) + " SET " + strings.Join(set, ", ")
	if e.IsAllRows {
		return stmt, nil
	}

	where, err := b.pairs(e.Where, true)
	if err != nil {
		return "", err
	}
	return stmt + " WHERE " + strings.Join(where, " AND "), nil
}

// ExecuteSQL returns the statement as it is.
func (b *Base) ExecuteSQL(e *expression.ExecuteSQL) (string, error) {
	return e.Statement, nil
}

// pairs renders column = value. In conditions a NULL value is rendered as IS NULL.
func (b *Base) pairs(kv []expression.KeyValue, condition bool) ([]string, error) {
	rv := make([]string, 0, len(kv))
	for _, p := range kv {
		v, err := b.Literal(p.Value)
		if err != nil {
			return nil, err
		}
		if condition && v == "NULL" {
			rv = append(rv, b.QuoteIdentifier(p.Key)+" IS NULL")
			continue
		}
		rv = append(rv, b.QuoteIdentifier(p.Key)+" = "+v)
	}
	return rv, nil
}
