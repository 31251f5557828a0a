// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package processor_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/patrickascher/gofer-migrate/generator"
	_ "github.com/patrickascher/gofer-migrate/generator/sqlite"
	"github.com/patrickascher/gofer-migrate/logger"
	"github.com/patrickascher/gofer-migrate/logger/logrus"
	"github.com/patrickascher/gofer-migrate/migration"
	"github.com/patrickascher/gofer-migrate/processor"
	"github.com/stretchr/testify/assert"
)

var logOutput bytes.Buffer

func init() {
	err := logger.Register("processorTest", logrus.New(&logOutput))
	if err != nil {
		panic(err)
	}
}

func newProcessor(asserts *assert.Assertions, preview bool) *processor.Processor {
	log, err := logger.Get("processorTest")
	asserts.NoError(err)

	p := processor.New(processor.Config{
		Driver:             "sqlite",
		DSN:                ":memory:",
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
		PreQuery:           []string{"PRAGMA foreign_keys = ON"},
		Preview:            preview,
	}, log)
	asserts.NoError(p.Open(context.Background()))
	return p
}

func TestProcessor_Process(t *testing.T) {
	asserts := assert.New(t)
	logOutput.Reset()
	p := newProcessor(asserts, false)
	defer p.Close()

	ctx := migration.NewContext("")
	ctx.Create().Table("users").
		WithColumn("id").AsInt64().PrimaryKey().Identity().NotNullable().
		WithColumn("name").AsString(100).NotNullable().WithDefaultValue("")
	ctx.Execute().SQL("INSERT INTO users (name) VALUES ('fred')")
	ctx.Create().Column("age").OnTable("users").AsInt32().Nullable()
	ctx.Update().Table("users").Set("age", 18).AllRows()

	g, ok := generator.Lookup("sqlite")
	asserts.True(ok)
	stmts, err := generator.Render(g, ctx.Expressions())
	asserts.NoError(err)

	res, err := p.Process(context.Background(), stmts)
	asserts.NoError(err)
	asserts.Equal(4, res.Statements)
	asserts.False(res.Preview)
	asserts.Equal(27, len(res.RunID))

	var name string
	var age int
	asserts.NoError(p.DB().QueryRow("SELECT name, age FROM users").Scan(&name, &age))
	asserts.Equal("fred", name)
	asserts.Equal(18, age)

	// logged with run id
	asserts.Equal(5, strings.Count(logOutput.String(), "run="+res.RunID))
	asserts.Contains(logOutput.String(), "4 statements executed")
	asserts.Contains(logOutput.String(), "duration=")
}

func TestProcessor_Rollback(t *testing.T) {
	asserts := assert.New(t)
	p := newProcessor(asserts, false)
	defer p.Close()

	stmts := []string{"CREATE TABLE robots (id INTEGER)", "INSERT INTO missing VALUES (1)"}
	res, err := p.Process(context.Background(), stmts)
	asserts.Error(err)
	asserts.True(strings.HasPrefix(err.Error(), "processor: statement 2 (INSERT INTO missing VALUES (1)): "))
	asserts.Equal(1, res.Statements)

	// the table was rolled back.
	var count int
	asserts.NoError(p.DB().QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name = 'robots'").Scan(&count))
	asserts.Equal(0, count)
}

func TestProcessor_Preview(t *testing.T) {
	asserts := assert.New(t)
	logOutput.Reset()
	p := newProcessor(asserts, true)

	res, err := p.Process(context.Background(), []string{"SELECT 1", "SELECT 2"})
	asserts.NoError(err)
	asserts.True(res.Preview)
	asserts.Equal(2, res.Statements)
	asserts.Nil(p.DB())
	asserts.NoError(p.Close())
	asserts.Contains(logOutput.String(), `msg="SELECT 2"`)
}

func TestProcessor_Errors(t *testing.T) {
	asserts := assert.New(t)

	// error: no db
	p := processor.New(processor.Config{}, nil)
	_, err := p.Process(context.Background(), []string{"SELECT 1"})
	asserts.Equal(processor.ErrDbNotSet, err)

	// error: unknown driver
	p = processor.New(processor.Config{Driver: "unknown"}, nil)
	asserts.Error(p.Open(context.Background()))

	// error: pre query
	p = processor.New(processor.Config{Driver: "sqlite", DSN: ":memory:", PreQuery: []string{"NOT SQL"}}, nil)
	err = p.Open(context.Background())
	asserts.Error(err)
	asserts.True(strings.HasPrefix(err.Error(), "processor: pre query NOT SQL: "))
	asserts.NoError(p.Close())
}

func TestDefaultDriver(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		generator string
		driver    string
	}{
		{generator: "Mysql", driver: "mysql"},
		{generator: "Postgres", driver: "pgx"},
		{generator: "SqlServer", driver: "sqlserver"},
		{generator: "sqlite", driver: "sqlite"},
	}
	for _, test := range tests {
		d, err := processor.DefaultDriver(test.generator)
		asserts.NoError(err)
		asserts.Equal(test.driver, d)
	}

	_, err := processor.DefaultDriver("Oracle")
	asserts.Equal(fmt.Sprintf(processor.ErrDriver, "Oracle"), err.Error())
}
