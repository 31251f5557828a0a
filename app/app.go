// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package app is the migrate command line tool.
//
//	migrate generators
//	migrate sql --generator postgres [--schema public] [--down]
//	migrate up --config migrate.yaml [--generator postgres] [--dsn ...] [--preview]
//
// Migrations are registered by their packages in an init function. A project builds its own
// binary with a blank import of its migration packages and calls app.Run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/patrickascher/gofer-migrate/generator"
	_ "github.com/patrickascher/gofer-migrate/generator/mysql"     // mysql generator
	_ "github.com/patrickascher/gofer-migrate/generator/oracle"    // oracle generator
	_ "github.com/patrickascher/gofer-migrate/generator/postgres"  // postgres generator
	_ "github.com/patrickascher/gofer-migrate/generator/sqlite"    // sqlite generator
	_ "github.com/patrickascher/gofer-migrate/generator/sqlserver" // sql server generator
	"github.com/patrickascher/gofer-migrate/logger"
	"github.com/patrickascher/gofer-migrate/logger/logrus"
	"github.com/patrickascher/gofer-migrate/migration"
	"github.com/patrickascher/gofer-migrate/processor"
	"github.com/patrickascher/gofer-migrate/stringer"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Error messages.
var (
	ErrUsage            = errors.New("usage: migrate generators | sql --generator NAME | up --config FILE")
	ErrNoGenerator      = errors.New("app: a generator is mandatory")
	ErrUnknownGenerator = "app: unknown generator %#v, available: %s"
	ErrConfigFile       = errors.New("app: --config is mandatory")
)

// usageError is reported with ExitUsage.
type usageError struct {
	err error
}

func (u usageError) Error() string {
	return u.err.Error()
}

func (u usageError) Unwrap() error {
	return u.err
}

// loggerName in the logger registry.
const loggerName = "migrate"

var (
	logProvider = logrus.New(os.Stderr)
	logOnce     sync.Once
	logErr      error
)

// Run executes the command and returns the exit code.
func Run(args []string, stdout io.Writer, stderr io.Writer) int {
	err := run(args, stdout, stderr)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, err)
	var u usageError
	if errors.As(err, &u) {
		return ExitUsage
	}
	return ExitError
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		return usageError{ErrUsage}
	}

	flags := newFlagSet(args[0], stderr)
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}

	switch args[0] {
	case "generators":
		return listGenerators(stdout)
	case "sql":
		return renderSQL(flags, stdout, stderr)
	case "up":
		return up(flags, stdout, stderr)
	}
	return usageError{ErrUsage}
}

// newFlagSet defines the flags of all commands.
func newFlagSet(name string, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("config", "c", "", "configuration file")
	flags.StringP("generator", "g", "", "generator name, see migrate generators")
	flags.String("schema", "", "default schema of the expressions")
	flags.String("loglevel", "", "TRACE, DEBUG, INFO, WARNING or ERROR")
	flags.String("driver", "", "database/sql driver, the default driver of the generator if empty")
	flags.String("dsn", "", "data source name")
	flags.Bool("preview", false, "log the statements without executing them")
	flags.Bool("down", false, "render the down migrations")
	return flags
}

// listGenerators prints one generator name per line.
func listGenerators(stdout io.Writer) error {
	for _, name := range generator.Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// renderSQL prints the statements of all registered migrations.
func renderSQL(flags *pflag.FlagSet, stdout io.Writer, stderr io.Writer) error {
	file, _ := flags.GetString("config")
	cfg, err := LoadConfiguration(file, flags)
	if err != nil {
		return err
	}
	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	g, err := lookup(cfg.Generator)
	if err != nil {
		return err
	}

	down, _ := flags.GetBool("down")
	stmts, err := statements(g, cfg.Schema, down)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		fmt.Fprintln(stdout, stmt+";")
	}
	log.Debug(stringer.Count(len(stmts), "statement") + " rendered by " + generator.Name(g))
	return nil
}

// up renders the up migrations and executes them.
func up(flags *pflag.FlagSet, stdout io.Writer, stderr io.Writer) error {
	file, _ := flags.GetString("config")
	if file == "" {
		return usageError{ErrConfigFile}
	}
	cfg, err := LoadConfiguration(file, flags)
	if err != nil {
		return err
	}
	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	g, err := lookup(cfg.Generator)
	if err != nil {
		return err
	}
	if cfg.Processor.Driver == "" && !cfg.Processor.Preview {
		if cfg.Processor.Driver, err = processor.DefaultDriver(generator.Name(g)); err != nil {
			return err
		}
	}

	stmts, err := statements(g, cfg.Schema, false)
	if err != nil {
		return err
	}

	ctx := context.Background()
	p := processor.New(cfg.Processor.processorConfig(), log)
	if err = p.Open(ctx); err != nil {
		return err
	}
	defer p.Close()

	res, err := p.Process(ctx, stmts)
	if err != nil {
		return err
	}
	if res.Preview {
		fmt.Fprintf(stdout, "run %s: %s previewed\n", res.RunID, stringer.Count(res.Statements, "statement"))
		return nil
	}
	fmt.Fprintf(stdout, "run %s: %s executed\n", res.RunID, stringer.Count(res.Statements, "statement"))
	return nil
}

// lookup finds the generator by name. Snake case names like sql_server are accepted.
func lookup(name string) (generator.Generator, error) {
	if name == "" {
		return nil, usageError{ErrNoGenerator}
	}
	if g, ok := generator.Lookup(name); ok {
		return g, nil
	}
	if g, ok := generator.Lookup(stringer.SnakeToCamel(strings.ToLower(name))); ok {
		return g, nil
	}
	return nil, usageError{fmt.Errorf(ErrUnknownGenerator, name, generator.ListAvailable())}
}

// statements renders all registered migrations.
func statements(g generator.Generator, schema string, down bool) ([]string, error) {
	collect := migration.Up
	if down {
		collect = migration.Down
	}
	ctx, err := collect(schema, migration.All())
	if err != nil {
		return nil, err
	}
	return generator.Render(g, ctx.Expressions())
}

// newLogger returns the logrus logger with the given level.
// Skipped generator candidates are reported to it.
func newLogger(out io.Writer, level string) (logger.Manager, error) {
	logOnce.Do(func() {
		logErr = logger.Register(loggerName, logProvider)
	})
	if logErr != nil {
		return nil, logErr
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, usageError{err}
	}

	logProvider.Instance.SetOutput(out)
	log, err := logger.Get(loggerName)
	if err != nil {
		return nil, err
	}
	log = log.New()
	log.SetLogLevel(lvl)
	generator.SetLogger(log)
	return log, nil
}
