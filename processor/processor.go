// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package processor executes rendered migration statements against a database.
//
// All statements of a run are executed in one transaction. If a statement fails, the
// transaction is rolled back. Every statement is logged on DEBUG with its duration and the run id.
//	p := processor.New(processor.Config{Driver: "pgx", DSN: dsn}, log)
//	err := p.Open(ctx)
//	res, err := p.Process(ctx, stmts)
package processor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"  // mysql driver
	_ "github.com/jackc/pgx/v5/stdlib"  // postgres driver
	_ "github.com/microsoft/go-mssqldb" // sql server driver
	"github.com/patrickascher/gofer-migrate/logger"
	"github.com/patrickascher/gofer-migrate/stringer"
	"github.com/segmentio/ksuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// Error messages.
var (
	ErrDbNotSet = errors.New("processor: DB is not set")
	ErrDriver   = "processor: no database driver for generator %s"
	ErrExec     = "processor: statement %d (%s): %w"
	ErrPreQuery = "processor: pre query %s: %w"
)

// Result of a run.
type Result struct {
	RunID      string
	Statements int
	Preview    bool
}

// Processor executes statements.
type Processor struct {
	db     *sql.DB
	config Config
	Logger logger.Manager
}

// New creates a processor. The logger can be nil.
func New(config Config, log logger.Manager) *Processor {
	return &Processor{config: config, Logger: log}
}

// SetDB sets an already opened *sql.DB.
func (p *Processor) SetDB(db *sql.DB) {
	p.db = db
}

// DB returns the *sql.DB.
func (p *Processor) DB() *sql.DB {
	return p.db
}

// Open creates the *sql.DB if none was set, checks the connection and runs the pre queries.
// Nothing is opened in preview mode.
func (p *Processor) Open(ctx context.Context) error {
	if p.config.Preview {
		return nil
	}

	if p.db == nil {
		db, err := sql.Open(p.config.Driver, p.config.DSN)
		if err != nil {
			return fmt.Errorf("processor: %w", err)
		}
		p.db = db
	}

	// zero values keep the database/sql defaults.
	if p.config.MaxIdleConnections > 0 {
		p.db.SetMaxIdleConns(p.config.MaxIdleConnections)
	}
	if p.config.MaxOpenConnections > 0 {
		p.db.SetMaxOpenConns(p.config.MaxOpenConnections)
	}
	if p.config.MaxConnLifetime > 0 {
		p.db.SetConnMaxLifetime(p.config.MaxConnLifetime)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("processor: %w", err)
	}

	for _, q := range p.config.PreQuery {
		if _, err := p.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf(ErrPreQuery, q, err)
		}
	}
	return nil
}

// Close the database connection.
func (p *Processor) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

// Process executes the statements in one transaction.
// In preview mode the statements are only logged on INFO.
func (p *Processor) Process(ctx context.Context, stmts []string) (Result, error) {
	res := Result{RunID: ksuid.New().String(), Preview: p.config.Preview}
	log := p.logger(res.RunID)

	if p.config.Preview {
		for _, stmt := range stmts {
			log.Info(stmt)
		}
		res.Statements = len(stmts)
		return res, nil
	}

	if p.db == nil {
		return res, ErrDbNotSet
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("processor: %w", err)
	}

	for i, stmt := range stmts {
		l := log.WithTimer()
		_, err = tx.ExecContext(ctx, stmt)
		if err != nil {
			l.Error(stmt)
			execErr := fmt.Errorf(ErrExec, i+1, stmt, err)
			if rbErr := tx.Rollback(); rbErr != nil {
				return res, errors.Join(execErr, fmt.Errorf("processor: %w", rbErr))
			}
			return res, execErr
		}
		l.Debug(stmt)
		res.Statements++
	}

	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("processor: %w", err)
	}
	log.Info(stringer.Count(res.Statements, "statement") + " executed")
	return res, nil
}

// logger returns the logger with the run id or a discarding one.
func (p *Processor) logger(runID string) logger.Manager {
	if p.Logger == nil {
		return discard{}
	}
	return p.Logger.WithFields(logger.Fields{"run": runID})
}

func (p *Processor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.config.Timeout > 0 {
		return context.WithTimeout(ctx, p.config.Timeout)
	}
	return context.WithCancel(ctx)
}

// discard is used if no logger is set.
type discard struct{}

func (d discard) Trace(string)                            {}
func (d discard) Debug(string)                            {}
func (d discard) Info(string)                             {}
func (d discard) Warning(string)                          {}
func (d discard) Error(string)                            {}
func (d discard) Panic(string)                            {}
func (d discard) New() logger.Manager                     { return d }
func (d discard) WithFields(logger.Fields) logger.Manager { return d }
func (d discard) WithTimer() logger.Manager               { return d }
func (d discard) SetCallerFields(bool)                    {}
func (d discard) SetLogLevel(logger.Level)                {}
