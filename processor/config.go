// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package processor

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
)

// drivers maps the generator names to the database/sql driver.
var drivers = map[string]string{
	"mysql":     "mysql",
	"postgres":  "pgx",
	"sqlserver": "sqlserver",
	"sqlite":    "sqlite",
}

// Config of the processor.
type Config struct {
	// Driver of database/sql. If empty, the default driver of the generator is used.
	Driver string
	DSN    string

	MaxIdleConnections int
	MaxOpenConnections int
	MaxConnLifetime    time.Duration
	// Timeout of a complete run. 0 means no timeout.
	Timeout time.Duration

	// PreQuery statements are executed after the connection is opened.
	PreQuery []string
	// Preview logs the statements without executing them.
	Preview bool
}

// DefaultDriver returns the database/sql driver name for a generator name.
// The name is case-insensitive.
func DefaultDriver(generator string) (string, error) {
	if d, ok := drivers[cases.Fold().String(generator)]; ok {
		return d, nil
	}
	return "", fmt.Errorf(ErrDriver, generator)
}
