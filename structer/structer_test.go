// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package structer_test

import (
	"testing"
	"time"

	"github.com/patrickascher/gofer-migrate/structer"
	"github.com/stretchr/testify/assert"
)

type processor struct {
	DSN      string
	Timeout  time.Duration
	PreQuery []string
}

type configuration struct {
	Generator string
	LogLevel  string
	Processor processor
}

// TestMerge tests the mergo.Merge wrapper.
func TestMerge(t *testing.T) {
	asserts := assert.New(t)

	defaults := configuration{LogLevel: "INFO", Processor: processor{Timeout: 30 * time.Second, PreQuery: []string{"SELECT 1"}}}
	dst := configuration{Generator: "postgres", LogLevel: "DEBUG", Processor: processor{DSN: "file:test.db"}}

	asserts.NoError(structer.Merge(&dst, defaults))
	asserts.Equal(configuration{
		Generator: "postgres",
		LogLevel:  "DEBUG",
		Processor: processor{DSN: "file:test.db", Timeout: 30 * time.Second, PreQuery: []string{"SELECT 1"}},
	}, dst)

	// error: dst is no pointer
	asserts.Error(structer.Merge(dst, defaults))
}

// TestOverride tests the mergo.WithOverride option.
func TestOverride(t *testing.T) {
	asserts := assert.New(t)

	dst := configuration{Generator: "postgres", LogLevel: "DEBUG"}
	asserts.NoError(structer.Override(&dst, configuration{Generator: "mysql"}))
	asserts.Equal(configuration{Generator: "mysql", LogLevel: "DEBUG"}, dst)
}
