// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stringer_test

import (
	"testing"

	"github.com/patrickascher/gofer-migrate/stringer"
	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "add_users_table", stringer.CamelToSnake("AddUsersTable"))
}

func TestSnakeToCamel(t *testing.T) {
	assert.Equal(t, "SqlServer", stringer.SnakeToCamel("sql_server"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "migrations", stringer.Plural("migration"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 generator", stringer.Count(1, "generator"))
	assert.Equal(t, "0 generators", stringer.Count(0, "generator"))
	assert.Equal(t, "5 generators", stringer.Count(5, "generator"))
}
