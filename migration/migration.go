// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/patrickascher/gofer-migrate/registry"
	"github.com/patrickascher/gofer-migrate/stringer"
)

// registryPrefix for the registry package.
const registryPrefix = "migration_"

// Error messages.
var (
	ErrVersion   = errors.New("migration: version must be greater than 0")
	ErrMigration = errors.New("migration: migration is nil")
)

// Migration describes the changes of one version.
type Migration interface {
	Up(*Context)
	Down(*Context)
}

// Info of a registered migration.
type Info struct {
	Version     int64
	Description string
	Migration   Migration
}

// Register a migration. It should be called in the init function of the migration file.
// If the description is empty, the snake case type name of the migration is used.
//	func init() {
//		migration.Register(20210301120000, "", new(AddUsersTable))
//	}
func Register(version int64, description string, m Migration) error {
	if version <= 0 {
		return ErrVersion
	}
	if m == nil {
		return ErrMigration
	}
	if description == "" {
		t := reflect.TypeOf(m)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		description = stringer.CamelToSnake(t.Name())
	}
	return registry.Set(fmt.Sprintf("%s%d", registryPrefix, version), Info{Version: version, Description: description, Migration: m})
}

// All registered migrations, sorted by version.
func All() []Info {
	var rv []Info
	for _, v := range registry.Prefix(registryPrefix) {
		if info, ok := v.(Info); ok {
			rv = append(rv, info)
		}
	}
	sort.Slice(rv, func(i, j int) bool { return rv[i].Version < rv[j].Version })
	return rv
}

// Up collects the expressions of all given migrations in version order.
func Up(defaultSchema string, migrations []Info) (*Context, error) {
	ctx := NewContext(defaultSchema)
	for _, m := range migrations {
		m.Migration.Up(ctx)
	}
	return ctx, ctx.Err()
}

// Down collects the expressions of all given migrations in reversed version order.
func Down(defaultSchema string, migrations []Info) (*Context, error) {
	ctx := NewContext(defaultSchema)
	for i := len(migrations) - 1; i >= 0; i-- {
		migrations[i].Migration.Down(ctx)
	}
	return ctx, ctx.Err()
}
