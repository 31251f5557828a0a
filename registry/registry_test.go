// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/patrickascher/gofer-migrate/registry"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	asserts := assert.New(t)

	// error: no name and value is given
	err := registry.Set("", nil)
	asserts.Error(err)
	asserts.Equal(registry.ErrMandatoryArguments, err)

	// error: no value is given
	err = registry.Set("set_table", nil)
	asserts.Error(err)
	asserts.Equal(registry.ErrMandatoryArguments, err)

	// error: no name is given
	err = registry.Set("", "users")
	asserts.Error(err)
	asserts.Equal(registry.ErrMandatoryArguments, err)

	// ok
	err = registry.Set("set_table", "users")
	asserts.NoError(err)

	// error: multiple registration
	err = registry.Set("set_table", "users")
	asserts.Error(err)
	asserts.Equal(fmt.Sprintf(registry.ErrAlreadyExists, "set_table"), err.Error())
}

// testing a registry set with a custom defined validator function.
func TestValidator(t *testing.T) {
	asserts := assert.New(t)
	errWrongType := errors.New("wrong type")

	// error: Fn has a zero value
	err := registry.Validator(registry.Validate{Prefix: "dialect_", Fn: nil})
	asserts.Error(err)
	asserts.Equal(registry.ErrMandatoryArguments, err)

	// error: Prefix has a zero value
	err = registry.Validator(registry.Validate{Prefix: "", Fn: func(string, interface{}) error { return nil }})
	asserts.Error(err)
	asserts.Equal(registry.ErrMandatoryArguments, err)

	// ok
	err = registry.Validator(registry.Validate{Prefix: "dialect_", Fn: func(name string, value interface{}) error {
		if name != "dialect_mysql" && name != "dialect_sqlite" {
			return errors.New("unknown dialect")
		}
		if reflect.TypeOf(value).Kind() != reflect.String {
			return errWrongType
		}
		return nil
	}})
	asserts.NoError(err)

	// error: prefix already registered
	err = registry.Validator(registry.Validate{Prefix: "dialect_", Fn: func(string, interface{}) error { return nil }})
	asserts.Error(err)
	asserts.Equal(fmt.Sprintf(registry.ErrAlreadyExists, "validator prefix dialect_"), err.Error())

	// ok: value is a string
	err = registry.Set("dialect_mysql", "mysql")
	asserts.NoError(err)

	// error: name is rejected by the validator
	err = registry.Set("dialect_db2", "db2")
	asserts.Error(err)
	asserts.Equal(errors.New("unknown dialect"), errors.Unwrap(err))

	// error: wrong value type
	err = registry.Set("dialect_sqlite", 1)
	asserts.Error(err)
	asserts.Equal(errWrongType, errors.Unwrap(err))
}

func TestGet(t *testing.T) {
	asserts := assert.New(t)

	err := registry.Set("get_schema", "dbo")
	asserts.NoError(err)

	// ok
	v, err := registry.Get("get_schema")
	asserts.NoError(err)
	asserts.Equal("dbo", v)

	// error: does not exist
	v, err = registry.Get("get_unknown")
	asserts.Error(err)
	asserts.Equal(fmt.Sprintf(registry.ErrUnknownEntry, "get_unknown"), err.Error())
	asserts.Nil(v)
}

func TestPrefix(t *testing.T) {
	asserts := assert.New(t)

	asserts.NoError(registry.Set("prefix_json", "json"))
	asserts.NoError(registry.Set("prefix_yaml", "yaml"))
	asserts.NoError(registry.Set("toml", "toml"))

	v := registry.Prefix("prefix_")
	asserts.Equal(2, len(v))
	asserts.Equal("json", v["prefix_json"])
	asserts.Equal("yaml", v["prefix_yaml"])

	// nothing found
	asserts.Nil(registry.Prefix("prefix_none_"))
}

func TestConcurrentAccess(t *testing.T) {
	asserts := assert.New(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = registry.Set(fmt.Sprintf("concurrent_%d", i), i)
			_ = registry.Prefix("concurrent_")
		}(i)
	}
	wg.Wait()

	asserts.Equal(50, len(registry.Prefix("concurrent_")))
}
