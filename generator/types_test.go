// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"testing"

	"github.com/patrickascher/gofer-migrate/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v4"
)

func testTypes() *TypeMap {
	types := NewTypeMap("ANSI")
	types.Set(model.String, "TEXT")
	types.SetSized(model.String, "VARCHAR($size)", 255, 100)
	types.Set(model.Int32, "INTEGER")
	types.Set(model.Boolean, "BOOLEAN")
	types.SetSized(model.Decimal, "DECIMAL($size,$precision)", 38, 0)
	return types
}

func TestTypeMap_Get(t *testing.T) {
	asserts := assert.New(t)
	types := testTypes()

	var tests = []struct {
		column model.Column
		want   string
		err    error
	}{
		{column: model.Column{Type: model.Int32}, want: "INTEGER"},
		{column: model.Column{Type: model.String}, want: "VARCHAR(100)"},
		{column: model.Column{Type: model.String, Size: null.IntFrom(50)}, want: "VARCHAR(50)"},
		{column: model.Column{Type: model.String, Size: null.IntFrom(255)}, want: "VARCHAR(255)"},
		{column: model.Column{Type: model.String, Size: null.IntFrom(256)}, want: "TEXT"},
		{column: model.Column{Type: model.String, Size: null.IntFrom(0)}, want: "TEXT"},
		{column: model.Column{Type: model.Decimal, Size: null.IntFrom(10), Precision: null.IntFrom(2)}, want: "DECIMAL(10,2)"},
		{column: model.Column{Type: model.Decimal, Size: null.IntFrom(40)}, err: fmt.Errorf(ErrTypeSize, 40, model.Decimal, 38)},
		{column: model.Column{Type: model.Decimal}, err: fmt.Errorf(ErrUnsupportedType, model.Decimal, "ANSI")},
		{column: model.Column{Type: model.XML}, err: fmt.Errorf(ErrUnsupportedType, model.XML, "ANSI")},
		{column: model.Column{Type: model.XML, CustomType: "XMLTYPE"}, want: "XMLTYPE"},
		{column: model.Column{Type: model.Int32, CustomType: "SERIAL"}, want: "SERIAL"},
	}

	for _, test := range tests {
		got, err := types.Get(test.column)
		if test.err != nil {
			asserts.Error(err)
			asserts.Equal(test.err.Error(), err.Error())
			continue
		}
		asserts.NoError(err)
		asserts.Equal(test.want, got)
	}
}

func TestTypeMap_Set(t *testing.T) {
	asserts := assert.New(t)
	types := NewTypeMap("ANSI")

	// the sized template is kept if the unsized one is set afterwards.
	types.SetSized(model.Binary, "VARBINARY($size)", 8000, 0)
	types.Set(model.Binary, "BLOB")
	got, err := types.Get(model.Column{Type: model.Binary})
	asserts.NoError(err)
	asserts.Equal("BLOB", got)
	got, err = types.Get(model.Column{Type: model.Binary, Size: null.IntFrom(16)})
	asserts.NoError(err)
	asserts.Equal("VARBINARY(16)", got)

	// overwrite
	types.Set(model.Binary, "BYTEA")
	got, err = types.Get(model.Column{Type: model.Binary})
	asserts.NoError(err)
	asserts.Equal("BYTEA", got)
}
