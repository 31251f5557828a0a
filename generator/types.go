// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickascher/gofer-migrate/model"
)

// Error messages.
var (
	ErrUnsupportedType = "generator: type %s is not supported by %s"
	ErrTypeSize        = "generator: size %d of type %s exceeds the maximum of %d"
)

// Placeholders of a type template.
const (
	sizePlaceholder      = "$size"
	precisionPlaceholder = "$precision"
)

type typeEntry struct {
	template    string
	sized       string
	maxSize     int64
	defaultSize int64
}

// TypeMap maps the semantic column types to the sql types of a dialect.
// A sized template is used if the column defines a size up to maxSize.
//	types := NewTypeMap("MySQL")
//	types.Set(model.String, "LONGTEXT")
//	types.SetSized(model.String, "VARCHAR($size)", 16383, 255)
type TypeMap struct {
	dialect string
	types   map[model.DbType]typeEntry
}

// NewTypeMap creates an empty map. The dialect name is used in error messages.
func NewTypeMap(dialect string) *TypeMap {
	return &TypeMap{dialect: dialect, types: make(map[model.DbType]typeEntry)}
}

// Set the template which is used without size or if the size exceeds the sized maximum.
func (m *TypeMap) Set(t model.DbType, template string) {
	e := m.types[t]
	e.template = template
	m.types[t] = e
}

// SetSized defines a template with the $size and $precision placeholders.
// If the column has no size, defaultSize is used. A defaultSize of 0 falls back to the unsized template.
func (m *TypeMap) SetSized(t model.DbType, template string, maxSize int64, defaultSize int64) {
	e := m.types[t]
	e.sized = template
	e.maxSize = maxSize
	e.defaultSize = defaultSize
	m.types[t] = e
}

// Get returns the sql type of the column. A custom type is returned as it is.
func (m *TypeMap) Get(c model.Column) (string, error) {
	if c.CustomType != "" {
		return c.CustomType, nil
	}

	e, ok := m.types[c.Type]
	if !ok {
		return "", fmt.Errorf(ErrUnsupportedType, c.Type, m.dialect)
	}

	size := e.defaultSize
	if c.Size.Valid {
		size = c.Size.Int64
	}

	if e.sized != "" && size > 0 {
		if size <= e.maxSize {
			return replace(e.sized, size, c.Precision.Int64), nil
		}
		if e.template == "" {
			return "", fmt.Errorf(ErrTypeSize, size, c.Type, e.maxSize)
		}
	}

	if e.template == "" {
		return "", fmt.Errorf(ErrUnsupportedType, c.Type, m.dialect)
	}
	return e.template, nil
}

func replace(template string, size int64, precision int64) string {
	return strings.NewReplacer(
		sizePlaceholder, strconv.FormatInt(size, 10),
		precisionPlaceholder, strconv.FormatInt(precision, 10),
	).Replace(template)
}
