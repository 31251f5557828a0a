// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package migration provides the fluent api to describe schema changes.
// Every fluent call resolves into dialect-neutral expressions which are appended to a Context.
// The Context is not safe for concurrent use, one Context belongs to one migration pass.
package migration

import (
	"errors"

	"github.com/patrickascher/gofer-migrate/expression"
)

// Context holds the ordered expressions of a migration pass.
// Expressions are only appended, never removed or reordered. Builders still finish the
// expressions of their current chain: InSchema rewrites the schema of the queued steps and a
// repeated existing row default replaces the value of the queued update.
type Context struct {
	defaultSchema string
	expressions   []expression.Expression
	errs          []error
}

// NewContext creates a context. The default schema is applied to every added
// schema expression which has no schema.
func NewContext(defaultSchema string) *Context {
	return &Context{defaultSchema: defaultSchema}
}

// Add appends an expression.
func (c *Context) Add(e expression.Expression) {
	if s, ok := e.(expression.SchemaExpression); ok && s.Schema() == "" {
		s.SetSchema(c.defaultSchema)
	}
	c.expressions = append(c.expressions, e)
}

// Expressions returns the added expressions in order.
func (c *Context) Expressions() []expression.Expression {
	return c.expressions
}

// DefaultSchema returns the schema which is used if none was defined.
func (c *Context) DefaultSchema() string {
	return c.defaultSchema
}

// Err returns all errors which happened during the fluent calls, joined.
func (c *Context) Err() error {
	return errors.Join(c.errs...)
}

// addError records an error of a fluent call, the chain itself continues.
func (c *Context) addError(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Create starts a create expression.
func (c *Context) Create() *CreateRoot {
	return &CreateRoot{ctx: c}
}

// Alter starts an alter expression.
func (c *Context) Alter() *AlterRoot {
	return &AlterRoot{ctx: c}
}

// Delete starts a delete expression.
func (c *Context) Delete() *DeleteRoot {
	return &DeleteRoot{ctx: c}
}

// Rename starts a rename expression.
func (c *Context) Rename() *RenameRoot {
	return &RenameRoot{ctx: c}
}

// Update starts an update data expression.
func (c *Context) Update() *UpdateRoot {
	return &UpdateRoot{ctx: c}
}

// Execute adds raw sql statements.
func (c *Context) Execute() *ExecuteRoot {
	return &ExecuteRoot{ctx: c}
}
