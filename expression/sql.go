// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expression

// ExecuteSQL passes a raw statement to the database. It is not rewritten by the generators.
type ExecuteSQL struct {
	Statement string `validate:"required"`
}

// Validate the expression.
func (e *ExecuteSQL) Validate() error {
	return validateStruct(e)
}

// Accept the visitor.
func (e *ExecuteSQL) Accept(v Visitor) (string, error) {
	return v.ExecuteSQL(e)
}

func (e *ExecuteSQL) String() string {
	return "ExecuteSQL"
}
