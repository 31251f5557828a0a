// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expression

// KeyValue is an ordered column/value pair.
type KeyValue struct {
	Key   string `validate:"required"`
	Value interface{}
}

// UpdateData sets column values. Either IsAllRows is true or a Where condition must be given.
// Where pairs are combined with AND, a nil value is rendered as IS NULL.
type UpdateData struct {
	Table
	Set       []KeyValue `validate:"required,min=1,dive"`
	Where     []KeyValue `validate:"dive"`
	IsAllRows bool
}

// Validate the expression.
func (e *UpdateData) Validate() error {
	if err := validateStruct(e); err != nil {
		return err
	}
	if !e.IsAllRows && len(e.Where) == 0 {
		return ErrNoRowFilter
	}
	return nil
}

// Accept the visitor.
func (e *UpdateData) Accept(v Visitor) (string, error) {
	return v.UpdateData(e)
}

func (e *UpdateData) String() string {
	return "UpdateData " + e.qualified()
}
