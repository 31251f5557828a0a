// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/patrickascher/gofer-migrate/expression"
)

// ExecuteRoot is returned by Context.Execute.
type ExecuteRoot struct {
	ctx *Context
}

// SQL adds a raw statement.
func (r *ExecuteRoot) SQL(statement string) {
	r.ctx.Add(&expression.ExecuteSQL{Statement: statement})
}
