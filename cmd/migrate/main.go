// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command migrate renders and applies the registered migrations.
// Projects with own migrations build their own main with a blank import of the migration packages.
package main

import (
	"os"

	"github.com/patrickascher/gofer-migrate/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
