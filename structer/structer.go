// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package structer merges structs. It is used to apply default values to a loaded configuration.
package structer

import (
	"github.com/imdario/mergo"
)

// Merge sets the zero value fields of dst to the values of src.
// Slices are only set if they are empty in dst.
func Merge(dst interface{}, src interface{}) error {
	return mergo.Merge(dst, src)
}

// Override merges src into dst and overwrites the non zero values of dst.
func Override(dst interface{}, src interface{}) error {
	return mergo.Merge(dst, src, mergo.WithOverride)
}
