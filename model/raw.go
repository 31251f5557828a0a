// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

// RawSQL values are rendered without quoting, e.g. as default value.
//	WithDefaultValue(model.RawSQL("CURRENT_TIMESTAMP"))
type RawSQL string
