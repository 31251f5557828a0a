// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

// DbType is the semantic column type. Each generator maps it to a dialect specific sql type.
type DbType int

// sanitized types over multiple databases.
const (
	Unset DbType = iota
	AnsiString
	Binary
	Boolean
	Byte
	Currency
	Date
	DateTime
	DateTimeOffset
	Decimal
	Double
	Float
	GUID
	Int16
	Int32
	Int64
	String
	Time
	XML
)

var typeNames = map[DbType]string{
	Unset:          "Unset",
	AnsiString:     "AnsiString",
	Binary:         "Binary",
	Boolean:        "Boolean",
	Byte:           "Byte",
	Currency:       "Currency",
	Date:           "Date",
	DateTime:       "DateTime",
	DateTimeOffset: "DateTimeOffset",
	Decimal:        "Decimal",
	Double:         "Double",
	Float:          "Float",
	GUID:           "Guid",
	Int16:          "Int16",
	Int32:          "Int32",
	Int64:          "Int64",
	String:         "String",
	Time:           "Time",
	XML:            "Xml",
}

// String returns the name of the type.
func (t DbType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown type"
}

// ModificationType defines if a column is created or altered.
type ModificationType int

// Modification types.
const (
	Create ModificationType = iota
	Alter
)

// String returns the name of the modification type.
func (m ModificationType) String() string {
	switch m {
	case Create:
		return "Create"
	case Alter:
		return "Alter"
	default:
		return "unknown modification"
	}
}
