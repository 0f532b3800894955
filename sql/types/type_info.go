// Copyright 2026 The Cragdb Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package types holds the SQL type lattice attached to every analyzed
// expression: TypeInfo (the value-semantics type descriptor), Datum (the
// untagged value payload), and the pure type-level helpers (common-type
// inference, castability, null sentinels) that the coercion engine in
// sql/expression builds on.
package types

// Kind enumerates the SQL types the analyzer core understands. The set is
// closed; adding a kind here requires updating every switch in this
// package and in sql/expression that dispatches on it.
type Kind int

const (
	BOOL Kind = iota
	SMALLINT
	INT
	BIGINT
	FLOAT
	DOUBLE
	NUMERIC
	DECIMAL
	CHAR
	VARCHAR
	TEXT
	TIME
	TIMESTAMP
	DATE
	NULL_T
)

func (k Kind) String() string {
	switch k {
	case BOOL:
		return "BOOL"
	case SMALLINT:
		return "SMALLINT"
	case INT:
		return "INT"
	case BIGINT:
		return "BIGINT"
	case FLOAT:
		return "FLOAT"
	case DOUBLE:
		return "DOUBLE"
	case NUMERIC:
		return "NUMERIC"
	case DECIMAL:
		return "DECIMAL"
	case CHAR:
		return "CHAR"
	case VARCHAR:
		return "VARCHAR"
	case TEXT:
		return "TEXT"
	case TIME:
		return "TIME"
	case TIMESTAMP:
		return "TIMESTAMP"
	case DATE:
		return "DATE"
	case NULL_T:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric reports whether k participates in the numeric promotion
// lattice of spec §4.1.
func (k Kind) IsNumeric() bool {
	switch k {
	case SMALLINT, INT, BIGINT, FLOAT, DOUBLE, NUMERIC, DECIMAL:
		return true
	default:
		return false
	}
}

// IsString reports whether k is one of the dictionary-encodable string
// kinds.
func (k Kind) IsString() bool {
	switch k {
	case CHAR, VARCHAR, TEXT:
		return true
	default:
		return false
	}
}

// IsTemporal reports whether k is one of TIME/TIMESTAMP/DATE.
func (k Kind) IsTemporal() bool {
	switch k {
	case TIME, TIMESTAMP, DATE:
		return true
	default:
		return false
	}
}

// IsInteger reports whether k is an exact integer kind, as required by the
// MODULO operand check in spec §4.1.
func (k Kind) IsInteger() bool {
	switch k {
	case SMALLINT, INT, BIGINT:
		return true
	default:
		return false
	}
}

// Compression describes whether a string-kinded TypeInfo is dictionary
// encoded.
type Compression int

const (
	// NONE is an unencoded (raw varchar/text) string.
	NONE Compression = iota
	// DICT is a dictionary-encoded string; CompParam names the dictionary.
	DICT
)

// TransientDictID is the smallest legal transient dictionary id. Any
// CompParam <= TransientDictID denotes a transient (planner-synthesized)
// dictionary rather than a catalog-resident one.
const TransientDictID int32 = -1

// TransientDict is the involutive mapping between a real dictionary id and
// its transient view: TransientDict(TransientDict(x)) == x.
func TransientDict(id int32) int32 {
	return -id
}

// IsTransient reports whether compParam denotes a transient dictionary.
func IsTransient(compParam int32) bool {
	return compParam <= TransientDictID
}

// TypeInfo is the SQL type attached to every expression node. It is a
// small value type: cheap to copy, compared field-by-field, never shared
// by pointer across two logically distinct type slots.
type TypeInfo struct {
	Kind Kind
	// Dimension is precision for numeric kinds, length for string kinds,
	// and fractional-second digits for temporal kinds.
	Dimension int32
	// Scale is meaningful only for NUMERIC/DECIMAL.
	Scale int32
	NotNull bool
	Compression Compression
	// CompParam is the dictionary id when Compression == DICT. A value
	// <= TransientDictID marks a transient dictionary (see IsTransient).
	CompParam int32
}

// Equals implements the TypeInfo equality invariant of spec §3: two
// TypeInfos are equal iff every field matches.
func (t TypeInfo) Equals(o TypeInfo) bool {
	return t.Kind == o.Kind &&
		t.Dimension == o.Dimension &&
		t.Scale == o.Scale &&
		t.NotNull == o.NotNull &&
		t.Compression == o.Compression &&
		t.CompParam == o.CompParam
}

// WithNotNull returns a copy of t with NotNull set.
func (t TypeInfo) WithNotNull(notNull bool) TypeInfo {
	t.NotNull = notNull
	return t
}

// Decompressed returns a copy of t with Compression forced to NONE and
// CompParam cleared to 0. An uncompressed t that carries a CompParam
// therefore comes back with CompParam 0.
func (t TypeInfo) Decompressed() TypeInfo {
	t.Compression = NONE
	t.CompParam = 0
	return t
}

// SameDictionary reports whether a and b, both DICT-compressed strings,
// refer to the same dictionary either directly or through the transient
// involution (spec §4.1, common_string_type).
func SameDictionary(a, b TypeInfo) bool {
	if a.Compression != DICT || b.Compression != DICT {
		return false
	}
	return a.CompParam == b.CompParam || a.CompParam == TransientDict(b.CompParam)
}
