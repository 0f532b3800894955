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

package types

// Datum is the untagged value payload carried by a Constant node. The tag
// lives in the owning node's TypeInfo.Kind; a reader must consult that
// before deciding which field of Datum is meaningful. Only one field is
// ever populated at a time.
type Datum struct {
	// Bool is stored as a byte rather than Go's two-valued bool so the
	// NullBoolean sentinel (a byte outside {0,1}) is representable
	// bit-exactly; 0 is false, 1 is true, anything else is NULL_BOOLEAN.
	Bool    byte
	I16     int16
	I32     int32
	I64     int64
	F32     float32
	F64     float64
	// TimeVal holds TIME/TIMESTAMP/DATE payloads, always as a 64-bit
	// count (see spec §9 on standardizing temporal nulls to 64-bit).
	TimeVal int64
	// Str owns its string payload; Constant is the only node kind ever
	// allowed to hold one.
	Str string
}

// BoolDatum, I16Datum, ... construct a Datum holding a single field. These
// exist so call sites read as "the BOOL Datum for true" rather than a bare
// struct literal with a dozen zero fields.
func BoolDatum(v bool) Datum {
	if v {
		return Datum{Bool: 1}
	}
	return Datum{Bool: 0}
}
func I16Datum(v int16) Datum    { return Datum{I16: v} }
func I32Datum(v int32) Datum    { return Datum{I32: v} }
func I64Datum(v int64) Datum    { return Datum{I64: v} }
func F32Datum(v float32) Datum  { return Datum{F32: v} }
func F64Datum(v float64) Datum  { return Datum{F64: v} }
func TimeDatum(v int64) Datum   { return Datum{TimeVal: v} }
func StringDatum(v string) Datum { return Datum{Str: v} }

// AsInt64 reads the Datum's integral field as an int64 according to kind
// (BOOL, SMALLINT, INT, BIGINT, NUMERIC, DECIMAL and the temporal kinds).
// It panics on any other kind, FLOAT and DOUBLE included; callers must already know
// the kind via TypeInfo before calling, per the Datum contract.
func (d Datum) AsInt64(k Kind) int64 {
	switch k {
	case SMALLINT:
		return int64(d.I16)
	case INT:
		return int64(d.I32)
	case BIGINT, NUMERIC, DECIMAL:
		return d.I64
	case TIME, TIMESTAMP, DATE:
		return d.TimeVal
	case BOOL:
		return int64(d.Bool)
	default:
		panic("types: AsInt64 called on non-integral kind " + k.String())
	}
}

// AsFloat64 reads the Datum's floating field as a float64.
func (d Datum) AsFloat64(k Kind) float64 {
	switch k {
	case FLOAT:
		return float64(d.F32)
	case DOUBLE:
		return d.F64
	default:
		panic("types: AsFloat64 called on non-floating kind " + k.String())
	}
}
