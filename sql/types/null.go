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

import "math"

// Null sentinel bit patterns (spec §6). These must stay bit-exact: a
// downstream executor reading a raw Datum relies on exactly these values
// to recognize NULL without consulting an out-of-band null bitmap.
const (
	NullBoolean byte = 2 // outside {0,1}

	NullSmallint int16 = math.MinInt16
	NullInt      int32 = math.MinInt32
	NullBigint   int64 = math.MinInt64
)

// NullFloat and NullDouble are designated NaN bit patterns distinct from a
// normal computed NaN only by convention (the core never distinguishes
// them from any other NaN; it relies on the executor's raw-bits check
// instead of a Go NaN comparison, since NaN != NaN under IEEE 754).
var (
	NullFloat  = math.Float32frombits(0x7fc00000)
	NullDouble = math.Float64frombits(0x7ff8000000000000)
)

// NullString is the sentinel for CHAR/VARCHAR/TEXT nulls: the empty
// string. Spec §9 calls out that "" is therefore ambiguous with a genuine
// zero-length literal; callers must carry Constant.IsNull separately and
// never infer nullness from Str == "".
const NullString = ""

// NullDatum returns the sentinel Datum for t's kind, per spec §6. It does
// not set any "is null" flag; callers (Constant.AddCast, the string codec)
// are responsible for tracking nullness alongside this payload.
func NullDatum(t TypeInfo) Datum {
	switch t.Kind {
	case BOOL:
		return Datum{Bool: NullBoolean}
	case SMALLINT:
		return Datum{I16: NullSmallint}
	case INT:
		return Datum{I32: NullInt}
	case BIGINT, NUMERIC, DECIMAL:
		return Datum{I64: NullBigint}
	case FLOAT:
		return Datum{F32: NullFloat}
	case DOUBLE:
		return Datum{F64: NullDouble}
	case TIME, TIMESTAMP, DATE:
		return Datum{TimeVal: NullBigint}
	case CHAR, VARCHAR, TEXT:
		return Datum{Str: NullString}
	case NULL_T:
		return Datum{}
	default:
		return Datum{}
	}
}
