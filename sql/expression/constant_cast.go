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

package expression

import (
	"strconv"

	"github.com/cragdb/sqlanalyzer/sql/types"
	"github.com/shopspring/decimal"
)

// AddCast implements spec §4.3.2: constants fold casts eagerly instead of
// wrapping in a UOper(CAST).
func (c *Constant) AddCast(newType types.TypeInfo) (Expr, error) {
	if c.Type_.Equals(newType) {
		return c, nil
	}

	if c.IsNull {
		return &Constant{Type_: newType, IsNull: true, Value: types.NullDatum(newType)}, nil
	}

	if c.Type_.Kind.IsString() && newType.Kind.IsString() && c.Type_.Compression != newType.Compression {
		if newType.Compression != types.NONE {
			decoded, err := c.doCast(c.Type_.Decompressed())
			if err != nil {
				return nil, err
			}
			if !types.IsCastable(decoded.Type_, newType) {
				return nil, types.ErrNotCastable.New(decoded.Type_.Kind, newType.Kind)
			}
			return &UOper{Optype: Cast, Type_: newType, Operand: decoded}, nil
		}
		// Decompressing to NONE: every compression-differs case wraps in a
		// UOper(CAST) rather than eagerly re-tagging, so the dictionary-
		// encoded operand survives underneath and a later re-encode back to
		// the same dictionary can short-circuit via uoperCastShortCircuit.
		return &UOper{Optype: Cast, Type_: newType, Operand: c}, nil
	}

	return c.doCast(newType)
}

// doCast implements spec §4.3.2's do_cast switch: the actual Datum
// rewrite for every legal (source kind, target kind) pair. An unhandled
// combination is a CastError.
func (c *Constant) doCast(newType types.TypeInfo) (*Constant, error) {
	from := c.Type_

	switch {
	case (from.Kind.IsNumeric() || from.Kind == types.BOOL) && (newType.Kind.IsNumeric() || newType.Kind == types.BOOL):
		return &Constant{Type_: newType, Value: castNumber(c.Value, from, newType)}, nil

	case from.Kind == types.TIMESTAMP && (newType.Kind.IsNumeric() || newType.Kind == types.BOOL):
		return &Constant{Type_: newType, Value: castNumber(types.Datum{I64: c.Value.TimeVal}, types.TypeInfo{Kind: types.BIGINT}, newType)}, nil

	case from.Kind.IsString() && newType.Kind.IsString():
		s := c.Value.Str
		if (newType.Kind == types.CHAR || newType.Kind == types.VARCHAR) && newType.Dimension > 0 && int32(len([]rune(s))) > newType.Dimension {
			s = string([]rune(s)[:newType.Dimension])
		}
		return &Constant{Type_: newType, Value: types.StringDatum(s)}, nil

	case from.Kind.IsString() && !newType.Kind.IsString():
		return nil, types.ErrNotCastable.New(from.Kind, newType.Kind)

	case !from.Kind.IsString() && newType.Kind.IsString():
		s := formatDatum(c.Value, from)
		if (newType.Kind == types.CHAR || newType.Kind == types.VARCHAR) && newType.Dimension > 0 && int32(len([]rune(s))) > newType.Dimension {
			s = string([]rune(s)[:newType.Dimension])
		}
		return &Constant{Type_: newType, Value: types.StringDatum(s)}, nil

	default:
		return nil, types.ErrNotCastable.New(from.Kind, newType.Kind)
	}
}

// castNumber performs the C-style truncating numeric conversion of spec
// §4.3.2: integer<->integer truncates, NUMERIC/DECIMAL targets multiply
// the mantissa by 10^scale, NUMERIC/DECIMAL sources divide by 10^scale
// before narrowing further. The intermediate value is carried as an exact
// shopspring/decimal rather than a float64, so a BIGINT->NUMERIC(38,10)
// round trip never loses mantissa digits to binary-float rounding the way
// a float64 intermediate would on wide scales.
func castNumber(v types.Datum, from, to types.TypeInfo) types.Datum {
	d := toDecimal(v, from)

	switch to.Kind {
	case types.BOOL:
		return types.BoolDatum(!d.IsZero())
	case types.SMALLINT:
		return types.I16Datum(int16(d.IntPart()))
	case types.INT:
		return types.I32Datum(int32(d.IntPart()))
	case types.BIGINT:
		return types.I64Datum(d.IntPart())
	case types.NUMERIC, types.DECIMAL:
		return types.I64Datum(d.Shift(int32(to.Scale)).IntPart())
	case types.FLOAT:
		f, _ := d.Float64()
		return types.F32Datum(float32(f))
	case types.DOUBLE:
		f, _ := d.Float64()
		return types.F64Datum(f)
	default:
		return types.I64Datum(d.IntPart())
	}
}

// toDecimal reads v's field according to t.Kind and produces the exact
// decimal.Decimal value it represents, un-scaling a NUMERIC/DECIMAL
// mantissa by its declared scale.
func toDecimal(v types.Datum, t types.TypeInfo) decimal.Decimal {
	switch t.Kind {
	case types.BOOL:
		return decimal.NewFromInt(int64(v.Bool))
	case types.SMALLINT:
		return decimal.NewFromInt(int64(v.I16))
	case types.INT:
		return decimal.NewFromInt(int64(v.I32))
	case types.BIGINT:
		return decimal.NewFromInt(v.I64)
	case types.NUMERIC, types.DECIMAL:
		return decimal.NewFromInt(v.I64).Shift(-int32(t.Scale))
	case types.FLOAT:
		return decimal.NewFromFloat(float64(v.F32))
	case types.DOUBLE:
		return decimal.NewFromFloat(v.F64)
	default:
		return decimal.Zero
	}
}

// formatDatum implements the non-string->string half of do_cast via a
// plain strconv formatting (the external DatumToString codec, spec §6, is
// the collaborator used when a catalog-aware format is required; this
// local formatter covers the codec-free constant-folding path).
func formatDatum(v types.Datum, t types.TypeInfo) string {
	switch t.Kind {
	case types.BOOL:
		if v.Bool != 0 {
			return "true"
		}
		return "false"
	case types.SMALLINT:
		return strconv.FormatInt(int64(v.I16), 10)
	case types.INT:
		return strconv.FormatInt(int64(v.I32), 10)
	case types.BIGINT:
		return strconv.FormatInt(v.I64, 10)
	case types.NUMERIC, types.DECIMAL:
		return decimal.NewFromInt(v.I64).Shift(-int32(t.Scale)).StringFixed(int32(t.Scale))
	case types.FLOAT:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case types.DOUBLE:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case types.TIME, types.TIMESTAMP, types.DATE:
		return strconv.FormatInt(v.TimeVal, 10)
	default:
		return ""
	}
}
