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

import "github.com/cragdb/sqlanalyzer/sql/types"

// AnalyzeTypeInfo implements spec §4.1's analyze_type_info: given a
// BinOper's operator and its two operand types, it returns the operator's
// result type and the (possibly promoted) operand types the caller must
// apply via AddCast before building the BinOper node.
func AnalyzeTypeInfo(op BinOperType, l, r types.TypeInfo) (result, lOut, rOut types.TypeInfo, err error) {
	switch {
	case op.IsLogic():
		if l.Kind != types.BOOL || r.Kind != types.BOOL {
			return types.TypeInfo{}, l, r, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
		}
		return types.TypeInfo{Kind: types.BOOL}, l, r, nil

	case op.IsComparison():
		lOut, rOut, err = promoteForComparison(l, r)
		if err != nil {
			return types.TypeInfo{}, l, r, err
		}
		return types.TypeInfo{Kind: types.BOOL, NotNull: l.NotNull && r.NotNull}, lOut, rOut, nil

	case op.IsArithmetic():
		if !l.Kind.IsNumeric() || !r.Kind.IsNumeric() {
			return types.TypeInfo{}, l, r, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
		}
		if op == Modulo && (!l.Kind.IsInteger() || !r.Kind.IsInteger()) {
			return types.TypeInfo{}, l, r, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
		}
		common := types.CommonNumericType(l, r)
		common.NotNull = l.NotNull && r.NotNull
		return common, common, common, nil
	}

	return types.TypeInfo{}, l, r, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
}

// promoteForComparison implements the per-category comparison promotion
// rules of spec §4.1. When l and r are the identical type (kind, dimension,
// and scale all match), no promotion is needed. A same-kind pair that
// differs in dimension/scale (e.g. TIMESTAMP(0) vs TIMESTAMP(3), or
// NUMERIC(10,2) vs NUMERIC(12,4)) still falls through to the per-category
// promotion below so both sides are coerced to the common type.
func promoteForComparison(l, r types.TypeInfo) (types.TypeInfo, types.TypeInfo, error) {
	if l.Equals(r) {
		return l, r, nil
	}

	switch {
	case l.Kind.IsNumeric() && r.Kind.IsNumeric():
		common := types.CommonNumericType(l, r)
		common.NotNull = l.NotNull
		lOut := common
		common.NotNull = r.NotNull
		rOut := common
		return lOut, rOut, nil

	case l.Kind.IsTemporal() && r.Kind.IsTemporal():
		t, err := commonTemporalType(l, r)
		if err != nil {
			return types.TypeInfo{}, types.TypeInfo{}, err
		}
		return t, t, nil

	case l.Kind.IsString() && r.Kind.IsTemporal():
		return r, r, nil
	case l.Kind.IsTemporal() && r.Kind.IsString():
		return l, l, nil

	case l.Kind.IsString() && r.Kind.IsString():
		return l, r, nil

	default:
		return types.TypeInfo{}, types.TypeInfo{}, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
	}
}

// commonTemporalType implements the legal TIME/TIMESTAMP/DATE comparison
// pairs of spec §4.1. Any other mix (TIME vs TIMESTAMP, TIME vs DATE) is a
// TypeError.
func commonTemporalType(l, r types.TypeInfo) (types.TypeInfo, error) {
	switch {
	case l.Kind == types.TIMESTAMP && r.Kind == types.TIMESTAMP:
		dim := l.Dimension
		if r.Dimension > dim {
			dim = r.Dimension
		}
		return types.TypeInfo{Kind: types.TIMESTAMP, Dimension: dim}, nil
	case (l.Kind == types.TIMESTAMP && r.Kind == types.DATE) || (l.Kind == types.DATE && r.Kind == types.TIMESTAMP):
		return types.TypeInfo{Kind: types.TIMESTAMP}, nil
	case l.Kind == types.DATE && r.Kind == types.DATE:
		return types.TypeInfo{Kind: types.DATE}, nil
	case l.Kind == types.TIME && r.Kind == types.TIME:
		dim := l.Dimension
		if r.Dimension > dim {
			dim = r.Dimension
		}
		return types.TypeInfo{Kind: types.TIME, Dimension: dim}, nil
	default:
		return types.TypeInfo{}, types.ErrIncompatibleTypes.New(l.Kind, r.Kind)
	}
}
