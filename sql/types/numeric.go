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

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// isPair reports whether {a.Kind, b.Kind} == {k1, k2} (unordered).
func isPair(a, b TypeInfo, k1, k2 Kind) bool {
	return (a.Kind == k1 && b.Kind == k2) || (a.Kind == k2 && b.Kind == k1)
}

func involves(a, b TypeInfo, k Kind) bool {
	return a.Kind == k || b.Kind == k
}

// CommonNumericType implements the numeric promotion lattice of spec
// §4.1. Precondition: both a and b are numeric kinds (IsNumeric). The
// lattice is symmetric (CommonNumericType(a, b) == CommonNumericType(b,
// a)); scale is always preserved from whichever operand is NUMERIC/DECIMAL
// when exactly one side is. The result always has NotNull = false; the
// caller refines it from the operand not-null flags.
func CommonNumericType(a, b TypeInfo) TypeInfo {
	if a.Kind == b.Kind {
		return TypeInfo{
			Kind:      a.Kind,
			Dimension: maxI32(a.Dimension, b.Dimension),
			Scale:     maxI32(a.Scale, b.Scale),
		}
	}

	switch {
	case isPair(a, b, SMALLINT, INT):
		return TypeInfo{Kind: INT}
	case isPair(a, b, SMALLINT, BIGINT):
		return TypeInfo{Kind: BIGINT}
	case isPair(a, b, INT, BIGINT):
		return TypeInfo{Kind: BIGINT}

	case involves(a, b, DOUBLE):
		return TypeInfo{Kind: DOUBLE}
	case involves(a, b, FLOAT):
		return TypeInfo{Kind: FLOAT}

	case isPair(a, b, SMALLINT, NUMERIC), isPair(a, b, SMALLINT, DECIMAL):
		var num TypeInfo
		if a.Kind == NUMERIC || a.Kind == DECIMAL {
			num = a
		} else {
			num = b
		}
		return TypeInfo{Kind: NUMERIC, Dimension: maxI32(5+num.Scale, num.Dimension), Scale: num.Scale}

	case isPair(a, b, INT, NUMERIC), isPair(a, b, INT, DECIMAL):
		var num TypeInfo
		if a.Kind == NUMERIC || a.Kind == DECIMAL {
			num = a
		} else {
			num = b
		}
		return TypeInfo{Kind: NUMERIC, Dimension: maxI32(minI32(19, 10+num.Scale), num.Dimension), Scale: num.Scale}

	case isPair(a, b, BIGINT, NUMERIC), isPair(a, b, BIGINT, DECIMAL):
		var num TypeInfo
		if a.Kind == NUMERIC || a.Kind == DECIMAL {
			num = a
		} else {
			num = b
		}
		return TypeInfo{Kind: NUMERIC, Dimension: 19, Scale: num.Scale}

	case isPair(a, b, NUMERIC, DECIMAL):
		scale := maxI32(a.Scale, b.Scale)
		dim := maxI32(a.Dimension-a.Scale, b.Dimension-b.Scale) + scale
		return TypeInfo{Kind: NUMERIC, Dimension: dim, Scale: scale}
	}

	// Unreachable given IsNumeric precondition and the closed kind set.
	panic("types: CommonNumericType called with non-numeric or unhandled kinds " + a.Kind.String() + ", " + b.Kind.String())
}

// CommonStringType implements the string common-type rule of spec §4.1.
// Precondition: both a and b are string kinds (IsString).
func CommonStringType(a, b TypeInfo) TypeInfo {
	var result TypeInfo
	switch {
	case a.Compression == DICT && b.Compression == DICT && SameDictionary(a, b):
		result.Compression = DICT
		result.CompParam = minI32(a.CompParam, b.CompParam)
	case a.Compression == DICT && b.Compression == NONE:
		result.Compression = NONE
		result.CompParam = a.CompParam
	case b.Compression == DICT && a.Compression == NONE:
		result.Compression = NONE
		result.CompParam = b.CompParam
	default:
		result.Compression = NONE
		result.CompParam = maxI32(a.CompParam, b.CompParam)
	}

	if a.Kind == TEXT || b.Kind == TEXT {
		result.Kind = TEXT
	} else {
		result.Kind = VARCHAR
		result.Dimension = maxI32(a.Dimension, b.Dimension)
	}
	return result
}
