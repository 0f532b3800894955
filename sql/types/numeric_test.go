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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonNumericTypeCommutative(t *testing.T) {
	pairs := []struct {
		a, b TypeInfo
	}{
		{TypeInfo{Kind: SMALLINT}, TypeInfo{Kind: INT}},
		{TypeInfo{Kind: SMALLINT}, TypeInfo{Kind: BIGINT}},
		{TypeInfo{Kind: INT}, TypeInfo{Kind: BIGINT}},
		{TypeInfo{Kind: FLOAT}, TypeInfo{Kind: DOUBLE}},
		{TypeInfo{Kind: SMALLINT}, TypeInfo{Kind: NUMERIC, Dimension: 10, Scale: 2}},
		{TypeInfo{Kind: INT}, TypeInfo{Kind: DECIMAL, Dimension: 12, Scale: 4}},
		{TypeInfo{Kind: BIGINT}, TypeInfo{Kind: NUMERIC, Dimension: 19, Scale: 0}},
		{TypeInfo{Kind: NUMERIC, Dimension: 10, Scale: 2}, TypeInfo{Kind: DECIMAL, Dimension: 12, Scale: 4}},
		{TypeInfo{Kind: INT}, TypeInfo{Kind: INT}},
	}
	for _, p := range pairs {
		require.Equal(t, CommonNumericType(p.a, p.b), CommonNumericType(p.b, p.a))
	}
}

func TestCommonNumericTypeWidening(t *testing.T) {
	require.Equal(t, TypeInfo{Kind: INT}, CommonNumericType(TypeInfo{Kind: SMALLINT}, TypeInfo{Kind: INT}))
	require.Equal(t, TypeInfo{Kind: BIGINT}, CommonNumericType(TypeInfo{Kind: INT}, TypeInfo{Kind: BIGINT}))
	require.Equal(t, TypeInfo{Kind: DOUBLE}, CommonNumericType(TypeInfo{Kind: FLOAT}, TypeInfo{Kind: DOUBLE}))
}

func TestCommonNumericTypeSameKindPicksWiderDimensionAndScale(t *testing.T) {
	a := TypeInfo{Kind: NUMERIC, Dimension: 10, Scale: 2}
	b := TypeInfo{Kind: NUMERIC, Dimension: 14, Scale: 4}
	got := CommonNumericType(a, b)
	require.Equal(t, Kind(NUMERIC), got.Kind)
	require.EqualValues(t, 14, got.Dimension)
	require.EqualValues(t, 4, got.Scale)
}

func TestCommonStringTypeDictionaryIdentity(t *testing.T) {
	a := TypeInfo{Kind: VARCHAR, Compression: DICT, CompParam: 7}
	b := TypeInfo{Kind: VARCHAR, Compression: DICT, CompParam: 7}
	got := CommonStringType(a, b)
	require.Equal(t, DICT, got.Compression)
	require.EqualValues(t, 7, got.CompParam)
}

func TestCommonStringTypeMixedCompressionDecodes(t *testing.T) {
	a := TypeInfo{Kind: VARCHAR, Compression: DICT, CompParam: 7}
	b := TypeInfo{Kind: VARCHAR, Compression: NONE}
	got := CommonStringType(a, b)
	require.Equal(t, NONE, got.Compression)
}

func TestCommonStringTypeTextWins(t *testing.T) {
	a := TypeInfo{Kind: VARCHAR, Dimension: 10}
	b := TypeInfo{Kind: TEXT}
	got := CommonStringType(a, b)
	require.Equal(t, Kind(TEXT), got.Kind)
}
