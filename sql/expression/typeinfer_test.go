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
	"testing"

	"github.com/cragdb/sqlanalyzer/sql/types"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTypeInfoComparison(t *testing.T) {
	result, lOut, rOut, err := AnalyzeTypeInfo(Eq, types.TypeInfo{Kind: types.SMALLINT}, types.TypeInfo{Kind: types.BIGINT})
	require.NoError(t, err)
	require.Equal(t, types.Kind(types.BOOL), result.Kind)
	require.Equal(t, types.Kind(types.BIGINT), lOut.Kind)
	require.Equal(t, types.Kind(types.BIGINT), rOut.Kind)
}

func TestAnalyzeTypeInfoArithmeticRejectsNonNumeric(t *testing.T) {
	_, _, _, err := AnalyzeTypeInfo(Plus, types.TypeInfo{Kind: types.VARCHAR}, types.TypeInfo{Kind: types.INT})
	require.Error(t, err)
}

func TestAnalyzeTypeInfoModuloRejectsFloat(t *testing.T) {
	_, _, _, err := AnalyzeTypeInfo(Modulo, types.TypeInfo{Kind: types.FLOAT}, types.TypeInfo{Kind: types.INT})
	require.Error(t, err)
}

func TestAnalyzeTypeInfoLogicRequiresBool(t *testing.T) {
	_, _, _, err := AnalyzeTypeInfo(And, types.TypeInfo{Kind: types.INT}, types.TypeInfo{Kind: types.BOOL})
	require.Error(t, err)
}

func TestCommonTemporalTypeLegalPairs(t *testing.T) {
	result, _, _, err := AnalyzeTypeInfo(Eq, types.TypeInfo{Kind: types.TIMESTAMP}, types.TypeInfo{Kind: types.DATE})
	require.NoError(t, err)
	require.Equal(t, types.Kind(types.BOOL), result.Kind)
}

func TestCommonTemporalTypeIllegalPairErrors(t *testing.T) {
	_, _, _, err := AnalyzeTypeInfo(Eq, types.TypeInfo{Kind: types.TIME}, types.TypeInfo{Kind: types.TIMESTAMP})
	require.Error(t, err)
}

func TestPromoteForComparisonSameKindDifferentDimensionCoercesBoth(t *testing.T) {
	_, lOut, rOut, err := AnalyzeTypeInfo(Eq,
		types.TypeInfo{Kind: types.TIMESTAMP, Dimension: 0},
		types.TypeInfo{Kind: types.TIMESTAMP, Dimension: 3})
	require.NoError(t, err)
	require.EqualValues(t, 3, lOut.Dimension)
	require.EqualValues(t, 3, rOut.Dimension)
}

func TestPromoteForComparisonSameKindDifferentScaleCoercesBoth(t *testing.T) {
	_, lOut, rOut, err := AnalyzeTypeInfo(Eq,
		types.TypeInfo{Kind: types.NUMERIC, Dimension: 10, Scale: 2},
		types.TypeInfo{Kind: types.NUMERIC, Dimension: 12, Scale: 4})
	require.NoError(t, err)
	require.Equal(t, lOut, rOut)
	require.EqualValues(t, types.NUMERIC, lOut.Kind)
}
