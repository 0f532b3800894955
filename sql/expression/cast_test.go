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

func TestAddCastNoopOnIdenticalType(t *testing.T) {
	cst := NewConstant(types.TypeInfo{Kind: types.INT}, types.I32Datum(7))
	out, err := AddCast(cst, types.TypeInfo{Kind: types.INT})
	require.NoError(t, err)
	require.Same(t, cst, out.(*Constant))
}

func TestAddCastIdempotent(t *testing.T) {
	cst := NewConstant(types.TypeInfo{Kind: types.INT}, types.I32Datum(7))
	target := types.TypeInfo{Kind: types.BIGINT}
	once, err := AddCast(cst, target)
	require.NoError(t, err)
	twice, err := AddCast(once, target)
	require.NoError(t, err)
	require.True(t, once.Equals(twice))
}

func TestConstantAddCastFoldsEagerly(t *testing.T) {
	cst := NewConstant(types.TypeInfo{Kind: types.INT}, types.I32Datum(7))
	out, err := cst.AddCast(types.TypeInfo{Kind: types.BIGINT})
	require.NoError(t, err)
	folded, ok := out.(*Constant)
	require.True(t, ok, "Constant.AddCast must fold, not wrap in UOper(CAST)")
	require.EqualValues(t, 7, folded.Value.I64)
}

func TestConstantAddCastNullPreservesNullSentinel(t *testing.T) {
	cst := NewNullConstant(types.TypeInfo{Kind: types.INT})
	out, err := cst.AddCast(types.TypeInfo{Kind: types.BIGINT})
	require.NoError(t, err)
	folded := out.(*Constant)
	require.True(t, folded.IsNull)
	require.Equal(t, types.NullBigint, folded.Value.I64)
}

func TestUOperCastRoundTripElision(t *testing.T) {
	dictType := types.TypeInfo{Kind: types.VARCHAR, Compression: types.DICT, CompParam: 3}
	col := NewBoundColumnVar(dictType, 1, 1, 0)

	decoded, err := AddCast(col, dictType.Decompressed())
	require.NoError(t, err)

	reencoded, err := AddCast(decoded, dictType)
	require.NoError(t, err)
	require.Same(t, col, reencoded.(*ColumnVar))
}

func TestAddCastRejectsTransientOnNonLiteral(t *testing.T) {
	unencoded := types.TypeInfo{Kind: types.VARCHAR}
	col := NewBoundColumnVar(unencoded, 1, 1, 0)
	transientTarget := types.TypeInfo{Kind: types.VARCHAR, Compression: types.DICT, CompParam: types.TransientDictID}

	_, err := AddCast(col, transientTarget)
	require.Error(t, err)
}

func TestCaseExprAddCastDistributesOverBranches(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	bigT := types.TypeInfo{Kind: types.BIGINT}
	when := NewConstant(types.TypeInfo{Kind: types.BOOL}, types.BoolDatum(true))
	then := NewConstant(intT, types.I32Datum(5))
	elseExpr := NewConstant(intT, types.I32Datum(6))
	ce := NewCaseExpr(intT, []WhenThen{{When: when, Then: then}}, elseExpr)

	out, err := ce.AddCast(bigT)
	require.NoError(t, err)
	casted := out.(*CaseExpr)
	require.True(t, casted.Type_.Equals(bigT))
	require.True(t, casted.Branches[0].Then.TypeInfo().Equals(bigT))
	require.True(t, casted.Else.TypeInfo().Equals(bigT))
}

func TestDecompressNoopWhenAlreadyUncompressed(t *testing.T) {
	col := NewBoundColumnVar(types.TypeInfo{Kind: types.VARCHAR}, 1, 1, 0)
	out, err := Decompress(col)
	require.NoError(t, err)
	require.Same(t, col, out.(*ColumnVar))
}
