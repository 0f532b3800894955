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

func sampleExprs(t *testing.T) []Expr {
	t.Helper()
	col := NewBoundColumnVar(types.TypeInfo{Kind: types.INT}, 1, 2, 0)
	cst := NewConstant(types.TypeInfo{Kind: types.INT}, types.I32Datum(42))
	bo := NewBinOper(Eq, types.TypeInfo{Kind: types.BOOL}, col, cst)
	uo := NewUOper(Not, types.TypeInfo{Kind: types.BOOL}, bo)
	iv := NewInValues(col, []Expr{cst, cst})
	cl := NewCharLengthExpr(cst, true)
	lk := NewLikeExpr(cst, cst, nil, false, true)
	agg := NewAggExpr(Sum, types.TypeInfo{Kind: types.BIGINT}, col, false)
	ce := NewCaseExpr(types.TypeInfo{Kind: types.INT}, []WhenThen{{When: bo, Then: cst}}, cst)
	ex := NewExtractExpr(Year, cst)
	dt := NewDatetruncExpr(Month, cst)
	return []Expr{col, cst, bo, uo, iv, cl, lk, agg, ce, ex, dt}
}

func TestDeepCopyInvolution(t *testing.T) {
	for _, e := range sampleExprs(t) {
		cp, err := e.DeepCopy()
		require.NoError(t, err)
		require.True(t, e.Equals(cp), "deep copy of %s must equal original", e.String())
		require.Equal(t, e.String(), cp.String())
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	col := NewBoundColumnVar(types.TypeInfo{Kind: types.INT}, 1, 2, 0)
	cp, err := col.DeepCopy()
	require.NoError(t, err)
	cv := cp.(*ColumnVar)
	cv.ColumnID = 99
	require.EqualValues(t, 2, col.ColumnID)
}

func TestSubqueryDeepCopyAndEqualsUnsupported(t *testing.T) {
	sq := NewSubquery(stringTree("(q)"), types.TypeInfo{Kind: types.INT})
	_, err := sq.DeepCopy()
	require.Error(t, err)
	require.False(t, sq.Equals(sq))
}

type stringTree string

func (s stringTree) String() string { return string(s) }
