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

package analyzer

import (
	"testing"

	"github.com/cragdb/sqlanalyzer/sql/expression"
	"github.com/cragdb/sqlanalyzer/sql/plan"
	"github.com/cragdb/sqlanalyzer/sql/types"
	"github.com/stretchr/testify/require"
)

func TestRewriteWithTargetlistReplacesColumnVar(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := expression.NewBoundColumnVar(intT, 1, 1, 0)
	tlist := []*plan.TargetEntry{
		plan.NewTargetEntry("a", expression.NewBoundColumnVar(intT, 1, 1, 0), false),
	}

	out, err := RewriteWithTargetlist(col, tlist)
	require.NoError(t, err)
	require.True(t, out.Equals(tlist[0].Expr))
}

func TestRewriteWithTargetlistPreservesType(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	boolT := types.TypeInfo{Kind: types.BOOL}
	colA := expression.NewBoundColumnVar(intT, 1, 1, 0)
	colB := expression.NewBoundColumnVar(intT, 1, 2, 0)
	pred := expression.NewBinOper(expression.Eq, boolT, colA, colB)

	tlist := []*plan.TargetEntry{
		plan.NewTargetEntry("a", expression.NewBoundColumnVar(intT, 1, 1, 0), false),
		plan.NewTargetEntry("b", expression.NewBoundColumnVar(intT, 1, 2, 0), false),
	}

	out, err := RewriteWithTargetlist(pred, tlist)
	require.NoError(t, err)
	require.True(t, out.TypeInfo().Equals(boolT))
}

func TestRewriteWithTargetlistFailsOnUnmatchedColumn(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := expression.NewBoundColumnVar(intT, 9, 9, 0)
	_, err := RewriteWithTargetlist(col, nil)
	require.Error(t, err)
}

func TestRewriteWithTargetlistReplacesMatchingAgg(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	bigT := types.TypeInfo{Kind: types.BIGINT}
	col := expression.NewBoundColumnVar(intT, 1, 1, 0)
	agg := expression.NewAggExpr(expression.Sum, bigT, col, false)

	target := expression.NewBoundColumnVar(intT, 1, 1, 0)
	tlist := []*plan.TargetEntry{
		plan.NewTargetEntry("sum_a", expression.NewAggExpr(expression.Sum, bigT, target, false), false),
	}

	out, err := RewriteWithTargetlist(agg, tlist)
	require.NoError(t, err)
	require.True(t, out.Equals(tlist[0].Expr))
}

func TestRewriteWithChildTargetlistProducesVar(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := expression.NewBoundColumnVar(intT, 1, 1, 0)
	childTlist := []*plan.TargetEntry{
		plan.NewTargetEntry("a", expression.NewBoundColumnVar(intT, 1, 1, 0), false),
	}

	out, err := RewriteWithChildTargetlist(col, childTlist, expression.InputOuter)
	require.NoError(t, err)
	v, ok := out.(*expression.Var)
	require.True(t, ok)
	require.EqualValues(t, 1, v.Varno)
	require.Equal(t, expression.InputOuter, v.Which)
}

func TestRewriteAggToVarRedirectsAggregate(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	bigT := types.TypeInfo{Kind: types.BIGINT}
	col := expression.NewBoundColumnVar(intT, 1, 1, 0)
	agg := expression.NewAggExpr(expression.Sum, bigT, col, false)

	aggTlist := []*plan.TargetEntry{
		plan.NewTargetEntry("sum_a", expression.NewAggExpr(expression.Sum, bigT, expression.NewBoundColumnVar(intT, 1, 1, 0), false), false),
	}

	havingGt := expression.NewBinOper(expression.Gt, types.TypeInfo{Kind: types.BOOL}, agg, expression.NewConstant(bigT, types.I64Datum(10)))

	out, err := RewriteAggToVar(havingGt, aggTlist, expression.Output)
	require.NoError(t, err)
	bo := out.(*expression.BinOper)
	v, ok := bo.Left.(*expression.Var)
	require.True(t, ok)
	require.EqualValues(t, 1, v.Varno)
}

func TestRewriteAggToVarFailsWithoutMatch(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	bigT := types.TypeInfo{Kind: types.BIGINT}
	agg := expression.NewAggExpr(expression.Max, bigT, expression.NewBoundColumnVar(intT, 1, 1, 0), false)

	_, err := RewriteAggToVar(agg, nil, expression.Output)
	require.Error(t, err)
}

func TestRewriteAggToVarRedirectsGroupByColumn(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := expression.NewBoundColumnVar(intT, 1, 1, 0)

	aggTlist := []*plan.TargetEntry{
		plan.NewTargetEntry("a", expression.NewBoundColumnVar(intT, 1, 1, 0), false),
	}

	out, err := RewriteAggToVar(col, aggTlist, expression.Output)
	require.NoError(t, err)
	v, ok := out.(*expression.Var)
	require.True(t, ok)
	require.EqualValues(t, 1, v.Varno)
	require.Equal(t, expression.Output, v.Which)
}

func TestRewriteAggToVarFailsOnUnmatchedColumn(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := expression.NewBoundColumnVar(intT, 9, 9, 0)

	_, err := RewriteAggToVar(col, nil, expression.Output)
	require.Error(t, err)
}
