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

func TestCheckGroupByAcceptsColumnInGroupList(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := NewBoundColumnVar(intT, 1, 1, 0)
	require.NoError(t, CheckGroupBy(col, []Expr{col}))
}

func TestCheckGroupByRejectsColumnNotInGroupList(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := NewBoundColumnVar(intT, 1, 1, 0)
	other := NewBoundColumnVar(intT, 1, 2, 0)
	require.Error(t, CheckGroupBy(col, []Expr{other}))
}

func TestCheckGroupByAcceptsColumnShieldedByAgg(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	col := NewBoundColumnVar(intT, 1, 1, 0)
	agg := NewAggExpr(Sum, types.TypeInfo{Kind: types.BIGINT}, col, false)
	require.NoError(t, CheckGroupBy(agg, nil))
}

func TestCheckGroupByRejectsNonGroupByVar(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	v := NewVar(intT, 1, 1, 0, InputOuter, 1)
	require.Error(t, CheckGroupBy(v, nil))
}

func TestCheckGroupByAcceptsGroupByVar(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	v := NewVar(intT, 1, 1, 0, GroupBy, 1)
	require.NoError(t, CheckGroupBy(v, nil))
}
