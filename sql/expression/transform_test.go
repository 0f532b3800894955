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

func TestTransformUpReplacesLeaves(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	c0 := NewBoundColumnVar(intT, 1, 1, 0)
	c1 := NewBoundColumnVar(intT, 1, 2, 0)
	bo := NewBinOper(Eq, types.TypeInfo{Kind: types.BOOL}, c0, c1)

	out, err := TransformUp(bo, func(n Expr) (Expr, error) {
		if cv, ok := n.(*ColumnVar); ok {
			return NewBoundColumnVar(cv.Type_, cv.TableID, cv.ColumnID+100, cv.RteIdx), nil
		}
		return n, nil
	})
	require.NoError(t, err)

	got := out.(*BinOper)
	require.EqualValues(t, 101, got.Left.(*ColumnVar).ColumnID)
	require.EqualValues(t, 102, got.Right.(*ColumnVar).ColumnID)
}

func TestTransformUpPropagatesError(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	c0 := NewBoundColumnVar(intT, 1, 1, 0)
	bo := NewUOper(Not, types.TypeInfo{Kind: types.BOOL}, c0)

	_, err := TransformUp(bo, func(n Expr) (Expr, error) {
		if _, ok := n.(*ColumnVar); ok {
			return nil, ErrUnsupportedSubquery.New("test")
		}
		return n, nil
	})
	require.Error(t, err)
}

func TestTransformUpLeavesSubqueryOpaque(t *testing.T) {
	sq := NewSubquery(stringTree("(q)"), types.TypeInfo{Kind: types.INT})
	visited := 0
	out, err := TransformUp(sq, func(n Expr) (Expr, error) {
		visited++
		return n, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, visited)
	require.Same(t, sq, out.(*Subquery))
}
