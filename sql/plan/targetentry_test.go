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

package plan

import (
	"testing"

	"github.com/cragdb/sqlanalyzer/sql/expression"
	"github.com/cragdb/sqlanalyzer/sql/types"
	"github.com/stretchr/testify/require"
)

func TestTargetEntryDeepCopyIndependence(t *testing.T) {
	col := expression.NewBoundColumnVar(types.TypeInfo{Kind: types.INT}, 1, 1, 0)
	te := NewTargetEntry("a", col, false)

	cp, err := te.DeepCopy()
	require.NoError(t, err)
	require.True(t, te.Expr.Equals(cp.Expr))

	cp.Expr.(*expression.ColumnVar).ColumnID = 99
	require.EqualValues(t, 1, te.Expr.(*expression.ColumnVar).ColumnID)
}

func TestNewOrderEntry(t *testing.T) {
	oe := NewOrderEntry(2, true, false)
	require.EqualValues(t, 2, oe.TleNo)
	require.True(t, oe.IsDesc)
	require.False(t, oe.NullsFirst)
}
