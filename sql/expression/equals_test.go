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

func TestEqualsReflexiveSymmetricTransitive(t *testing.T) {
	for _, e := range sampleExprs(t) {
		a, err := e.DeepCopy()
		require.NoError(t, err)
		b, err := e.DeepCopy()
		require.NoError(t, err)
		c, err := e.DeepCopy()
		require.NoError(t, err)

		require.True(t, a.Equals(a), "reflexive")
		require.Equal(t, a.Equals(b), b.Equals(a), "symmetric")
		if a.Equals(b) && b.Equals(c) {
			require.True(t, a.Equals(c), "transitive")
		}
	}
}

func TestColumnVarCrossEqualsVar(t *testing.T) {
	t1 := types.TypeInfo{Kind: types.INT}
	cv := NewBoundColumnVar(t1, 5, 6, 2)
	v := NewVar(t1, 5, 6, 2, InputOuter, 1)

	require.True(t, cv.Equals(v))
	require.True(t, v.Equals(cv))
}

func TestUnboundColumnVarNeverEqualsVar(t *testing.T) {
	t1 := types.TypeInfo{Kind: types.INT}
	cv := NewColumnVar(t1, 5, 6)
	v := NewVar(t1, 5, 6, -1, InputOuter, 1)

	require.False(t, cv.Equals(v))
	require.False(t, v.Equals(cv))
}
