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

func TestGetDomainSimpleLeaf(t *testing.T) {
	cst := NewConstant(types.TypeInfo{Kind: types.INT}, types.I32Datum(1))
	require.Equal(t, []Expr{cst}, GetDomain(cst))
}

func TestGetDomainCaseOverLeaves(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	when := NewConstant(types.TypeInfo{Kind: types.BOOL}, types.BoolDatum(true))
	then := NewConstant(intT, types.I32Datum(1))
	elseExpr := NewBoundColumnVar(intT, 1, 1, 0)
	ce := NewCaseExpr(intT, []WhenThen{{When: when, Then: then}}, elseExpr)

	domain := GetDomain(ce)
	require.Len(t, domain, 2)
}

func TestGetDomainUnknownWhenBranchOpaque(t *testing.T) {
	intT := types.TypeInfo{Kind: types.INT}
	when := NewConstant(types.TypeInfo{Kind: types.BOOL}, types.BoolDatum(true))
	col := NewBoundColumnVar(intT, 1, 1, 0)
	then := NewBinOper(Plus, intT, col, col)
	ce := NewCaseExpr(intT, []WhenThen{{When: when, Then: then}}, nil)

	require.Empty(t, GetDomain(ce))
}
