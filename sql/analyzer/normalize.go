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

import "github.com/cragdb/sqlanalyzer/sql/expression"

// columnRteIdx reports the rte_idx a bound ColumnVar or Var carries, for
// the column/constant recognition below. Only a node that is exactly one
// of those two kinds (not wrapped in a UOper(CAST) or anything else)
// counts as "the column side" of a simple predicate.
func columnRteIdx(e expression.Expr) (int32, bool) {
	switch v := e.(type) {
	case *expression.ColumnVar:
		return v.RteIdx, true
	case *expression.Var:
		return v.RteIdx, true
	default:
		return 0, false
	}
}

func isConstant(e expression.Expr) bool {
	_, ok := e.(*expression.Constant)
	return ok
}

// NormalizeSimplePredicate implements spec §4.5: a scan filter of the form
// "column OP constant" or "constant OP column" is rewritten to the
// canonical "column OP' constant" form (flipping the operator via
// CommuteComparison when the column started on the right), and the
// referenced rte_idx is returned alongside it. Anything else — both sides
// columns, both sides constants, a non-ONE qualifier, a non-comparison
// operator — is not a simple predicate and is returned unchanged with
// rte_idx -1.
//
// Applying NormalizeSimplePredicate a second time to its own output is a
// no-op: the column is already on the left, so the column/constant switch
// below takes the first case and returns e unchanged.
func NormalizeSimplePredicate(e expression.Expr) (expression.Expr, int32) {
	b, ok := e.(*expression.BinOper)
	if !ok || !b.Optype.IsComparison() || b.Qualifier != expression.QualOne {
		return e, -1
	}

	lRte, lIsCol := columnRteIdx(b.Left)
	rRte, rIsCol := columnRteIdx(b.Right)
	lIsConst := isConstant(b.Left)
	rIsConst := isConstant(b.Right)

	switch {
	case lIsCol && rIsConst:
		return e, lRte
	case rIsCol && lIsConst:
		flipped := &expression.BinOper{
			Optype:    expression.CommuteComparison(b.Optype),
			Qualifier: b.Qualifier,
			Type_:     b.Type_,
			Left:      b.Right,
			Right:     b.Left,
		}
		return flipped, rRte
	default:
		return e, -1
	}
}
