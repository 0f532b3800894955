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
	"github.com/cragdb/sqlanalyzer/sql/expression"
	"github.com/cragdb/sqlanalyzer/sql/plan"
)

// findTargetEntry returns the 0-based index of the targetlist entry whose
// expression is a ColumnVar/Var with the same (table, column) coordinates
// as col, or -1 if none matches.
func findTargetEntry(tlist []*plan.TargetEntry, col *expression.ColumnVar) int {
	for i, te := range tlist {
		switch v := te.Expr.(type) {
		case *expression.ColumnVar:
			if v.TableID == col.TableID && v.ColumnID == col.ColumnID {
				return i
			}
		case *expression.Var:
			if v.TableID == col.TableID && v.ColumnID == col.ColumnID {
				return i
			}
		}
	}
	return -1
}

// findStructuralMatch returns the 0-based index of the targetlist entry
// whose expression is structurally equal to agg (spec §4.6). Each AggExpr
// entry's StructuralHash is compared with agg's first, and the exact Equals
// check runs only on a hash match; every entry is still hashed on each
// call.
func findStructuralMatch(tlist []*plan.TargetEntry, agg *expression.AggExpr) (int, error) {
	wantHash, err := agg.StructuralHash()
	if err != nil {
		return -1, err
	}
	for i, te := range tlist {
		cand, ok := te.Expr.(*expression.AggExpr)
		if !ok {
			continue
		}
		gotHash, err := cand.StructuralHash()
		if err != nil {
			return -1, err
		}
		if gotHash == wantHash && cand.Equals(agg) {
			return i, nil
		}
	}
	return -1, nil
}

// RewriteWithTargetlist implements spec §4.6's rewrite_with_targetlist:
// every ColumnVar and AggExpr in e is replaced by a deep copy of the
// matching targetlist entry's own expression (by column coordinates for a
// ColumnVar, by structural equality for an AggExpr). A ColumnVar inside an
// aggregate argument is not looked up on its own: the enclosing AggExpr is
// matched whole. A Subquery is an ErrUnsupportedSubquery; every other node
// kind passes through with its children rewritten. A ColumnVar or AggExpr
// with no match in tlist is an ErrInternalRewriteFailure: the caller is
// expected to have guaranteed coverage (e.g. via GROUP BY / SELECT list
// validation) before invoking this rewrite.
func RewriteWithTargetlist(e expression.Expr, tlist []*plan.TargetEntry) (expression.Expr, error) {
	outside := map[expression.Expr]bool{}
	expression.Walk(e, func(n expression.Expr) bool {
		_, isAgg := n.(*expression.AggExpr)
		outside[n] = !isAgg
		return !isAgg
	})
	return expression.TransformUp(e, func(n expression.Expr) (expression.Expr, error) {
		switch v := n.(type) {
		case *expression.Subquery:
			return nil, expression.ErrUnsupportedSubquery.New("rewrite_with_targetlist")

		case *expression.ColumnVar:
			if !outside[v] {
				return n, nil
			}
			idx := findTargetEntry(tlist, v)
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			return tlist[idx].Expr.DeepCopy()

		case *expression.AggExpr:
			idx, err := findStructuralMatch(tlist, v)
			if err != nil {
				return nil, err
			}
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			return tlist[idx].Expr.DeepCopy()

		default:
			return n, nil
		}
	})
}

// RewriteWithChildTargetlist implements spec §4.6's
// rewrite_with_child_targetlist: every ColumnVar and AggExpr in e that
// matches an entry of childTlist is replaced with a Var of kind which
// pointing at that entry's 1-based slot (Varno), instead of copying the
// entry's expression wholesale — this is how a parent plan node addresses
// its child's already-projected output row. A match failure is the same
// ErrInternalRewriteFailure as RewriteWithTargetlist, and a Subquery is an
// ErrUnsupportedSubquery.
func RewriteWithChildTargetlist(e expression.Expr, childTlist []*plan.TargetEntry, which expression.WhichRow) (expression.Expr, error) {
	return expression.TransformUp(e, func(n expression.Expr) (expression.Expr, error) {
		switch v := n.(type) {
		case *expression.Subquery:
			return nil, expression.ErrUnsupportedSubquery.New("rewrite_with_child_targetlist")

		case *expression.ColumnVar:
			idx := findTargetEntry(childTlist, v)
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			return expression.NewVar(v.Type_, v.TableID, v.ColumnID, v.RteIdx, which, int32(idx+1)), nil

		case *expression.AggExpr:
			idx, err := findStructuralMatch(childTlist, v)
			if err != nil {
				return nil, err
			}
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			matched := childTlist[idx].Expr
			cv, ok := asColumnCoordinates(matched)
			if !ok {
				// The matched targetlist entry is itself the AggExpr (no
				// further column coordinates to carry) — varno is all the
				// addressing information available.
				return expression.NewVar(v.Type_, 0, 0, -1, which, int32(idx+1)), nil
			}
			return expression.NewVar(v.Type_, cv.TableID, cv.ColumnID, cv.RteIdx, which, int32(idx+1)), nil

		default:
			return n, nil
		}
	})
}

func asColumnCoordinates(e expression.Expr) (*expression.ColumnVar, bool) {
	switch v := e.(type) {
	case *expression.ColumnVar:
		return v, true
	case *expression.Var:
		return &v.ColumnVar, true
	default:
		return nil, false
	}
}

// RewriteAggToVar implements spec §4.6's rewrite_agg_to_var: the shape a
// HAVING clause or an ORDER BY expression takes after the aggregation step
// has already computed aggTlist. Every AggExpr call is redirected at its
// computed output slot, and every ColumnVar referencing a GROUP BY key that
// also survived into aggTlist (unaggregated) is likewise redirected at its
// slot — both become a Var of kind which pointing at the matching 1-based
// Varno. A ColumnVar inside an aggregate argument is not looked up on its
// own: the enclosing AggExpr is matched whole. A ColumnVar or AggExpr
// absent from aggTlist is an ErrInternalRewriteFailure: the caller is
// expected to have guaranteed coverage via GROUP BY validation before
// invoking this rewrite. A Subquery is an ErrUnsupportedSubquery.
func RewriteAggToVar(e expression.Expr, aggTlist []*plan.TargetEntry, which expression.WhichRow) (expression.Expr, error) {
	outside := map[expression.Expr]bool{}
	expression.Walk(e, func(n expression.Expr) bool {
		_, isAgg := n.(*expression.AggExpr)
		outside[n] = !isAgg
		return !isAgg
	})
	return expression.TransformUp(e, func(n expression.Expr) (expression.Expr, error) {
		switch v := n.(type) {
		case *expression.Subquery:
			return nil, expression.ErrUnsupportedSubquery.New("rewrite_agg_to_var")

		case *expression.AggExpr:
			idx, err := findStructuralMatch(aggTlist, v)
			if err != nil {
				return nil, err
			}
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			return expression.NewVar(v.Type_, 0, 0, -1, which, int32(idx+1)), nil

		case *expression.ColumnVar:
			if !outside[v] {
				return n, nil
			}
			idx := findTargetEntry(aggTlist, v)
			if idx < 0 {
				return nil, ErrInternalRewriteFailure.New(v.String())
			}
			return expression.NewVar(v.Type_, v.TableID, v.ColumnID, v.RteIdx, which, int32(idx+1)), nil

		default:
			return n, nil
		}
	})
}
