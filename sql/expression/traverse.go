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

import "github.com/cespare/xxhash/v2"

// dedupKey returns an xxhash fingerprint of n's String() form, used to
// shortlist "have we already collected something equal to this" before
// falling back to the exact Equals check below. A large targetlist or
// WHERE clause can carry hundreds of ColumnVar references; hashing first
// keeps CollectColumnVar/FindExpr linear in the common case instead of
// quadratic in the number of already-collected nodes.
func dedupKey(n Expr) uint64 {
	return xxhash.Sum64String(n.String())
}

// Walk visits e and every descendant in pre-order, calling fn on each.
// Returning false from fn stops descent into that node's children (but
// does not stop the walk of siblings already queued); it mirrors the
// teacher corpus's sql.Inspect/plan.Inspect helpers (spec §9's
// supplemented generic traversal).
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children() {
		Walk(c, fn)
	}
}

// CollectRteIdx returns the set of all rte_idx values named by ColumnVar
// (and Var, via its embedded ColumnVar) descendants of e (spec §4.2).
func CollectRteIdx(e Expr) map[int32]struct{} {
	set := make(map[int32]struct{})
	Walk(e, func(n Expr) bool {
		if cv, ok := n.(*ColumnVar); ok {
			set[cv.RteIdx] = struct{}{}
		}
		if v, ok := n.(*Var); ok {
			set[v.RteIdx] = struct{}{}
		}
		return true
	})
	return set
}

// CollectColumnVar returns every distinct ColumnVar reachable from e, in
// visit order, deduplicated by Equals. When includeAgg is false, descent
// stops at AggExpr boundaries (spec §4.2): columns referenced only inside
// an aggregate argument are not collected.
func CollectColumnVar(e Expr, includeAgg bool) []*ColumnVar {
	var out []*ColumnVar
	seen := make(map[uint64][]*ColumnVar)
	var visit func(Expr)
	visit = func(n Expr) {
		if n == nil {
			return
		}
		if cv, ok := n.(*ColumnVar); ok {
			key := dedupKey(cv)
			for _, s := range seen[key] {
				if s.Equals(cv) {
					return
				}
			}
			seen[key] = append(seen[key], cv)
			out = append(out, cv)
			return
		}
		if _, ok := n.(*AggExpr); ok && !includeAgg {
			return
		}
		for _, c := range n.Children() {
			visit(c)
		}
	}
	visit(e)
	return out
}

// FindExpr collects unique (by Equals) descendants of e satisfying
// predicate, stopping descent at the first match along any branch (spec
// §4.2): a matched node's own children are never visited.
func FindExpr(e Expr, predicate func(Expr) bool) []Expr {
	var out []Expr
	seen := make(map[uint64][]Expr)
	var visit func(Expr)
	visit = func(n Expr) {
		if n == nil {
			return
		}
		if predicate(n) {
			key := dedupKey(n)
			for _, s := range seen[key] {
				if s.Equals(n) {
					return
				}
			}
			seen[key] = append(seen[key], n)
			out = append(out, n)
			return
		}
		for _, c := range n.Children() {
			visit(c)
		}
	}
	visit(e)
	return out
}
