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

// splitConjunction flattens a tree of AND BinOpers into its leaf
// conjuncts, the way the teacher's sql/analyzer/filters.go splits a WHERE
// clause before classifying each piece. Only AND descends; OR and every
// other node kind is returned whole as a single conjunct.
func splitConjunction(e expression.Expr) []expression.Expr {
	if b, ok := e.(*expression.BinOper); ok && b.Optype == expression.And {
		return append(splitConjunction(b.Left), splitConjunction(b.Right)...)
	}
	return []expression.Expr{e}
}

// GroupPredicates implements spec §4.4: it splits a WHERE/HAVING predicate
// into its AND-conjuncts and buckets each conjunct by the number of
// distinct range-table entries its ColumnVar/Var descendants reference —
// zero means a constant (correlation-free) predicate, one means a
// single-table scan filter, and two or more means a join condition.
func GroupPredicates(e expression.Expr) (scan, join, constant []expression.Expr) {
	if e == nil {
		return nil, nil, nil
	}
	for _, leaf := range splitConjunction(e) {
		switch len(expression.CollectRteIdx(leaf)) {
		case 0:
			constant = append(constant, leaf)
		case 1:
			scan = append(scan, leaf)
		default:
			join = append(join, leaf)
		}
	}
	return scan, join, constant
}
