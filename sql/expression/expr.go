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

// Package expression holds the analyzed expression node variants of the
// SQL type tree (spec §3) and the uniform recursive traversal framework
// every variant participates in (spec §4.2): deep copy, structural
// equality, find/collect, domain extraction, and the type coercion engine.
package expression

import "github.com/cragdb/sqlanalyzer/sql/types"

// Expr is the sealed interface implemented by every analyzed expression
// node kind named in spec §3. The set of implementations is closed by the
// unexported exprNode marker method, matching the teacher's sealed
// sql.Expression/sql.Node idiom (see sql/core.go in the teacher corpus).
type Expr interface {
	// TypeInfo returns the node's fully-resolved SQL type.
	TypeInfo() types.TypeInfo
	// ContainsAgg reports whether this node or any descendant is an
	// AggExpr.
	ContainsAgg() bool
	// DeepCopy returns a structurally identical, fully independent clone.
	// Subquery is the sole variant for which this always errors.
	DeepCopy() (Expr, error)
	// Equals reports structural equality: same variant tag, same fields,
	// recursively equal children. Subquery equality always returns false.
	Equals(other Expr) bool
	// String renders a parenthesized S-expression form for diagnostics.
	String() string
	// Children returns this node's immediate child expressions, in
	// left-to-right visit order, for traversal-framework use.
	Children() []Expr

	exprNode()
}

// AddCaster is implemented by node kinds with a bespoke add_cast override
// (Constant folds, UOper(CAST) short-circuits, CaseExpr distributes). Node
// kinds without an override fall back to the package-level AddCast, which
// wraps the receiver in a UOper(CAST).
type AddCaster interface {
	Expr
	AddCast(newType types.TypeInfo) (Expr, error)
}
