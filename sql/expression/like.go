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
	"fmt"

	"github.com/cragdb/sqlanalyzer/sql/types"
)

// LikeExpr is `arg [NOT] [I]LIKE pattern [ESCAPE escape]`. IsSimple marks
// patterns recognized to contain no wildcard metacharacters, letting the
// planner substitute a plain equality scan.
type LikeExpr struct {
	Arg      Expr
	Pattern  Expr
	Escape   Expr // nil when no ESCAPE clause was given
	IsILike  bool
	IsSimple bool
}

func NewLikeExpr(arg, pattern, escape Expr, isILike, isSimple bool) *LikeExpr {
	return &LikeExpr{Arg: arg, Pattern: pattern, Escape: escape, IsILike: isILike, IsSimple: isSimple}
}

func (e *LikeExpr) exprNode() {}

func (e *LikeExpr) TypeInfo() types.TypeInfo { return types.TypeInfo{Kind: types.BOOL} }

func (e *LikeExpr) ContainsAgg() bool {
	if e.Arg.ContainsAgg() || e.Pattern.ContainsAgg() {
		return true
	}
	return e.Escape != nil && e.Escape.ContainsAgg()
}

// Children visits arg and pattern first, then escape, matching spec §5's
// documented "pattern before escape" visit order.
func (e *LikeExpr) Children() []Expr {
	children := []Expr{e.Arg, e.Pattern}
	if e.Escape != nil {
		children = append(children, e.Escape)
	}
	return children
}

func (e *LikeExpr) DeepCopy() (Expr, error) {
	arg, err := e.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	pattern, err := e.Pattern.DeepCopy()
	if err != nil {
		return nil, err
	}
	var escape Expr
	if e.Escape != nil {
		escape, err = e.Escape.DeepCopy()
		if err != nil {
			return nil, err
		}
	}
	return &LikeExpr{Arg: arg, Pattern: pattern, Escape: escape, IsILike: e.IsILike, IsSimple: e.IsSimple}, nil
}

func (e *LikeExpr) String() string {
	name := "like"
	if e.IsILike {
		name = "ilike"
	}
	if e.Escape != nil {
		return fmt.Sprintf("(%s %s %s escape %s)", name, e.Arg.String(), e.Pattern.String(), e.Escape.String())
	}
	return fmt.Sprintf("(%s %s %s)", name, e.Arg.String(), e.Pattern.String())
}

func (e *LikeExpr) Equals(other Expr) bool {
	o, ok := other.(*LikeExpr)
	if !ok {
		return false
	}
	if e.IsILike != o.IsILike || e.IsSimple != o.IsSimple {
		return false
	}
	if !e.Arg.Equals(o.Arg) || !e.Pattern.Equals(o.Pattern) {
		return false
	}
	if (e.Escape == nil) != (o.Escape == nil) {
		return false
	}
	if e.Escape != nil && !e.Escape.Equals(o.Escape) {
		return false
	}
	return true
}
