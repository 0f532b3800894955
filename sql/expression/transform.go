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

// TransformUp rebuilds e bottom-up: every child is transformed first (by
// the same recursive walk), the node is rebuilt with the new children,
// and fn is finally called on the rebuilt node to decide the replacement
// at this level. This is the shared double-dispatch recursion the
// rewriters of spec §4.6 (and sql/analyzer's fixFieldIndexes-style passes)
// build on, matching the teacher corpus's expression.TransformUp idiom.
//
// Subquery is opaque to TransformUp: it has no children to rewrite, so fn
// is invoked directly on it like any other leaf; a rewriter that needs to
// reach inside a Subquery must do so explicitly and is expected to signal
// ErrUnsupportedSubquery if it cannot.
func TransformUp(e Expr, fn func(Expr) (Expr, error)) (Expr, error) {
	if e == nil {
		return nil, nil
	}

	switch v := e.(type) {
	case *ColumnVar, *Var, *Constant, *Subquery:
		return fn(e)

	case *UOper:
		child, err := TransformUp(v.Operand, fn)
		if err != nil {
			return nil, err
		}
		return fn(&UOper{Optype: v.Optype, Type_: v.Type_, Operand: child})

	case *BinOper:
		l, err := TransformUp(v.Left, fn)
		if err != nil {
			return nil, err
		}
		r, err := TransformUp(v.Right, fn)
		if err != nil {
			return nil, err
		}
		return fn(&BinOper{Optype: v.Optype, Qualifier: v.Qualifier, Type_: v.Type_, Left: l, Right: r})

	case *InValues:
		arg, err := TransformUp(v.Arg, fn)
		if err != nil {
			return nil, err
		}
		list := make([]Expr, len(v.List))
		for i, item := range v.List {
			list[i], err = TransformUp(item, fn)
			if err != nil {
				return nil, err
			}
		}
		return fn(&InValues{Arg: arg, List: list})

	case *CharLengthExpr:
		arg, err := TransformUp(v.Arg, fn)
		if err != nil {
			return nil, err
		}
		return fn(&CharLengthExpr{Arg: arg, CalcEncodedLength: v.CalcEncodedLength})

	case *LikeExpr:
		arg, err := TransformUp(v.Arg, fn)
		if err != nil {
			return nil, err
		}
		pattern, err := TransformUp(v.Pattern, fn)
		if err != nil {
			return nil, err
		}
		var escape Expr
		if v.Escape != nil {
			escape, err = TransformUp(v.Escape, fn)
			if err != nil {
				return nil, err
			}
		}
		return fn(&LikeExpr{Arg: arg, Pattern: pattern, Escape: escape, IsILike: v.IsILike, IsSimple: v.IsSimple})

	case *AggExpr:
		var arg Expr
		if v.Arg != nil {
			var err error
			arg, err = TransformUp(v.Arg, fn)
			if err != nil {
				return nil, err
			}
		}
		return fn(&AggExpr{Aggtype: v.Aggtype, Type_: v.Type_, Arg: arg, IsDistinct: v.IsDistinct})

	case *CaseExpr:
		branches := make([]WhenThen, len(v.Branches))
		for i, b := range v.Branches {
			when, err := TransformUp(b.When, fn)
			if err != nil {
				return nil, err
			}
			then, err := TransformUp(b.Then, fn)
			if err != nil {
				return nil, err
			}
			branches[i] = WhenThen{When: when, Then: then}
		}
		var elseExpr Expr
		if v.Else != nil {
			var err error
			elseExpr, err = TransformUp(v.Else, fn)
			if err != nil {
				return nil, err
			}
		}
		return fn(&CaseExpr{Type_: v.Type_, Branches: branches, Else: elseExpr})

	case *ExtractExpr:
		from, err := TransformUp(v.From, fn)
		if err != nil {
			return nil, err
		}
		return fn(&ExtractExpr{Field: v.Field, From: from})

	case *DatetruncExpr:
		from, err := TransformUp(v.From, fn)
		if err != nil {
			return nil, err
		}
		return fn(&DatetruncExpr{Field: v.Field, From: from})

	default:
		return fn(e)
	}
}
