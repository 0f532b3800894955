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
	"github.com/mitchellh/hashstructure"
)

// AggType enumerates AggExpr's aggregate function kinds.
type AggType int

const (
	Avg AggType = iota
	Min
	Max
	Sum
	Count
)

func (t AggType) String() string {
	switch t {
	case Avg:
		return "AVG"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	case Sum:
		return "SUM"
	case Count:
		return "COUNT"
	default:
		return "?"
	}
}

// AggExpr is an aggregate function call. Arg is nil only for COUNT(*)
// (spec §3).
type AggExpr struct {
	Aggtype    AggType
	Type_      types.TypeInfo
	Arg        Expr // nil for COUNT(*)
	IsDistinct bool
}

func NewAggExpr(t AggType, typeInfo types.TypeInfo, arg Expr, isDistinct bool) *AggExpr {
	return &AggExpr{Aggtype: t, Type_: typeInfo, Arg: arg, IsDistinct: isDistinct}
}

func (a *AggExpr) exprNode() {}

func (a *AggExpr) TypeInfo() types.TypeInfo { return a.Type_ }
func (a *AggExpr) ContainsAgg() bool        { return true }

func (a *AggExpr) Children() []Expr {
	if a.Arg == nil {
		return nil
	}
	return []Expr{a.Arg}
}

func (a *AggExpr) DeepCopy() (Expr, error) {
	var arg Expr
	if a.Arg != nil {
		var err error
		arg, err = a.Arg.DeepCopy()
		if err != nil {
			return nil, err
		}
	}
	return &AggExpr{Aggtype: a.Aggtype, Type_: a.Type_, Arg: arg, IsDistinct: a.IsDistinct}, nil
}

func (a *AggExpr) String() string {
	distinct := ""
	if a.IsDistinct {
		distinct = "distinct "
	}
	if a.Arg == nil {
		return fmt.Sprintf("(%s %s*)", a.Aggtype, distinct)
	}
	return fmt.Sprintf("(%s %s%s)", a.Aggtype, distinct, a.Arg.String())
}

func (a *AggExpr) Equals(other Expr) bool {
	o, ok := other.(*AggExpr)
	if !ok {
		return false
	}
	if a.Aggtype != o.Aggtype || a.IsDistinct != o.IsDistinct || !a.Type_.Equals(o.Type_) {
		return false
	}
	if (a.Arg == nil) != (o.Arg == nil) {
		return false
	}
	if a.Arg != nil && !a.Arg.Equals(o.Arg) {
		return false
	}
	return true
}

// structuralKey is the hashstructure-backed value the rewriters of spec
// §4.6 compare before running Equals when testing "matches an entry in
// tlist by structural equality".
type structuralKey struct {
	Aggtype    AggType
	Type_      types.TypeInfo
	ArgKey     uint64
	HasArg     bool
	IsDistinct bool
}

// StructuralHash returns a hashstructure-backed fingerprint of a,
// used by the targetlist-matching rewriters (spec §4.6) to shortlist
// candidates before falling back to Equals for the final confirmation.
func (a *AggExpr) StructuralHash() (uint64, error) {
	var argKey uint64
	if a.Arg != nil {
		h, err := hashstructure.Hash(a.Arg.String(), nil)
		if err != nil {
			return 0, err
		}
		argKey = h
	}
	return hashstructure.Hash(structuralKey{
		Aggtype:    a.Aggtype,
		Type_:      a.Type_,
		ArgKey:     argKey,
		HasArg:     a.Arg != nil,
		IsDistinct: a.IsDistinct,
	}, nil)
}
