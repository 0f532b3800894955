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

// BinOperType enumerates BinOper's operator kinds (spec §3, §4.1).
type BinOperType int

const (
	Eq BinOperType = iota
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
	Plus
	Minus
	Mult
	Div
	Modulo
)

func (t BinOperType) String() string {
	switch t {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case And:
		return "AND"
	case Or:
		return "OR"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Modulo:
		return "%"
	default:
		return "?"
	}
}

// IsComparison reports whether t is one of the six comparison operators.
func (t BinOperType) IsComparison() bool {
	switch t {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	default:
		return false
	}
}

// IsLogic reports whether t is AND/OR.
func (t BinOperType) IsLogic() bool {
	return t == And || t == Or
}

// IsArithmetic reports whether t is one of +,-,*,/,%.
func (t BinOperType) IsArithmetic() bool {
	switch t {
	case Plus, Minus, Mult, Div, Modulo:
		return true
	default:
		return false
	}
}

// commuteComparison is the COMMUTE_COMPARISON table of spec §4.5:
// flipping operand order flips < to > and vice versa; equality and
// inequality are unchanged.
var commuteComparison = map[BinOperType]BinOperType{
	Eq: Eq,
	Ne: Ne,
	Lt: Gt,
	Gt: Lt,
	Le: Ge,
	Ge: Le,
}

// CommuteComparison returns the operator to use when the left and right
// operands of a comparison are swapped.
func CommuteComparison(t BinOperType) BinOperType {
	c, ok := commuteComparison[t]
	if !ok {
		panic("expression: CommuteComparison called on a non-comparison operator")
	}
	return c
}

// Qualifier distinguishes a plain comparison from a quantified one
// (ANY/ALL over a subquery's rows).
type Qualifier int

const (
	QualOne Qualifier = iota
	QualAny
	QualAll
)

func (q Qualifier) String() string {
	switch q {
	case QualOne:
		return "ONE"
	case QualAny:
		return "ANY"
	case QualAll:
		return "ALL"
	default:
		return "?"
	}
}

// BinOper is a binary operator expression: comparison, logic, or
// arithmetic (spec §3).
type BinOper struct {
	Optype    BinOperType
	Qualifier Qualifier
	Type_     types.TypeInfo
	Left      Expr
	Right     Expr
}

// NewBinOper constructs a plain (qualifier ONE) BinOper.
func NewBinOper(op BinOperType, t types.TypeInfo, left, right Expr) *BinOper {
	return &BinOper{Optype: op, Qualifier: QualOne, Type_: t, Left: left, Right: right}
}

func (b *BinOper) exprNode() {}

func (b *BinOper) TypeInfo() types.TypeInfo { return b.Type_ }
func (b *BinOper) ContainsAgg() bool {
	return b.Left.ContainsAgg() || b.Right.ContainsAgg()
}
func (b *BinOper) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b *BinOper) DeepCopy() (Expr, error) {
	l, err := b.Left.DeepCopy()
	if err != nil {
		return nil, err
	}
	r, err := b.Right.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &BinOper{Optype: b.Optype, Qualifier: b.Qualifier, Type_: b.Type_, Left: l, Right: r}, nil
}

func (b *BinOper) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Optype, b.Left.String(), b.Right.String())
}

func (b *BinOper) Equals(other Expr) bool {
	o, ok := other.(*BinOper)
	if !ok {
		return false
	}
	return b.Optype == o.Optype && b.Qualifier == o.Qualifier && b.Type_.Equals(o.Type_) &&
		b.Left.Equals(o.Left) && b.Right.Equals(o.Right)
}
