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

// UOperType enumerates UOper's operator kinds (spec §3).
type UOperType int

const (
	Not UOperType = iota
	UMinus
	IsNull
	Exists
	Cast
	Unnest
)

func (t UOperType) String() string {
	switch t {
	case Not:
		return "NOT"
	case UMinus:
		return "UMINUS"
	case IsNull:
		return "ISNULL"
	case Exists:
		return "EXISTS"
	case Cast:
		return "CAST"
	case Unnest:
		return "UNNEST"
	default:
		return "UNKNOWN"
	}
}

// UOper is a unary operator expression. Its Type_ is the operator's own
// result type: for Cast this is the cast-to type; for Not/IsNull/Exists
// this is BOOL; for UMinus/Unnest it mirrors (or derives from) the
// operand's type.
type UOper struct {
	Optype  UOperType
	Type_   types.TypeInfo
	Operand Expr
}

// NewUOper constructs a UOper with an explicit result type.
func NewUOper(op UOperType, t types.TypeInfo, operand Expr) *UOper {
	return &UOper{Optype: op, Type_: t, Operand: operand}
}

func (u *UOper) exprNode() {}

func (u *UOper) TypeInfo() types.TypeInfo { return u.Type_ }
func (u *UOper) ContainsAgg() bool        { return u.Operand.ContainsAgg() }
func (u *UOper) Children() []Expr         { return []Expr{u.Operand} }

func (u *UOper) DeepCopy() (Expr, error) {
	child, err := u.Operand.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &UOper{Optype: u.Optype, Type_: u.Type_, Operand: child}, nil
}

func (u *UOper) String() string {
	return fmt.Sprintf("(%s %s)", u.Optype, u.Operand.String())
}

func (u *UOper) Equals(other Expr) bool {
	o, ok := other.(*UOper)
	if !ok {
		return false
	}
	return u.Optype == o.Optype && u.Type_.Equals(o.Type_) && u.Operand.Equals(o.Operand)
}
