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

// CharLengthExpr is CHAR_LENGTH(arg) / LENGTH(arg). CalcEncodedLength
// selects encoded-byte-length (LENGTH) vs. logical-character-length
// (CHAR_LENGTH) semantics.
type CharLengthExpr struct {
	Arg               Expr
	CalcEncodedLength bool
}

func NewCharLengthExpr(arg Expr, calcEncodedLength bool) *CharLengthExpr {
	return &CharLengthExpr{Arg: arg, CalcEncodedLength: calcEncodedLength}
}

func (e *CharLengthExpr) exprNode() {}

func (e *CharLengthExpr) TypeInfo() types.TypeInfo {
	return types.TypeInfo{Kind: types.INT, NotNull: e.Arg.TypeInfo().NotNull}
}

func (e *CharLengthExpr) ContainsAgg() bool { return e.Arg.ContainsAgg() }
func (e *CharLengthExpr) Children() []Expr  { return []Expr{e.Arg} }

func (e *CharLengthExpr) DeepCopy() (Expr, error) {
	arg, err := e.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &CharLengthExpr{Arg: arg, CalcEncodedLength: e.CalcEncodedLength}, nil
}

func (e *CharLengthExpr) String() string {
	name := "char_length"
	if e.CalcEncodedLength {
		name = "length"
	}
	return fmt.Sprintf("(%s %s)", name, e.Arg.String())
}

func (e *CharLengthExpr) Equals(other Expr) bool {
	o, ok := other.(*CharLengthExpr)
	if !ok {
		return false
	}
	return e.CalcEncodedLength == o.CalcEncodedLength && e.Arg.Equals(o.Arg)
}
