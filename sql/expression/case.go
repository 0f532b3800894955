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
	"strings"

	"github.com/cragdb/sqlanalyzer/sql/types"
)

// WhenThen is a single branch of a CaseExpr.
type WhenThen struct {
	When Expr
	Then Expr
}

// CaseExpr is CASE WHEN ... THEN ... [ELSE ...] END. Its own Type_ is the
// common result type across every Then branch and the Else, as computed
// by the caller during type inference (spec §3).
type CaseExpr struct {
	Type_    types.TypeInfo
	Branches []WhenThen
	Else     Expr // nil if no ELSE clause
}

func NewCaseExpr(t types.TypeInfo, branches []WhenThen, elseExpr Expr) *CaseExpr {
	return &CaseExpr{Type_: t, Branches: branches, Else: elseExpr}
}

func (c *CaseExpr) exprNode() {}

func (c *CaseExpr) TypeInfo() types.TypeInfo { return c.Type_ }

func (c *CaseExpr) ContainsAgg() bool {
	for _, b := range c.Branches {
		if b.When.ContainsAgg() || b.Then.ContainsAgg() {
			return true
		}
	}
	return c.Else != nil && c.Else.ContainsAgg()
}

// Children visits branches in when-list order (when, then, when, then,
// ...) followed by Else, matching spec §5's documented visit order.
func (c *CaseExpr) Children() []Expr {
	children := make([]Expr, 0, 2*len(c.Branches)+1)
	for _, b := range c.Branches {
		children = append(children, b.When, b.Then)
	}
	if c.Else != nil {
		children = append(children, c.Else)
	}
	return children
}

func (c *CaseExpr) DeepCopy() (Expr, error) {
	branches := make([]WhenThen, len(c.Branches))
	for i, b := range c.Branches {
		when, err := b.When.DeepCopy()
		if err != nil {
			return nil, err
		}
		then, err := b.Then.DeepCopy()
		if err != nil {
			return nil, err
		}
		branches[i] = WhenThen{When: when, Then: then}
	}
	var elseExpr Expr
	if c.Else != nil {
		var err error
		elseExpr, err = c.Else.DeepCopy()
		if err != nil {
			return nil, err
		}
	}
	return &CaseExpr{Type_: c.Type_, Branches: branches, Else: elseExpr}, nil
}

func (c *CaseExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(case")
	for _, b := range c.Branches {
		fmt.Fprintf(&sb, " (when %s then %s)", b.When.String(), b.Then.String())
	}
	if c.Else != nil {
		fmt.Fprintf(&sb, " (else %s)", c.Else.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (c *CaseExpr) Equals(other Expr) bool {
	o, ok := other.(*CaseExpr)
	if !ok {
		return false
	}
	if !c.Type_.Equals(o.Type_) || len(c.Branches) != len(o.Branches) {
		return false
	}
	for i := range c.Branches {
		if !c.Branches[i].When.Equals(o.Branches[i].When) || !c.Branches[i].Then.Equals(o.Branches[i].Then) {
			return false
		}
	}
	if (c.Else == nil) != (o.Else == nil) {
		return false
	}
	if c.Else != nil && !c.Else.Equals(o.Else) {
		return false
	}
	return true
}

// AddCast implements spec §4.3.4: distribute the cast over every Then
// branch and the Else, and preserve dictionary identity through a
// transient-encoding pushdown when the target is a transient dictionary
// and this CaseExpr is currently an unencoded string with a real dictionary
// id attached.
func (c *CaseExpr) AddCast(newType types.TypeInfo) (Expr, error) {
	target := newType
	if newType.Kind.IsString() && newType.Compression == types.DICT && types.IsTransient(newType.CompParam) &&
		newType.CompParam == types.TransientDictID &&
		c.Type_.Kind.IsString() && c.Type_.Compression == types.NONE && c.Type_.CompParam != 0 {
		target.CompParam = types.TransientDict(c.Type_.CompParam)
	}

	branches := make([]WhenThen, len(c.Branches))
	for i, b := range c.Branches {
		then, err := AddCast(b.Then, target)
		if err != nil {
			return nil, err
		}
		branches[i] = WhenThen{When: b.When, Then: then}
	}
	var elseExpr Expr
	if c.Else != nil {
		var err error
		elseExpr, err = AddCast(c.Else, target)
		if err != nil {
			return nil, err
		}
	}
	return &CaseExpr{Type_: target, Branches: branches, Else: elseExpr}, nil
}
