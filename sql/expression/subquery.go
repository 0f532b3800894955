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

// SubqueryTree is satisfied by plan.Query; Subquery holds it behind this
// narrow interface (rather than importing sql/plan directly) to avoid a
// plan<->expression import cycle, since plan.Query in turn owns trees of
// Expr.
type SubqueryTree interface {
	String() string
}

// Subquery wraps an owned, already-analyzed nested query (spec §3). It is
// a deliberate placeholder: deep-copy and equality are unimplemented by
// design (spec §9) because cloning or comparing a full nested Query tree
// is a feature this core does not provide. DeepCopy, AddCast and the
// rewriters of §4.6 return ErrUnsupportedSubquery for it, and Equals always
// reports false.
type Subquery struct {
	Tree  SubqueryTree
	Type_ types.TypeInfo
}

func NewSubquery(tree SubqueryTree, t types.TypeInfo) *Subquery {
	return &Subquery{Tree: tree, Type_: t}
}

func (s *Subquery) exprNode() {}

func (s *Subquery) TypeInfo() types.TypeInfo { return s.Type_ }
func (s *Subquery) ContainsAgg() bool        { return false }
func (s *Subquery) Children() []Expr         { return nil }

// DeepCopy always fails: see the type doc comment.
func (s *Subquery) DeepCopy() (Expr, error) {
	return nil, ErrUnsupportedSubquery.New("deep_copy")
}

// AddCast always fails: casting a subquery result is a feature gap the
// planner must route around (e.g. by wrapping the subquery's own
// targetlist entry in a cast before this node is ever built).
func (s *Subquery) AddCast(types.TypeInfo) (Expr, error) {
	return nil, ErrUnsupportedSubquery.New("add_cast")
}

func (s *Subquery) String() string {
	return fmt.Sprintf("(subquery %s)", s.Tree.String())
}

// Equals always reports false: Subquery equality is unsupported (spec
// §8, property 2 explicitly excludes Subquery from the reflexive/
// symmetric/transitive equality properties every other variant holds).
func (s *Subquery) Equals(Expr) bool {
	return false
}
