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

// InValues is `arg IN (list...)`. Its type is always BOOL.
type InValues struct {
	Arg  Expr
	List []Expr
}

func NewInValues(arg Expr, list []Expr) *InValues {
	return &InValues{Arg: arg, List: list}
}

func (e *InValues) exprNode() {}

func (e *InValues) TypeInfo() types.TypeInfo { return types.TypeInfo{Kind: types.BOOL} }

func (e *InValues) ContainsAgg() bool {
	if e.Arg.ContainsAgg() {
		return true
	}
	for _, v := range e.List {
		if v.ContainsAgg() {
			return true
		}
	}
	return false
}

func (e *InValues) Children() []Expr {
	children := make([]Expr, 0, 1+len(e.List))
	children = append(children, e.Arg)
	children = append(children, e.List...)
	return children
}

func (e *InValues) DeepCopy() (Expr, error) {
	arg, err := e.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	list := make([]Expr, len(e.List))
	for i, v := range e.List {
		list[i], err = v.DeepCopy()
		if err != nil {
			return nil, err
		}
	}
	return &InValues{Arg: arg, List: list}, nil
}

func (e *InValues) String() string {
	parts := make([]string, len(e.List))
	for i, v := range e.List {
		parts[i] = v.String()
	}
	return fmt.Sprintf("(in %s (%s))", e.Arg.String(), strings.Join(parts, " "))
}

func (e *InValues) Equals(other Expr) bool {
	o, ok := other.(*InValues)
	if !ok {
		return false
	}
	if !e.Arg.Equals(o.Arg) || len(e.List) != len(o.List) {
		return false
	}
	for i := range e.List {
		if !e.List[i].Equals(o.List[i]) {
			return false
		}
	}
	return true
}
