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

// Constant is a literal value. It exclusively owns any string Datum it
// carries (spec §3 ownership rule).
type Constant struct {
	Type_  types.TypeInfo
	IsNull bool
	Value  types.Datum
}

// NewConstant builds a non-null constant.
func NewConstant(t types.TypeInfo, v types.Datum) *Constant {
	return &Constant{Type_: t, Value: v}
}

// NewNullConstant builds a null constant of kind t, using the sentinel
// Datum for t (spec §6).
func NewNullConstant(t types.TypeInfo) *Constant {
	return &Constant{Type_: t, IsNull: true, Value: types.NullDatum(t)}
}

func (c *Constant) exprNode() {}

func (c *Constant) TypeInfo() types.TypeInfo { return c.Type_ }
func (c *Constant) ContainsAgg() bool        { return false }
func (c *Constant) Children() []Expr         { return nil }

func (c *Constant) DeepCopy() (Expr, error) {
	cp := *c
	return &cp, nil
}

func (c *Constant) String() string {
	if c.IsNull {
		return fmt.Sprintf("(const %s NULL)", c.Type_.Kind)
	}
	if c.Type_.Kind.IsString() {
		return fmt.Sprintf("(const %s %q)", c.Type_.Kind, c.Value.Str)
	}
	return fmt.Sprintf("(const %s %v)", c.Type_.Kind, c.Value)
}

func (c *Constant) Equals(other Expr) bool {
	o, ok := other.(*Constant)
	if !ok {
		return false
	}
	if !c.Type_.Equals(o.Type_) || c.IsNull != o.IsNull {
		return false
	}
	if c.IsNull {
		return true
	}
	if c.Type_.Kind.IsString() {
		return c.Value.Str == o.Value.Str
	}
	return c.Value == o.Value
}
