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
	"github.com/cragdb/sqlanalyzer/sql"
	"github.com/cragdb/sqlanalyzer/sql/types"
)

// AddCastWithCodec is AddCast augmented with the external StringCodec
// collaborator of spec §4.3.2/§6: a string Constant cast to a non-string
// type is parsed via codec.StringToDatum rather than rejected outright.
// Every other expression kind, and every other (from, to) pair on a
// Constant, behaves exactly as the codec-free AddCast.
func AddCastWithCodec(e Expr, newType types.TypeInfo, codec sql.StringCodec) (Expr, error) {
	if c, ok := e.(*Constant); ok {
		return c.AddCastWithCodec(newType, codec)
	}
	return AddCast(e, newType)
}

// AddCastWithCodec is the Constant-specific half of the package-level
// function above.
func (c *Constant) AddCastWithCodec(newType types.TypeInfo, codec sql.StringCodec) (Expr, error) {
	if c.Type_.Equals(newType) {
		return c, nil
	}
	if c.IsNull {
		return &Constant{Type_: newType, IsNull: true, Value: types.NullDatum(newType)}, nil
	}
	if c.Type_.Kind.IsString() && !newType.Kind.IsString() {
		d, err := codec.StringToDatum(c.Value.Str, &newType)
		if err != nil {
			return nil, err
		}
		return &Constant{Type_: newType, Value: d}, nil
	}
	return AddCast(c, newType)
}
