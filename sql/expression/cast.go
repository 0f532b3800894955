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

import "github.com/cragdb/sqlanalyzer/sql/types"

// AddCast implements the general add_cast procedure of spec §4.3.1,
// dispatching to the per-variant overrides of §4.3.2 (Constant), §4.3.3
// (UOper(CAST) round-trip elision), and §4.3.4 (CaseExpr) where they
// apply, and otherwise wrapping e in a UOper(CAST).
func AddCast(e Expr, newType types.TypeInfo) (Expr, error) {
	cur := e.TypeInfo()

	// Step 1: identical type is a no-op.
	if cur.Equals(newType) {
		return e, nil
	}

	// Step 2: both sides are string DICT sharing a dictionary (directly
	// or via the transient involution) - also a no-op.
	if cur.Kind.IsString() && newType.Kind.IsString() &&
		cur.Compression == types.DICT && newType.Compression == types.DICT &&
		types.SameDictionary(cur, newType) {
		return e, nil
	}

	if ac, ok := e.(*Constant); ok {
		return ac.AddCast(newType)
	}
	if ac, ok := e.(*CaseExpr); ok {
		return ac.AddCast(newType)
	}
	if u, ok := e.(*UOper); ok && u.Optype == Cast {
		if inner, elided := uoperCastShortCircuit(u, newType); elided {
			return inner, nil
		}
	}

	// Step 3: castability.
	if !types.IsCastable(cur, newType) {
		return nil, types.ErrNotCastable.New(cur.Kind, newType.Kind)
	}

	// Step 4: only Constant (handled above) may cast into a transient or
	// new dictionary; every other expression kind that reaches here is
	// rejected, distinguishing "was never dictionary-encoded at all" from
	// "is a non-literal expression that cannot be transient-encoded".
	if newType.Kind.IsString() && newType.Compression == types.DICT && types.IsTransient(newType.CompParam) {
		if cur.Kind.IsString() && cur.Compression != types.DICT {
			return nil, ErrGroupingOnNonDictString.New(e.String())
		}
		return nil, ErrTransientDictOnNonLiteral.New(e.String())
	}

	// Step 5: wrap.
	return &UOper{Optype: Cast, Type_: newType, Operand: e}, nil
}

// uoperCastShortCircuit implements spec §4.3.3: casting a string column
// that has been decoded to NONE back to a DICT matching its original
// dictionary (or the transient partner of it) unwraps the decode/encode
// round trip entirely, returning the original dictionary-encoded operand.
func uoperCastShortCircuit(u *UOper, newType types.TypeInfo) (Expr, bool) {
	if u.Type_.Compression != types.NONE || !u.Type_.Kind.IsString() {
		return nil, false
	}
	if newType.Compression != types.DICT {
		return nil, false
	}
	inner := u.Operand.TypeInfo()
	if inner.Compression != types.DICT {
		return nil, false
	}
	if inner.CompParam == newType.CompParam || inner.CompParam == types.TransientDict(newType.CompParam) {
		return u.Operand, true
	}
	return nil, false
}

// Decompress inserts a CAST to the same type with Compression forced to
// NONE (spec §4.3.5); a no-op if e is already uncompressed.
func Decompress(e Expr) (Expr, error) {
	t := e.TypeInfo()
	if t.Compression == types.NONE {
		return e, nil
	}
	return AddCast(e, t.Decompressed())
}
