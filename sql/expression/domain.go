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

// isDomainLeaf reports whether e is one of the "simple" leaf shapes
// GetDomain is willing to report: a Constant, a ColumnVar, or a CAST of
// either.
func isDomainLeaf(e Expr) bool {
	switch v := e.(type) {
	case *Constant, *ColumnVar:
		return true
	case *UOper:
		return v.Optype == Cast && isDomainLeaf(v.Operand)
	default:
		return false
	}
}

// GetDomain implements spec §4.2: a best-effort set of Constant/ColumnVar
// (or CAST thereof) values reachable through a CaseExpr's result
// positions. A nil (empty) return signals "unknown domain" - either
// because e is not itself one of the simple leaf shapes or a CaseExpr
// over them, or because some branch's result is opaque.
func GetDomain(e Expr) []Expr {
	ce, ok := e.(*CaseExpr)
	if !ok {
		if isDomainLeaf(e) {
			return []Expr{e}
		}
		return nil
	}

	var domain []Expr
	for _, b := range ce.Branches {
		sub := GetDomain(b.Then)
		if len(sub) == 0 {
			return nil
		}
		domain = append(domain, sub...)
	}
	if ce.Else != nil {
		sub := GetDomain(ce.Else)
		if len(sub) == 0 {
			return nil
		}
		domain = append(domain, sub...)
	}
	return domain
}
