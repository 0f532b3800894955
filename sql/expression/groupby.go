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

// CheckGroupBy implements spec §4.2: verifies every ColumnVar reachable
// from e either appears in groupBy (by Equals) or is shielded by an
// AggExpr ancestor (descent stops there). A Var reachable from e must
// carry WhichRow == GroupBy; any other WhichRow is rejected, since a
// rewritten Var by definition already passed this check once (at rewrite
// time) and should only resurface here tagged as a group-by slot.
func CheckGroupBy(e Expr, groupBy []Expr) error {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *AggExpr:
		return nil
	case *Var:
		if v.Which != GroupBy {
			return ErrGroupBy.New(v.String())
		}
		return nil
	case *ColumnVar:
		for _, g := range groupBy {
			if g.Equals(v) {
				return nil
			}
		}
		return ErrGroupBy.New(v.String())
	}
	for _, c := range e.Children() {
		if err := CheckGroupBy(c, groupBy); err != nil {
			return err
		}
	}
	return nil
}
