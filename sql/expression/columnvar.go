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

// ColumnVar references a physical column resolved by the catalog. RteIdx
// is -1 only during construction, before the owning Query has bound it to
// a range table entry (spec §3 invariant).
type ColumnVar struct {
	Type_    types.TypeInfo
	TableID  int32
	ColumnID int32
	RteIdx   int32
}

// NewColumnVar constructs an unbound ColumnVar (RteIdx == -1).
func NewColumnVar(t types.TypeInfo, tableID, columnID int32) *ColumnVar {
	return &ColumnVar{Type_: t, TableID: tableID, ColumnID: columnID, RteIdx: -1}
}

// NewBoundColumnVar constructs a ColumnVar already bound to a range table
// entry index.
func NewBoundColumnVar(t types.TypeInfo, tableID, columnID, rteIdx int32) *ColumnVar {
	return &ColumnVar{Type_: t, TableID: tableID, ColumnID: columnID, RteIdx: rteIdx}
}

func (c *ColumnVar) exprNode() {}

func (c *ColumnVar) TypeInfo() types.TypeInfo { return c.Type_ }
func (c *ColumnVar) ContainsAgg() bool        { return false }
func (c *ColumnVar) Children() []Expr         { return nil }

func (c *ColumnVar) DeepCopy() (Expr, error) {
	cp := *c
	return &cp, nil
}

func (c *ColumnVar) String() string {
	return fmt.Sprintf("(col %d.%d rte=%d)", c.TableID, c.ColumnID, c.RteIdx)
}

// Equals implements the cross-variant equality rule of spec §4.2:
// ColumnVar compares by (table, column, rte_idx) against another
// ColumnVar, and cross-accepts a Var whose column coordinates match
// (regardless of the Var's which_row/varno).
func (c *ColumnVar) Equals(other Expr) bool {
	switch o := other.(type) {
	case *ColumnVar:
		return c.TableID == o.TableID && c.ColumnID == o.ColumnID && c.RteIdx == o.RteIdx
	case *Var:
		// An unbound ColumnVar (RteIdx == -1) never equals a Var: mirrors
		// Var.Equals's own ColumnVar case below so the relation stays
		// symmetric.
		if c.RteIdx == -1 {
			return false
		}
		return c.TableID == o.TableID && c.ColumnID == o.ColumnID && c.RteIdx == o.RteIdx
	default:
		return false
	}
}

// WhichRow identifies which row a post-rewrite Var slot is drawn from.
type WhichRow int

const (
	InputOuter WhichRow = iota
	InputInner
	Output
	GroupBy
)

func (w WhichRow) String() string {
	switch w {
	case InputOuter:
		return "INPUT_OUTER"
	case InputInner:
		return "INPUT_INNER"
	case Output:
		return "OUTPUT"
	case GroupBy:
		return "GROUPBY"
	default:
		return "UNKNOWN"
	}
}

// Var is a post-rewrite slot reference: "the Nth column of the child
// plan's output row", produced by the rewriters of spec §4.6. It carries
// the same column coordinates as a ColumnVar (for the cross-variant
// equality rule above) plus WhichRow/Varno.
type Var struct {
	ColumnVar
	Which WhichRow
	// Varno is the 1-based slot index into the referenced row.
	Varno int32
}

// NewVar constructs a Var. Per spec §3, Which must not be GroupBy unless
// the Var appears under a GROUP BY/HAVING check path; callers that build
// GroupBy Vars are responsible for that context.
func NewVar(t types.TypeInfo, tableID, columnID, rteIdx int32, which WhichRow, varno int32) *Var {
	return &Var{
		ColumnVar: ColumnVar{Type_: t, TableID: tableID, ColumnID: columnID, RteIdx: rteIdx},
		Which:     which,
		Varno:     varno,
	}
}

func (v *Var) exprNode() {}

func (v *Var) DeepCopy() (Expr, error) {
	cp := *v
	return &cp, nil
}

func (v *Var) String() string {
	return fmt.Sprintf("(var %s %d)", v.Which, v.Varno)
}

// Equals implements spec §4.2: ColumnVar == Var only when RteIdx == -1 on
// the ColumnVar side and Which/Varno match (there is no ColumnVar-side
// Which/Varno, so in practice this path is reached only through a Var
// receiver comparing itself to another Var, or through ColumnVar.Equals
// above for the unbound-LHS case, which this mirrors from the Var side).
func (v *Var) Equals(other Expr) bool {
	switch o := other.(type) {
	case *Var:
		return v.TableID == o.TableID && v.ColumnID == o.ColumnID &&
			v.RteIdx == o.RteIdx && v.Which == o.Which && v.Varno == o.Varno
	case *ColumnVar:
		if o.RteIdx == -1 {
			return false
		}
		return v.TableID == o.TableID && v.ColumnID == o.ColumnID && v.RteIdx == o.RteIdx
	default:
		return false
	}
}
