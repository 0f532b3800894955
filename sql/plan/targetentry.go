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

// Package plan holds the query-shape containers of spec §3/§4.7: Query,
// RangeTableEntry, OrderEntry, and TargetEntry, the structures that own a
// sql/expression tree on behalf of an analyzed statement.
package plan

import "github.com/cragdb/sqlanalyzer/sql/expression"

// TargetEntry is one projected item of a targetlist (spec §3).
type TargetEntry struct {
	Resname string
	Expr    expression.Expr
	Unnest  bool
}

// NewTargetEntry constructs a TargetEntry.
func NewTargetEntry(resname string, expr expression.Expr, unnest bool) *TargetEntry {
	return &TargetEntry{Resname: resname, Expr: expr, Unnest: unnest}
}

// DeepCopy clones the target entry, including its owned expression.
func (t *TargetEntry) DeepCopy() (*TargetEntry, error) {
	e, err := t.Expr.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &TargetEntry{Resname: t.Resname, Expr: e, Unnest: t.Unnest}, nil
}

// OrderEntry is one ORDER BY item, referencing a targetlist slot by
// position (spec §3).
type OrderEntry struct {
	// TleNo is the 1-based index into the owning Query's targetlist.
	TleNo      int32
	IsDesc     bool
	NullsFirst bool
}

func NewOrderEntry(tleNo int32, isDesc, nullsFirst bool) OrderEntry {
	return OrderEntry{TleNo: tleNo, IsDesc: isDesc, NullsFirst: nullsFirst}
}
