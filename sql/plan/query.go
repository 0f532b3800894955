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

package plan

import (
	"fmt"
	"strings"

	"github.com/cragdb/sqlanalyzer/sql/expression"
)

// StmtKind enumerates the statement shapes a Query can represent.
type StmtKind int

const (
	Select StmtKind = iota
	Insert
	Update
	Delete
)

func (k StmtKind) String() string {
	switch k {
	case Select:
		return "SELECT"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	default:
		return "?"
	}
}

// Query is the top-level container of spec §3/§4.7: it exclusively owns
// every node reachable from it, including every RangeTableEntry (and any
// ViewQuery they hold) and the NextQuery set-operation chain.
type Query struct {
	Kind       StmtKind
	Targetlist []*TargetEntry
	Rangetable []*RangeTableEntry

	Where    expression.Expr // nil if no WHERE clause
	GroupBy  []expression.Expr
	Having   expression.Expr // nil if no HAVING clause
	OrderBy  []OrderEntry

	// NextQuery continues a UNION/INTERSECT/EXCEPT chain; nil for the
	// last (or only) query. Spec §9: treat as a singly-linked list, never
	// cyclic.
	NextQuery *Query

	Distinct bool
	Limit    *int64
	Offset   *int64
}

// NewQuery constructs an empty SELECT Query.
func NewQuery() *Query {
	return &Query{Kind: Select}
}

// GetRteIdx returns the 0-based position of the range table entry named
// name, or -1 if absent (spec §4.7).
func (q *Query) GetRteIdx(name string) int32 {
	for i, rte := range q.Rangetable {
		if rte.RangeVarName == name {
			return int32(i)
		}
	}
	return -1
}

// AddRte appends rte to the range table; ownership passes to q (spec
// §4.7).
func (q *Query) AddRte(rte *RangeTableEntry) int32 {
	q.Rangetable = append(q.Rangetable, rte)
	return int32(len(q.Rangetable) - 1)
}

// String renders a compact diagnostic form; it also satisfies
// expression.SubqueryTree so a Query can be wrapped in an
// expression.Subquery without an import cycle.
func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString("(query")
	for _, te := range q.Targetlist {
		fmt.Fprintf(&sb, " %s", te.Expr.String())
	}
	if q.Where != nil {
		fmt.Fprintf(&sb, " (where %s)", q.Where.String())
	}
	if q.NextQuery != nil {
		fmt.Fprintf(&sb, " (next %s)", q.NextQuery.String())
	}
	sb.WriteString(")")
	return sb.String()
}
