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

// DatePart enumerates the field argument of ExtractExpr/DatetruncExpr.
type DatePart int

const (
	Year DatePart = iota
	Month
	Day
	Hour
	Minute
	Second
)

func (f DatePart) String() string {
	switch f {
	case Year:
		return "YEAR"
	case Month:
		return "MONTH"
	case Day:
		return "DAY"
	case Hour:
		return "HOUR"
	case Minute:
		return "MIN"
	case Second:
		return "SEC"
	default:
		return "?"
	}
}

// ExtractExpr is EXTRACT(field FROM from_expr); its result is always
// BIGINT (the field's numeric value).
type ExtractExpr struct {
	Field Field
	From  Expr
}

// Field is an alias kept distinct from DatePart so extract/truncate sites
// read clearly; both share the same enumeration today.
type Field = DatePart

func NewExtractExpr(field Field, from Expr) *ExtractExpr {
	return &ExtractExpr{Field: field, From: from}
}

func (e *ExtractExpr) exprNode() {}

func (e *ExtractExpr) TypeInfo() types.TypeInfo {
	return types.TypeInfo{Kind: types.BIGINT, NotNull: e.From.TypeInfo().NotNull}
}

func (e *ExtractExpr) ContainsAgg() bool { return e.From.ContainsAgg() }
func (e *ExtractExpr) Children() []Expr  { return []Expr{e.From} }

func (e *ExtractExpr) DeepCopy() (Expr, error) {
	from, err := e.From.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &ExtractExpr{Field: e.Field, From: from}, nil
}

func (e *ExtractExpr) String() string {
	return fmt.Sprintf("(extract %s %s)", e.Field, e.From.String())
}

func (e *ExtractExpr) Equals(other Expr) bool {
	o, ok := other.(*ExtractExpr)
	if !ok {
		return false
	}
	return e.Field == o.Field && e.From.Equals(o.From)
}

// DatetruncExpr is DATE_TRUNC(field, from_expr); its result mirrors
// From's temporal type (truncated to the given granularity).
type DatetruncExpr struct {
	Field Field
	From  Expr
}

func NewDatetruncExpr(field Field, from Expr) *DatetruncExpr {
	return &DatetruncExpr{Field: field, From: from}
}

func (e *DatetruncExpr) exprNode() {}

func (e *DatetruncExpr) TypeInfo() types.TypeInfo { return e.From.TypeInfo() }
func (e *DatetruncExpr) ContainsAgg() bool        { return e.From.ContainsAgg() }
func (e *DatetruncExpr) Children() []Expr         { return []Expr{e.From} }

func (e *DatetruncExpr) DeepCopy() (Expr, error) {
	from, err := e.From.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &DatetruncExpr{Field: e.Field, From: from}, nil
}

func (e *DatetruncExpr) String() string {
	return fmt.Sprintf("(datetrunc %s %s)", e.Field, e.From.String())
}

func (e *DatetruncExpr) Equals(other Expr) bool {
	o, ok := other.(*DatetruncExpr)
	if !ok {
		return false
	}
	return e.Field == o.Field && e.From.Equals(o.From)
}
