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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupportedSubquery is returned by Subquery.DeepCopy and
	// Subquery.AddCast (spec §7, §9): Subquery is a placeholder node
	// whose owned parse tree this core never clones or recasts.
	ErrUnsupportedSubquery = errors.NewKind("subquery expression does not support %s")

	// ErrGroupingOnNonDictString is returned by AddCast when a Grouping
	// (transient or real) dictionary cast is requested on a non-Constant,
	// non-dictionary string expression (spec §4.3.1 step 4, §7).
	ErrGroupingOnNonDictString = errors.NewKind("cannot group by non-dictionary-encoded string expression %s")

	// ErrTransientDictOnNonLiteral is returned when a transient-dictionary
	// cast is requested on an expression that is not a Constant (spec §7).
	ErrTransientDictOnNonLiteral = errors.NewKind("cannot apply a transient dictionary encoding to non-literal expression %s")

	// ErrGroupBy is returned by CheckGroupBy when a ColumnVar (or a Var
	// not carrying WhichRow == GroupBy) escapes both the group-by list and
	// any shielding AggExpr (spec §4.2, §7).
	ErrGroupBy = errors.NewKind("column %s must appear in the GROUP BY clause or be used in an aggregate function")
)
