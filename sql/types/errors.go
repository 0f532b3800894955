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

package types

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrIncompatibleTypes is raised by expression.AnalyzeTypeInfo when two
	// operand kinds cannot be reconciled (spec §7, TypeError).
	ErrIncompatibleTypes = errors.NewKind("cannot compare between %s and %s")

	// ErrNotCastable is raised by AddCast when IsCastable reports false
	// (spec §7, CastError).
	ErrNotCastable = errors.NewKind("cannot cast %s to %s")
)
