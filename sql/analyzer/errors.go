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

// Package analyzer implements the predicate classifier and targetlist
// rewriters of spec §4.4-§4.6: the passes that turn a bound Query into the
// shape the (out of scope) plan generator expects.
package analyzer

import "gopkg.in/src-d/go-errors.v1"

// ErrInternalRewriteFailure is returned by RewriteWithTargetlist,
// RewriteWithChildTargetlist, and RewriteAggToVar when an expression
// references a column or aggregate that has no matching entry in the
// targetlist being rewritten against (spec §4.6, §7): this signals a bug
// upstream of the analyzer, never a user-facing condition.
var ErrInternalRewriteFailure = errors.NewKind("analyzer: no targetlist entry matches %s")
