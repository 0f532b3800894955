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

// legalTemporalCast reports the TIME/TIMESTAMP/DATE combinations spec
// §4.1 permits; TIME<->TIMESTAMP (and TIME<->DATE) are the ones it calls
// out as disallowed.
func legalTemporalCast(a, b Kind) bool {
	if a == b {
		return true
	}
	return (a == TIMESTAMP && b == DATE) || (a == DATE && b == TIMESTAMP)
}

// IsCastable defines the partial order add_cast consults (spec §4.1,
// §4.3.1): NUMERIC widening among numeric kinds (BOOL included, per the
// bool<->number casts do_cast performs), string<->string, string<->number,
// string<->temporal, and NULL_T freely castable to or from anything. The
// one disallowed temporal mix is TIME<->TIMESTAMP (and TIME<->DATE).
func IsCastable(from, to TypeInfo) bool {
	if from.Kind == NULL_T || to.Kind == NULL_T {
		return true
	}
	if from.Kind == to.Kind {
		return true
	}

	fromNumeric := from.Kind.IsNumeric() || from.Kind == BOOL
	toNumeric := to.Kind.IsNumeric() || to.Kind == BOOL
	if fromNumeric && toNumeric {
		return true
	}

	if from.Kind.IsString() && to.Kind.IsString() {
		return true
	}
	if from.Kind.IsString() && (toNumeric || to.Kind.IsTemporal()) {
		return true
	}
	if to.Kind.IsString() && (fromNumeric || from.Kind.IsTemporal()) {
		return true
	}

	if from.Kind.IsTemporal() && to.Kind.IsTemporal() {
		return legalTemporalCast(from.Kind, to.Kind)
	}
	if from.Kind.IsTemporal() && toNumeric {
		// timestamp->number is the one do_cast direction spec §4.3.2
		// names; the reverse (number->timestamp) is not a do_cast case,
		// so it is not castable here either.
		return from.Kind == TIMESTAMP
	}

	return false
}
