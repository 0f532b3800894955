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

// Package sql holds the collaborator interfaces the analyzer core consumes
// (catalog lookups, string<->datum coding) and the small set of descriptor
// types shared across the core's subpackages.
package sql

import "github.com/cragdb/sqlanalyzer/sql/types"

// ColumnDescriptor is what the catalog returns for a physical column. It
// carries enough information for the analyzer to build a ColumnVar and
// attach a fully-populated TypeInfo to it.
type ColumnDescriptor struct {
	TableID    int32
	ColumnID   int32
	ColumnName string
	ColumnType types.TypeInfo
	IsSystem   bool
	IsDeleted  bool
}

// Catalog is the read-only metadata collaborator the analyzer consults to
// resolve range table entries and bare column references. Implementations
// must be safe for concurrent reads from multiple analyzer instances; the
// core itself never mutates the catalog and never blocks on it beyond the
// call itself.
type Catalog interface {
	// GetAllColumnMetadata returns every column of tableID, optionally
	// including system and/or soft-deleted columns.
	GetAllColumnMetadata(tableID int32, includeSystem, includeDeleted bool) ([]ColumnDescriptor, error)

	// GetMetadataForColumn looks up a single column of tableID by name. It
	// returns (nil, nil) when the column does not exist.
	GetMetadataForColumn(tableID int32, name string) (*ColumnDescriptor, error)
}

// StringCodec is the external string<->datum coding collaborator used by
// the type coercion engine (spec §6) to parse string literals into typed
// Datums and to format typed Datums back to strings.
type StringCodec interface {
	// StringToDatum parses text according to out and returns the resulting
	// Datum. Implementations may refine out's precision/scale in place
	// (e.g. inferring DECIMAL scale from the literal's digit count).
	StringToDatum(text string, out *types.TypeInfo) (types.Datum, error)

	// DatumToString formats d, which must be tagged by t, back to text.
	DatumToString(d types.Datum, t types.TypeInfo) (string, error)
}
