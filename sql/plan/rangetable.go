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
	"github.com/cragdb/sqlanalyzer/sql"
	"github.com/cragdb/sqlanalyzer/sql/expression"
)

// TableDescriptor identifies the physical (or view) table a
// RangeTableEntry draws from.
type TableDescriptor struct {
	TableID int32
	Name    string
}

// RangeTableEntry is one FROM-clause source: a base table or a view
// (spec §3, §4.7). It exclusively owns its expanded column set and, when
// present, its ViewQuery.
type RangeTableEntry struct {
	RangeVarName string
	TableDesc    TableDescriptor
	ColumnDescs  []sql.ColumnDescriptor
	// ViewQuery is non-nil only for a view RTE; RangeTableEntry owns it
	// exclusively (spec §3 ownership rule).
	ViewQuery *Query
}

// NewRangeTableEntry constructs an RTE with no columns loaded yet.
func NewRangeTableEntry(rangeVarName string, table TableDescriptor) *RangeTableEntry {
	return &RangeTableEntry{RangeVarName: rangeVarName, TableDesc: table}
}

// AddAllColumnDescs populates ColumnDescs from the catalog, including
// system columns (spec §4.7); soft-deleted columns are never loaded here.
func (r *RangeTableEntry) AddAllColumnDescs(catalog sql.Catalog) error {
	descs, err := catalog.GetAllColumnMetadata(r.TableDesc.TableID, true, false)
	if err != nil {
		return err
	}
	r.ColumnDescs = descs
	return nil
}

// GetColumnDesc returns the column named name, consulting the catalog and
// caching any newly fetched descriptor onto r.ColumnDescs (spec §4.7). It
// returns (nil, nil) if the column genuinely does not exist.
func (r *RangeTableEntry) GetColumnDesc(catalog sql.Catalog, name string) (*sql.ColumnDescriptor, error) {
	for i := range r.ColumnDescs {
		if r.ColumnDescs[i].ColumnName == name {
			return &r.ColumnDescs[i], nil
		}
	}

	desc, err := catalog.GetMetadataForColumn(r.TableDesc.TableID, name)
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, nil
	}
	r.ColumnDescs = append(r.ColumnDescs, *desc)
	return &r.ColumnDescs[len(r.ColumnDescs)-1], nil
}

// ExpandStarInTargetlist appends one TargetEntry per user (non-system)
// column of r to out, in catalog column order (spec §4.7). rteIdx is the
// RTE's position within the owning Query's range table.
func (r *RangeTableEntry) ExpandStarInTargetlist(catalog sql.Catalog, out *[]*TargetEntry, rteIdx int32) error {
	if len(r.ColumnDescs) == 0 {
		if err := r.AddAllColumnDescs(catalog); err != nil {
			return err
		}
	}

	for _, col := range r.ColumnDescs {
		if col.IsSystem || col.IsDeleted {
			continue
		}
		cv := expression.NewBoundColumnVar(col.ColumnType, col.TableID, col.ColumnID, rteIdx)
		*out = append(*out, NewTargetEntry(col.ColumnName, cv, false))
	}
	return nil
}
