/*
Copyright 2026 Codenotary Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqlvalue

import (
	"github.com/codenotary/sqlbrowser/pkg/errors"
)

// Table is a fully materialized query result.
type Table struct {
	Columns []string
	Rows    [][]TypedValue
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value displayed at row for the named column
func (t *Table) Cell(row int, column string) (TypedValue, error) {
	if row < 0 || row >= t.Len() {
		return nil, errors.Validation("please select a row first")
	}

	idx := t.ColumnIndex(column)
	if idx < 0 || idx >= len(t.Rows[row]) {
		return nil, errors.Validation("column %s is not displayed", column)
	}

	return t.Rows[row][idx], nil
}

// StringRows renders every cell with String, as displayed in a grid.
func (t *Table) StringRows() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = make([]string, len(r))
		for j, v := range r {
			out[i][j] = v.String()
		}
	}
	return out
}
