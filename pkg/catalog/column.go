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

package catalog

import (
	"strings"

	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
)

// textLikeTokens mark a declared type as string-typed. Matching is a
// case-sensitive substring test, so "varchar(50)", "mediumtext" and
// "datetime" are text-like while "int", "decimal(10,2)" and "timestamp" are not.
var textLikeTokens = []string{"char", "text", "date"}

var exactNumericTokens = []string{"decimal", "numeric"}

// ColumnDescriptor describes one column as reported by the server
type ColumnDescriptor struct {
	Name         string
	DeclaredType string
	Nullable     bool
	Key          string
	Default      *string
	Extra        string
}

func IsTextLike(declaredType string) bool {
	for _, tok := range textLikeTokens {
		if strings.Contains(declaredType, tok) {
			return true
		}
	}
	return false
}

func (c ColumnDescriptor) IsTextLike() bool {
	return IsTextLike(c.DeclaredType)
}

// IsExactNumeric reports a fixed point column, whose values must not pass
// through a float
func (c ColumnDescriptor) IsExactNumeric() bool {
	t := strings.ToLower(c.DeclaredType)
	for _, tok := range exactNumericTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}

func (c ColumnDescriptor) IsPrimaryKey() bool {
	return c.Key == "PRI"
}

// Literal types a value typed by a user for this column. Text-like columns
// always get a string, as do decimal numbers for fixed point columns; other
// columns get a number or boolean when raw parses as one exactly and fall
// back to a string otherwise.
func (c ColumnDescriptor) Literal(raw string) sqlvalue.TypedValue {
	if c.IsTextLike() {
		return sqlvalue.NewVarchar(raw)
	}
	if c.IsExactNumeric() {
		if exact, ok := sqlvalue.ExactDecimal(raw); ok {
			return sqlvalue.NewVarchar(exact)
		}
	}
	return sqlvalue.Infer(raw)
}
