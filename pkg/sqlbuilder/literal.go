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

package sqlbuilder

import (
	"strings"

	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// FormatLiteral renders v as SQL text: NULL, a bare numeric or boolean token,
// or a single-quoted string with quotes and backslashes escaped.
//
// Deprecated: values must be bound as parameters. Only the ad-hoc read path
// of BuildSelect still embeds literals.
func FormatLiteral(v sqlvalue.TypedValue) string {
	if v == nil || v.IsNull() {
		return "NULL"
	}

	switch v.Type() {
	case sqlvalue.IntegerType, sqlvalue.FloatType, sqlvalue.BooleanType:
		return v.String()
	}

	return "'" + literalEscaper.Replace(v.String()) + "'"
}

// BuildEqualityFragment renders `col` = <literal> AND ... from conditions,
// using IS NULL for NULL operands.
//
// Deprecated: use a parameterized statement (BuildUpdate, BuildDeleteWhere).
func BuildEqualityFragment(conditions *sqlvalue.Fields) (string, error) {
	parts := make([]string, 0, conditions.Len())

	for _, name := range conditions.Names() {
		col, err := escapeChecked(name, "Column")
		if err != nil {
			return "", err
		}

		v, _ := conditions.Get(name)
		if v.IsNull() {
			parts = append(parts, col+" IS NULL")
			continue
		}

		parts = append(parts, col+" = "+FormatLiteral(v))
	}

	return strings.Join(parts, " AND "), nil
}
