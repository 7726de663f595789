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
	"fmt"
	"strings"

	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
)

// Placeholder is the positional parameter marker
const Placeholder = "?"

// Statement is SQL text plus the values bound to its placeholders, in order.
type Statement struct {
	SQL    string
	Params []sqlvalue.TypedValue
}

// Args returns the parameters as plain driver values
func (s *Statement) Args() []interface{} {
	args := make([]interface{}, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.RawValue()
	}
	return args
}

func (s *Statement) String() string {
	return s.SQL
}

// BuildInsert produces INSERT INTO `t` (`c1`, ...) VALUES (?, ...) with one
// parameter per entry of values.
func BuildInsert(table string, values *sqlvalue.Fields) (*Statement, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return nil, err
	}

	if values.IsEmpty() {
		return nil, errors.Validation("table name and data cannot be null or empty")
	}

	cols := make([]string, 0, values.Len())
	marks := make([]string, 0, values.Len())

	for _, name := range values.Names() {
		col, err := escapeChecked(name, "Column")
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		marks = append(marks, Placeholder)
	}

	return &Statement{
		SQL:    fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tbl, strings.Join(cols, ", "), strings.Join(marks, ", ")),
		Params: values.Values(),
	}, nil
}

// BuildUpdate produces UPDATE `t` SET `c` = ?, ... WHERE `k` = ? AND ...
// SET parameters come first, then WHERE parameters.
//
// An empty conditions set omits the WHERE clause and the statement updates
// every row of the table. Callers must guard against that.
func BuildUpdate(table string, values, conditions *sqlvalue.Fields) (*Statement, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return nil, err
	}

	if values.IsEmpty() {
		return nil, errors.Validation("table name and data cannot be null or empty")
	}

	sets := make([]string, 0, values.Len())
	for _, name := range values.Names() {
		col, err := escapeChecked(name, "Column")
		if err != nil {
			return nil, err
		}
		sets = append(sets, col+" = "+Placeholder)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(tbl)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))

	params := values.Values()

	where, whereParams, err := parameterizedWhere(conditions)
	if err != nil {
		return nil, err
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
		params = append(params, whereParams...)
	}

	return &Statement{SQL: sb.String(), Params: params}, nil
}

// BuildDeleteWhere produces DELETE FROM `t` WHERE `k` = ? AND ... from a
// non-empty conditions set.
func BuildDeleteWhere(table string, conditions *sqlvalue.Fields) (*Statement, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return nil, err
	}

	if conditions.IsEmpty() {
		return nil, errors.Validation("where clause cannot be null or empty")
	}

	where, params, err := parameterizedWhere(conditions)
	if err != nil {
		return nil, err
	}

	return &Statement{
		SQL:    "DELETE FROM " + tbl + " WHERE " + where,
		Params: params,
	}, nil
}

// parameterizedWhere renders `k` = ? AND ... NULL operands render IS NULL
// and bind nothing.
func parameterizedWhere(conditions *sqlvalue.Fields) (string, []sqlvalue.TypedValue, error) {
	parts := make([]string, 0, conditions.Len())
	params := make([]sqlvalue.TypedValue, 0, conditions.Len())

	for _, name := range conditions.Names() {
		col, err := escapeChecked(name, "Column")
		if err != nil {
			return "", nil, err
		}

		v, _ := conditions.Get(name)
		if v.IsNull() {
			parts = append(parts, col+" IS NULL")
			continue
		}

		parts = append(parts, col+" = "+Placeholder)
		params = append(params, v)
	}

	return strings.Join(parts, " AND "), params, nil
}

// BuildSelect produces SELECT <columns> FROM `t` [WHERE ...]. columns is "*"
// (or blank) for every column, otherwise a comma separated list of column
// names, each escaped. Condition values are embedded as literals.
func BuildSelect(table, columns string, conditions *sqlvalue.Fields) (string, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return "", err
	}

	projection := "*"
	if c := strings.TrimSpace(columns); c != "" && c != "*" {
		names := strings.Split(c, ",")
		escaped := make([]string, len(names))
		for i, n := range names {
			escaped[i], err = escapeChecked(strings.TrimSpace(n), "Column")
			if err != nil {
				return "", err
			}
		}
		projection = strings.Join(escaped, ", ")
	}

	query := "SELECT " + projection + " FROM " + tbl

	if !conditions.IsEmpty() {
		where, err := BuildEqualityFragment(conditions)
		if err != nil {
			return "", err
		}
		query += " WHERE " + where
	}

	return query, nil
}

// BuildDelete produces DELETE FROM `t` [WHERE <where>]. where is raw SQL
// text and is not checked.
func BuildDelete(table, where string) (string, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return "", err
	}

	query := "DELETE FROM " + tbl
	if strings.TrimSpace(where) != "" {
		query += " WHERE " + where
	}

	return query, nil
}

// BuildCreateTable produces CREATE TABLE `t` (<columnsDDL>). The DDL body is
// passed through verbatim.
func BuildCreateTable(table, columnsDDL string) (string, error) {
	if err := ValidateName(table, "Table"); err != nil {
		return "", err
	}

	if strings.TrimSpace(columnsDDL) == "" {
		return "", errors.Validation("columns cannot be null or empty")
	}

	return fmt.Sprintf("CREATE TABLE %s (%s)", EscapeIdentifier(table), columnsDDL), nil
}

func BuildDropTable(table string) (string, error) {
	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return "", err
	}
	return "DROP TABLE " + tbl, nil
}

func BuildCreateDatabase(database string) (string, error) {
	if err := ValidateName(database, "Database"); err != nil {
		return "", err
	}
	return "CREATE DATABASE " + EscapeIdentifier(database), nil
}

func BuildUseDatabase(database string) (string, error) {
	db, err := escapeChecked(database, "Database")
	if err != nil {
		return "", err
	}
	return "USE " + db, nil
}
