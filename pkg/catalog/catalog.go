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
	"context"
	"database/sql"

	"github.com/codenotary/sqlbrowser/pkg/connection"
	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/sqlbuilder"
)

const (
	SQLShowDatabases = "SHOW DATABASES"
	SQLListTables    = "SELECT table_name FROM information_schema.tables WHERE table_schema = ?"
	SQLDescribe      = "DESCRIBE "
)

// SystemDatabases are never listed
var SystemDatabases = map[string]struct{}{
	"information_schema": {},
	"mysql":              {},
	"performance_schema": {},
	"sys":                {},
}

func IsSystemDatabase(name string) bool {
	_, ok := SystemDatabases[name]
	return ok
}

// DatabaseNode is one database with its tables, in discovery order
type DatabaseNode struct {
	Name   string
	Tables []string
}

// ListDatabases returns the non-system databases in the order the server
// returned them.
func ListDatabases(ctx context.Context, conn connection.Conn) ([]string, error) {
	names, err := queryStrings(ctx, conn, SQLShowDatabases)
	if err != nil {
		return nil, err
	}

	dbs := make([]string, 0, len(names))
	for _, n := range names {
		if !IsSystemDatabase(n) {
			dbs = append(dbs, n)
		}
	}

	return dbs, nil
}

// ListTables returns the tables of database in discovery order
func ListTables(ctx context.Context, conn connection.Conn, database string) ([]string, error) {
	if err := sqlbuilder.ValidateIdentifier(database, "Database"); err != nil {
		return nil, err
	}

	return queryStrings(ctx, conn, SQLListTables, database)
}

// DescribeColumns returns the columns of database.table in declaration order
func DescribeColumns(ctx context.Context, conn connection.Conn, database, table string) ([]ColumnDescriptor, error) {
	qualified, err := sqlbuilder.QualifiedName(database, table)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, SQLDescribe+qualified)
	if err != nil {
		return nil, errors.Query(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Query(err)
	}

	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}

	fieldIdx, ok1 := idx["Field"]
	typeIdx, ok2 := idx["Type"]
	if !ok1 || !ok2 {
		return nil, errors.New(errors.KindQuery, "unexpected column metadata layout").
			WithCode(errors.CodDataException)
	}

	var descriptors []ColumnDescriptor

	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Query(err)
		}

		cd := ColumnDescriptor{
			Name:         raw[fieldIdx].String,
			DeclaredType: raw[typeIdx].String,
		}
		if i, ok := idx["Null"]; ok {
			cd.Nullable = raw[i].String == "YES"
		}
		if i, ok := idx["Key"]; ok {
			cd.Key = raw[i].String
		}
		if i, ok := idx["Default"]; ok && raw[i].Valid {
			def := raw[i].String
			cd.Default = &def
		}
		if i, ok := idx["Extra"]; ok {
			cd.Extra = raw[i].String
		}

		descriptors = append(descriptors, cd)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Query(err)
	}

	return descriptors, nil
}

// Tree returns every non-system database with its tables
func Tree(ctx context.Context, conn connection.Conn) ([]DatabaseNode, error) {
	dbs, err := ListDatabases(ctx, conn)
	if err != nil {
		return nil, err
	}

	nodes := make([]DatabaseNode, len(dbs))
	for i, db := range dbs {
		tables, err := ListTables(ctx, conn, db)
		if err != nil {
			return nil, err
		}
		nodes[i] = DatabaseNode{Name: db, Tables: tables}
	}

	return nodes, nil
}

func queryStrings(ctx context.Context, conn connection.Conn, query string, args ...interface{}) ([]string, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Query(err)
	}
	defer rows.Close()

	var out []string

	for rows.Next() {
		var s sql.NullString
		if err := rows.Scan(&s); err != nil {
			return nil, errors.Query(err)
		}
		out = append(out, s.String)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Query(err)
	}

	return out, nil
}
