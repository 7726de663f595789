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

package executor

import (
	"context"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/codenotary/sqlbrowser/pkg/connection"
	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/logger"
	"github.com/codenotary/sqlbrowser/pkg/sqlbuilder"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
)

const (
	OpSelect         = "select"
	OpInsert         = "insert"
	OpUpdate         = "update"
	OpDelete         = "delete"
	OpCreateTable    = "create_table"
	OpDropTable      = "drop_table"
	OpCreateDatabase = "create_database"
	OpUseDatabase    = "use_database"
)

var (
	// ErrNoConnection is returned when an operation is requested without a connection
	ErrNoConnection = errors.Connection("no connection to database").WithCode(errors.CodConnectionDoesNotExist)

	// ErrNoDatabase is returned by table and row operations while no database is selected
	ErrNoDatabase = errors.Validation("please select a database first")
)

// Executor runs statements built by sqlbuilder against a caller supplied
// connection. It holds no connection or session state of its own.
type Executor struct {
	logger  logger.Logger
	metrics Metrics
}

func New(log logger.Logger, metrics Metrics) *Executor {
	if log == nil {
		log = logger.NewSimpleLogger("sqlbrowser executor", os.Stderr)
	}
	if metrics == nil {
		metrics = NewNopMetrics()
	}

	return &Executor{
		logger:  log,
		metrics: metrics,
	}
}

// ValidateConnection fails when conn is absent or no longer usable
func (e *Executor) ValidateConnection(ctx context.Context, conn connection.Conn) error {
	if conn == nil {
		return ErrNoConnection
	}

	if v := reflect.ValueOf(conn); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrNoConnection
	}

	if err := conn.PingContext(ctx); err != nil {
		return errors.Wrap(err, "connection is closed").
			WithKind(errors.KindConnection).
			WithCode(errors.CodConnectionDoesNotExist)
	}

	return nil
}

// ValidateInput fails when value is nil, a blank string or an empty value set
func ValidateInput(value interface{}, label string) error {
	empty := errors.Validation("%s cannot be null or empty", label)

	switch v := value.(type) {
	case nil:
		return empty
	case string:
		if strings.TrimSpace(v) == "" {
			return empty
		}
	case *sqlvalue.Fields:
		if v.IsEmpty() {
			return empty
		}
	case sqlvalue.TypedValue:
		if v.IsNull() {
			return empty
		}
	}

	return nil
}

func (e *Executor) requireDatabase(ctx context.Context, conn connection.Conn, sess *Session) error {
	if err := e.ValidateConnection(ctx, conn); err != nil {
		return err
	}
	if !sess.HasDatabase() {
		return ErrNoDatabase
	}
	return nil
}

func (e *Executor) exec(ctx context.Context, conn connection.Conn, sess *Session, op string, stmt *sqlbuilder.Statement) (int64, error) {
	e.logger.Debugf("[%s] %s: %s", sessionID(sess), op, stmt.SQL)

	start := time.Now()
	res, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args()...)
	e.metrics.ObserveStatement(op, time.Since(start), err)

	if err != nil {
		e.logger.Errorf("[%s] %s failed: %v", sessionID(sess), op, err)
		return 0, errors.Query(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Query(err)
	}

	e.metrics.AddRowsAffected(op, n)

	return n, nil
}

func (e *Executor) execText(ctx context.Context, conn connection.Conn, sess *Session, op string, sql string) error {
	_, err := e.exec(ctx, conn, sess, op, &sqlbuilder.Statement{SQL: sql})
	return err
}

// Select runs a read-only statement and materializes every row
func (e *Executor) Select(ctx context.Context, conn connection.Conn, sess *Session, query string) (*sqlvalue.Table, error) {
	if err := e.ValidateConnection(ctx, conn); err != nil {
		return nil, err
	}
	if err := ValidateInput(query, "Query"); err != nil {
		return nil, err
	}

	e.logger.Debugf("[%s] %s: %s", sessionID(sess), OpSelect, query)

	start := time.Now()
	table, err := e.query(ctx, conn, query)
	e.metrics.ObserveStatement(OpSelect, time.Since(start), err)

	if err != nil {
		e.logger.Errorf("[%s] %s failed: %v", sessionID(sess), OpSelect, err)
		return nil, err
	}

	return table, nil
}

func (e *Executor) query(ctx context.Context, conn connection.Conn, query string) (*sqlvalue.Table, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Query(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Query(err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Query(err)
	}

	dbTypes := make([]string, len(cols))
	for i, ct := range types {
		dbTypes[i] = ct.DatabaseTypeName()
	}

	table := &sqlvalue.Table{Columns: cols}

	for rows.Next() {
		raw := make([]interface{}, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Query(err)
		}

		row := make([]sqlvalue.TypedValue, len(cols))
		for i, v := range raw {
			row[i] = sqlvalue.FromDriver(v, dbTypes[i])
		}

		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Query(err)
	}

	return table, nil
}

// Insert binds values in insertion order
func (e *Executor) Insert(ctx context.Context, conn connection.Conn, sess *Session, table string, values *sqlvalue.Fields) (int64, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return 0, err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return 0, err
	}
	if err := ValidateInput(values, "Data"); err != nil {
		return 0, err
	}

	stmt, err := sqlbuilder.BuildInsert(table, values)
	if err != nil {
		return 0, err
	}

	return e.exec(ctx, conn, sess, OpInsert, stmt)
}

// Update binds SET values first and WHERE values after them. Empty
// conditions update the whole table.
func (e *Executor) Update(ctx context.Context, conn connection.Conn, sess *Session, table string, values, conditions *sqlvalue.Fields) (int64, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return 0, err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return 0, err
	}
	if err := ValidateInput(values, "Data"); err != nil {
		return 0, err
	}

	stmt, err := sqlbuilder.BuildUpdate(table, values, conditions)
	if err != nil {
		return 0, err
	}

	return e.exec(ctx, conn, sess, OpUpdate, stmt)
}

// Delete appends where as raw text. Only pass fragments built from known
// column names; DeleteWhere binds its values instead.
func (e *Executor) Delete(ctx context.Context, conn connection.Conn, sess *Session, table, where string) (int64, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return 0, err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return 0, err
	}
	if err := ValidateInput(where, "Where clause"); err != nil {
		return 0, err
	}

	query, err := sqlbuilder.BuildDelete(table, where)
	if err != nil {
		return 0, err
	}

	return e.exec(ctx, conn, sess, OpDelete, &sqlbuilder.Statement{SQL: query})
}

func (e *Executor) DeleteWhere(ctx context.Context, conn connection.Conn, sess *Session, table string, conditions *sqlvalue.Fields) (int64, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return 0, err
	}
	if err := ValidateInput(conditions, "Conditions"); err != nil {
		return 0, err
	}

	stmt, err := sqlbuilder.BuildDeleteWhere(table, conditions)
	if err != nil {
		return 0, err
	}

	return e.exec(ctx, conn, sess, OpDelete, stmt)
}

func (e *Executor) CreateTable(ctx context.Context, conn connection.Conn, sess *Session, table, columnsDDL string) error {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return err
	}
	if err := ValidateInput(columnsDDL, "Columns"); err != nil {
		return err
	}

	query, err := sqlbuilder.BuildCreateTable(table, columnsDDL)
	if err != nil {
		return err
	}

	return e.execText(ctx, conn, sess, OpCreateTable, query)
}

func (e *Executor) DropTable(ctx context.Context, conn connection.Conn, sess *Session, table string) error {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return err
	}

	query, err := sqlbuilder.BuildDropTable(table)
	if err != nil {
		return err
	}

	return e.execText(ctx, conn, sess, OpDropTable, query)
}

// LoadTable returns every row of table in the current database
func (e *Executor) LoadTable(ctx context.Context, conn connection.Conn, sess *Session, table string) (*sqlvalue.Table, error) {
	return e.SelectRecords(ctx, conn, sess, table, "*", nil)
}

// SelectRecords filters table with conditions embedded as literals.
//
// Deprecated: values reach the SQL text as literals. Use Select with a
// statement that does not depend on user supplied values.
func (e *Executor) SelectRecords(ctx context.Context, conn connection.Conn, sess *Session, table, columns string, conditions *sqlvalue.Fields) (*sqlvalue.Table, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return nil, err
	}

	query, err := sqlbuilder.BuildSelect(table, columns, conditions)
	if err != nil {
		return nil, err
	}

	return e.Select(ctx, conn, sess, query)
}

// SwitchDatabase makes database the target of later operations. The session
// is only updated once the server accepted the change.
func (e *Executor) SwitchDatabase(ctx context.Context, conn connection.Conn, sess *Session, database string) error {
	if err := e.ValidateConnection(ctx, conn); err != nil {
		return err
	}
	if sess == nil {
		return errors.Validation("Session cannot be null or empty")
	}

	query, err := sqlbuilder.BuildUseDatabase(database)
	if err != nil {
		return err
	}

	if err := e.execText(ctx, conn, sess, OpUseDatabase, query); err != nil {
		return err
	}

	sess.CurrentDatabase = database

	e.logger.Infof("[%s] using database %s", sess.ID, database)

	return nil
}

// CloseDatabase clears the selection. The server side schema stays as is
// until the next SwitchDatabase.
func (e *Executor) CloseDatabase(sess *Session) {
	if sess == nil {
		return
	}

	sess.CurrentDatabase = ""

	e.logger.Infof("[%s] database closed", sess.ID)
}

func (e *Executor) CreateDatabase(ctx context.Context, conn connection.Conn, sess *Session, database string) error {
	if err := e.ValidateConnection(ctx, conn); err != nil {
		return err
	}

	query, err := sqlbuilder.BuildCreateDatabase(database)
	if err != nil {
		return err
	}

	return e.execText(ctx, conn, sess, OpCreateDatabase, query)
}

func sessionID(sess *Session) string {
	if sess == nil {
		return "-"
	}
	return sess.ID
}
