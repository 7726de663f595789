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
	"fmt"
	"strings"

	"github.com/codenotary/sqlbrowser/pkg/catalog"
	"github.com/codenotary/sqlbrowser/pkg/connection"
	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
)

const (
	InsertPromptFormat = "Insert value for %s (%s)"
	UpdatePromptFormat = "Update value for %s (%s)"
	ConfirmDelete      = "Are you sure you want to delete this record?"
	ConfirmDropFormat  = "Are you sure you want to drop the table: %s?"
)

// PromptPort asks a human for input. PromptValue returns false when the
// question was dismissed; initial is offered as the default answer.
type PromptPort interface {
	PromptValue(label, initial string) (string, bool)
	PromptConfirm(message string) bool
}

// PromptResult is the outcome of a prompt driven flow. Executed is false
// when nothing was asked of the server, so a statement that matched no row
// (Executed, RowsAffected 0) can be told apart from a skipped one.
type PromptResult struct {
	Executed     bool
	RowsAffected int64
}

func ran(n int64, err error) (PromptResult, error) {
	if err != nil {
		return PromptResult{}, err
	}
	return PromptResult{Executed: true, RowsAffected: n}, nil
}

func answered(port PromptPort, label, initial string) (string, bool) {
	v, ok := port.PromptValue(label, initial)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (e *Executor) describe(ctx context.Context, conn connection.Conn, sess *Session, table string, port PromptPort) ([]catalog.ColumnDescriptor, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return nil, err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return nil, err
	}
	if port == nil {
		return nil, errors.Validation("Prompt cannot be null or empty")
	}

	return catalog.DescribeColumns(ctx, conn, sess.CurrentDatabase, table)
}

// InsertWithPrompt asks a value for every column of table. Dismissed or blank
// answers leave the column out of the statement; nothing is executed when
// every column was left out.
func (e *Executor) InsertWithPrompt(ctx context.Context, conn connection.Conn, sess *Session, table string, port PromptPort) (PromptResult, error) {
	cols, err := e.describe(ctx, conn, sess, table, port)
	if err != nil {
		return PromptResult{}, err
	}

	values := sqlvalue.NewFields()

	for _, col := range cols {
		v, ok := answered(port, fmt.Sprintf(InsertPromptFormat, col.Name, col.DeclaredType), "")
		if !ok {
			continue
		}
		values.Set(col.Name, col.Literal(v))
	}

	if values.IsEmpty() {
		e.skipped(sess, OpInsert, table)
		return PromptResult{}, nil
	}

	return ran(e.Insert(ctx, conn, sess, table, values))
}

// UpdateWithPrompt edits the row displayed at position row. Every column is
// offered with its displayed value as default; the row is located by
// matching all displayed values.
func (e *Executor) UpdateWithPrompt(ctx context.Context, conn connection.Conn, sess *Session, table string, displayed *sqlvalue.Table, row int, port PromptPort) (PromptResult, error) {
	cols, err := e.describe(ctx, conn, sess, table, port)
	if err != nil {
		return PromptResult{}, err
	}

	values := sqlvalue.NewFields()
	conditions := sqlvalue.NewFields()

	for _, col := range cols {
		old, err := displayed.Cell(row, col.Name)
		if err != nil {
			return PromptResult{}, err
		}

		conditions.Set(col.Name, old)

		initial := ""
		if !old.IsNull() {
			initial = old.String()
		}

		v, ok := answered(port, fmt.Sprintf(UpdatePromptFormat, col.Name, col.DeclaredType), initial)
		if !ok {
			continue
		}
		values.Set(col.Name, col.Literal(v))
	}

	if values.IsEmpty() {
		e.skipped(sess, OpUpdate, table)
		return PromptResult{}, nil
	}

	return ran(e.Update(ctx, conn, sess, table, values, conditions))
}

// DeleteWithPrompt removes the row displayed at position row after
// confirmation. The row is located by matching all displayed values.
func (e *Executor) DeleteWithPrompt(ctx context.Context, conn connection.Conn, sess *Session, table string, displayed *sqlvalue.Table, row int, port PromptPort) (PromptResult, error) {
	cols, err := e.describe(ctx, conn, sess, table, port)
	if err != nil {
		return PromptResult{}, err
	}

	conditions := sqlvalue.NewFields()

	for _, col := range cols {
		v, err := displayed.Cell(row, col.Name)
		if err != nil {
			return PromptResult{}, err
		}
		conditions.Set(col.Name, v)
	}

	if conditions.IsEmpty() || !port.PromptConfirm(ConfirmDelete) {
		e.skipped(sess, OpDelete, table)
		return PromptResult{}, nil
	}

	return ran(e.DeleteWhere(ctx, conn, sess, table, conditions))
}

// DropTableWithPrompt drops table once the drop was confirmed. It reports
// whether the table was dropped.
func (e *Executor) DropTableWithPrompt(ctx context.Context, conn connection.Conn, sess *Session, table string, port PromptPort) (bool, error) {
	if err := e.requireDatabase(ctx, conn, sess); err != nil {
		return false, err
	}
	if err := ValidateInput(table, "Table"); err != nil {
		return false, err
	}
	if port == nil {
		return false, errors.Validation("Prompt cannot be null or empty")
	}

	if !port.PromptConfirm(fmt.Sprintf(ConfirmDropFormat, table)) {
		e.skipped(sess, OpDropTable, table)
		return false, nil
	}

	if err := e.DropTable(ctx, conn, sess, table); err != nil {
		return false, err
	}

	return true, nil
}

func (e *Executor) skipped(sess *Session, op, table string) {
	e.metrics.IncSkipped(op)
	e.logger.Infof("[%s] %s on %s skipped, nothing to do", sessionID(sess), op, table)
}
