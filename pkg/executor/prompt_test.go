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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type answer struct {
	value string
	ok    bool
}

type scriptedPort struct {
	answers  map[string]answer
	confirm  bool
	labels   []string
	initials []string
	confirms []string
}

func (p *scriptedPort) PromptValue(label, initial string) (string, bool) {
	p.labels = append(p.labels, label)
	p.initials = append(p.initials, initial)

	a, ok := p.answers[label]
	if !ok {
		return "", false
	}
	return a.value, a.ok
}

func (p *scriptedPort) PromptConfirm(message string) bool {
	p.confirms = append(p.confirms, message)
	return p.confirm
}

func expectDescribe(mock sqlmock.Sqlmock, query string, cols ...[2]string) {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, c := range cols {
		rows.AddRow(c[0], c[1], "YES", "", nil, "")
	}
	mock.ExpectQuery(query).WillReturnRows(rows)
}

func displayedUsers() *sqlvalue.Table {
	return &sqlvalue.Table{
		Columns: []string{"id", "name", "nick"},
		Rows: [][]sqlvalue.TypedValue{
			{sqlvalue.NewInteger(1), sqlvalue.NewVarchar("Bob"), sqlvalue.NewNull()},
			{sqlvalue.NewInteger(2), sqlvalue.NewVarchar("Eve"), sqlvalue.NewVarchar("e")},
		},
	}
}

var usersColumns = [][2]string{{"id", "int"}, {"name", "varchar(50)"}, {"nick", "text"}}

func TestInsertWithPrompt(t *testing.T) {
	e, _, db, mock := setup(t)
	sess := NewSession("shop")

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)
	mock.ExpectExec("INSERT INTO `users` (`id`, `name`) VALUES (?, ?)").
		WithArgs(int64(1), "007").
		WillReturnResult(sqlmock.NewResult(1, 1))

	port := &scriptedPort{answers: map[string]answer{
		"Insert value for id (int)":          {"1", true},
		"Insert value for name (varchar(50))": {"007", true},
		"Insert value for nick (text)":        {"  ", true},
	}}

	res, err := e.InsertWithPrompt(context.Background(), db, sess, "users", port)
	require.NoError(t, err)
	require.Equal(t, PromptResult{Executed: true, RowsAffected: 1}, res)
	require.Equal(t, []string{
		"Insert value for id (int)",
		"Insert value for name (varchar(50))",
		"Insert value for nick (text)",
	}, port.labels)
	require.Equal(t, []string{"", "", ""}, port.initials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWithPromptAllDismissedIsNoop(t *testing.T) {
	e, ml, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)

	before := testutil.ToFloat64(metricsSkipped.WithLabelValues(OpInsert))

	res, err := e.InsertWithPrompt(context.Background(), db, NewSession("shop"), "users", &scriptedPort{})
	require.NoError(t, err)
	require.Equal(t, PromptResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Equal(t, before+1, testutil.ToFloat64(metricsSkipped.WithLabelValues(OpInsert)))
	require.True(t, ml.Contains("insert on users skipped"))
}

func TestInsertWithPromptPreconditions(t *testing.T) {
	e, _, db, mock := setup(t)
	ctx := context.Background()

	_, err := e.InsertWithPrompt(ctx, db, NewSession(""), "users", &scriptedPort{})
	require.ErrorIs(t, err, ErrNoDatabase)

	_, err = e.InsertWithPrompt(ctx, db, NewSession("shop"), "users", nil)
	require.ErrorIs(t, err, errors.ErrValidation)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithPrompt(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)
	mock.ExpectExec("UPDATE `users` SET `name` = ?, `nick` = ? WHERE `id` = ? AND `name` = ? AND `nick` IS NULL").
		WithArgs("Robert", "bobby", int64(1), "Bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	port := &scriptedPort{answers: map[string]answer{
		"Update value for id (int)":           {"", true},
		"Update value for name (varchar(50))": {"Robert", true},
		"Update value for nick (text)":        {"bobby", true},
	}}

	res, err := e.UpdateWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 0, port)
	require.NoError(t, err)
	require.Equal(t, PromptResult{Executed: true, RowsAffected: 1}, res)
	require.Equal(t, []string{"1", "Bob", ""}, port.initials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithPromptNoChangesIsNoop(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)

	port := &scriptedPort{answers: map[string]answer{
		"Update value for name (varchar(50))": {"Robert", false},
	}}

	res, err := e.UpdateWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 1, port)
	require.NoError(t, err)
	require.Equal(t, PromptResult{}, res)
	require.Len(t, port.labels, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithPromptRequiresSelectedRow(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)

	_, err := e.UpdateWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), -1, &scriptedPort{})
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Equal(t, "please select a row first", err.Error())
}

func TestUpdateWithPromptColumnNotDisplayed(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", append(usersColumns, [2]string{"email", "varchar(80)"})...)

	_, err := e.UpdateWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 0, &scriptedPort{})
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Equal(t, "column email is not displayed", err.Error())
}

func TestDeleteWithPrompt(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)
	mock.ExpectExec("DELETE FROM `users` WHERE `id` = ? AND `name` = ? AND `nick` = ?").
		WithArgs(int64(2), "Eve", "e").
		WillReturnResult(sqlmock.NewResult(0, 1))

	port := &scriptedPort{confirm: true}

	res, err := e.DeleteWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 1, port)
	require.NoError(t, err)
	require.Equal(t, PromptResult{Executed: true, RowsAffected: 1}, res)
	require.Equal(t, []string{ConfirmDelete}, port.confirms)
	require.Empty(t, port.labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithPromptDeclined(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)

	res, err := e.DeleteWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 0, &scriptedPort{})
	require.NoError(t, err)
	require.Equal(t, PromptResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDropTableWithPrompt(t *testing.T) {
	e, _, db, mock := setup(t)
	ctx := context.Background()
	sess := NewSession("shop")

	port := &scriptedPort{}

	dropped, err := e.DropTableWithPrompt(ctx, db, sess, "users", port)
	require.NoError(t, err)
	require.False(t, dropped)
	require.Equal(t, []string{"Are you sure you want to drop the table: users?"}, port.confirms)

	mock.ExpectExec("DROP TABLE `users`").WillReturnResult(sqlmock.NewResult(0, 0))

	port.confirm = true
	dropped, err = e.DropTableWithPrompt(ctx, db, sess, "users", port)
	require.NoError(t, err)
	require.True(t, dropped)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWithPromptKeepsExactNumbers(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`ledger`",
		[2]string{"id", "bigint unsigned"},
		[2]string{"amount", "decimal(30,10)"},
		[2]string{"rate", "double"},
	)
	mock.ExpectExec("INSERT INTO `ledger` (`id`, `amount`, `rate`) VALUES (?, ?, ?)").
		WithArgs("18446744073709551615", "12345678901234567.123", 0.25).
		WillReturnResult(sqlmock.NewResult(0, 1))

	port := &scriptedPort{answers: map[string]answer{
		"Insert value for id (bigint unsigned)":    {"18446744073709551615", true},
		"Insert value for amount (decimal(30,10))": {"12345678901234567.123", true},
		"Insert value for rate (double)":           {"0.25", true},
	}}

	res, err := e.InsertWithPrompt(context.Background(), db, NewSession("shop"), "ledger", port)
	require.NoError(t, err)
	require.True(t, res.Executed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithPromptMatchesDecimalRow(t *testing.T) {
	e, _, db, mock := setup(t)

	displayed := &sqlvalue.Table{
		Columns: []string{"id", "amount"},
		Rows: [][]sqlvalue.TypedValue{{
			sqlvalue.FromDriver([]byte("18446744073709551615"), "UNSIGNED BIGINT"),
			sqlvalue.FromDriver([]byte("12345678901234567.1234567891"), "DECIMAL"),
		}},
	}

	expectDescribe(mock, "DESCRIBE `shop`.`ledger`",
		[2]string{"id", "bigint unsigned"},
		[2]string{"amount", "decimal(30,10)"},
	)
	mock.ExpectExec("UPDATE `ledger` SET `amount` = ? WHERE `id` = ? AND `amount` = ?").
		WithArgs("0.10", "18446744073709551615", "12345678901234567.1234567891").
		WillReturnResult(sqlmock.NewResult(0, 1))

	port := &scriptedPort{answers: map[string]answer{
		"Update value for amount (decimal(30,10))": {"0.10", true},
	}}

	res, err := e.UpdateWithPrompt(context.Background(), db, NewSession("shop"), "ledger", displayed, 0, port)
	require.NoError(t, err)
	require.Equal(t, PromptResult{Executed: true, RowsAffected: 1}, res)
	require.Equal(t, []string{"18446744073709551615", "12345678901234567.1234567891"}, port.initials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithPromptNoMatchingRow(t *testing.T) {
	e, _, db, mock := setup(t)

	expectDescribe(mock, "DESCRIBE `shop`.`users`", usersColumns...)
	mock.ExpectExec("DELETE FROM `users` WHERE `id` = ? AND `name` = ? AND `nick` = ?").
		WithArgs(int64(2), "Eve", "e").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := e.DeleteWithPrompt(context.Background(), db, NewSession("shop"), "users", displayedUsers(), 1, &scriptedPort{confirm: true})
	require.NoError(t, err)
	require.Equal(t, PromptResult{Executed: true}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}
