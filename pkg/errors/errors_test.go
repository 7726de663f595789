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

package errors_test

import (
	"database/sql"
	"database/sql/driver"
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func Test_Validation(t *testing.T) {
	err := errors.Validation("%s cannot be null or empty", "Table")

	require.Error(t, err)
	require.Equal(t, "Table cannot be null or empty", err.Error())
	require.Equal(t, err.Message(), err.Error())
	require.Equal(t, errors.CodInvalidParameterValue, err.Code())
	require.Equal(t, errors.KindValidation, err.Kind())
	require.ErrorIs(t, err, errors.ErrValidation)
	require.NotErrorIs(t, err, errors.ErrConnection)
	require.NotErrorIs(t, err, errors.ErrQuery)
	require.NotEmpty(t, err.Stack())
}

func Test_Connection(t *testing.T) {
	err := errors.Connection("invalid or closed database connection")

	require.ErrorIs(t, err, errors.ErrConnection)
	require.Equal(t, errors.CodConnectionException, err.Code())
	require.Equal(t, "connection", err.Kind().String())
}

func Test_WrapKeepsKind(t *testing.T) {
	cause := errors.Validation("bad name").WithCode(errors.CodInvalidName)
	wrapped := errors.Wrap(cause, "create table")

	require.Equal(t, "create table: bad name", wrapped.Error())
	require.Equal(t, "create table", wrapped.Message())
	require.Equal(t, errors.CodInvalidName, wrapped.Code())
	require.ErrorIs(t, wrapped, errors.ErrValidation)
	require.Equal(t, cause, wrapped.Cause())

	require.Nil(t, errors.Wrap(nil, "msg"))
}

func Test_WrapForeignError(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("std error"), "msg")

	require.Equal(t, errors.KindInternal, wrapped.Kind())
	require.Equal(t, errors.CodInternalError, wrapped.Code())
	require.NotErrorIs(t, wrapped, errors.ErrQuery)
}

func Test_IsComparesCodeAndMessage(t *testing.T) {
	e1 := errors.Validation("x")
	e2 := errors.Validation("x")
	e3 := errors.Validation("y")

	require.ErrorIs(t, e1, e2)
	require.NotErrorIs(t, e1, e3)
	require.NotErrorIs(t, e1, stdErrors.New("x"))
}

func Test_QueryServerError(t *testing.T) {
	myErr := &mysql.MySQLError{Number: 1146, Message: "Table 'shop.nope' doesn't exist"}
	copy(myErr.SQLState[:], "42S02")

	err := errors.Query(myErr)
	require.ErrorIs(t, err, errors.ErrQuery)
	require.ErrorAs(t, err, &myErr)

	var se errors.Error
	require.True(t, stdErrors.As(err, &se))
	require.Equal(t, errors.Code("42S02"), se.Code())
	require.Contains(t, err.Error(), "doesn't exist")
}

func Test_QueryConnectionLoss(t *testing.T) {
	for _, cause := range []error{driver.ErrBadConn, sql.ErrConnDone, mysql.ErrInvalidConn} {
		err := errors.Query(cause)
		require.ErrorIs(t, err, errors.ErrConnection)
		require.ErrorIs(t, err, cause)
	}
}

func Test_QueryPassThrough(t *testing.T) {
	require.NoError(t, errors.Query(nil))

	v := errors.Validation("already classified")
	require.Equal(t, error(v), errors.Query(v))

	err := errors.Query(fmt.Errorf("syntax"))
	require.ErrorIs(t, err, errors.ErrQuery)
	require.Equal(t, "syntax", err.Error())
}
