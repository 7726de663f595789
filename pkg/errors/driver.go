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

package errors

import (
	"database/sql"
	"database/sql/driver"
	stdErrors "errors"

	"github.com/go-sql-driver/mysql"
)

// Query classifies an error returned by the driver while executing a
// statement. Broken or closed connections become connection errors, anything
// else is a query error carrying the server SQLSTATE when available.
func Query(err error) error {
	if err == nil {
		return nil
	}

	if se, ok := err.(*sqlError); ok {
		return se
	}

	if stdErrors.Is(err, driver.ErrBadConn) ||
		stdErrors.Is(err, sql.ErrConnDone) ||
		stdErrors.Is(err, mysql.ErrInvalidConn) {
		return Wrap(err, "connection lost").
			WithKind(KindConnection).
			WithCode(CodConnectionFailure)
	}

	e := Wrap(err, "").WithKind(KindQuery)

	var myErr *mysql.MySQLError
	if stdErrors.As(err, &myErr) {
		e.number = myErr.Number
		if state := Code(myErr.SQLState[:]); state != "" && state[0] != 0 {
			e.code = state
		}
	}

	return e
}
