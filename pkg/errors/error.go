/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errors

import (
	"fmt"
	"runtime/debug"
)

// Every error surfaced by the builder, the catalog and the executor
// implements the following interface.
//
// Errors are created with one of the kind-specific constructors:
//
// if strings.TrimSpace(table) == "" {
//    return errors.Validation("table cannot be null or empty")
// }
//
// or wrap a driver failure:
//
// res, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args()...)
// if err != nil {
//    return 0, errors.Query(err)
// }
//
// Callers classify errors by kind with the standard errors.Is:
//
// if errors.Is(err, errors.ErrValidation) { ... }
type Error interface {
	Error() string
	Message() string
	Cause() error
	Code() Code
	Kind() Kind
	Stack() string
}

var (
	// ErrConnection matches any error caused by a missing, closed or broken connection
	ErrConnection = &sqlError{kind: KindConnection, code: CodConnectionException, msg: "connection error"}

	// ErrValidation matches any error caused by a blank, absent or malformed argument
	ErrValidation = &sqlError{kind: KindValidation, code: CodInvalidParameterValue, msg: "validation error"}

	// ErrQuery matches any statement rejected by the server
	ErrQuery = &sqlError{kind: KindQuery, code: CodSyntaxErrorOrAccessRuleViolation, msg: "query error"}
)

type sqlError struct {
	kind   Kind
	code   Code
	number uint16
	msg    string
	cause  error
	stack  string
}

// New creates an error of the given kind with the default code for that kind
func New(kind Kind, message string) *sqlError {
	return &sqlError{
		kind:  kind,
		code:  defaultCodes[kind],
		msg:   message,
		stack: string(debug.Stack()),
	}
}

// Connection creates a connection error
func Connection(format string, args ...interface{}) *sqlError {
	return New(KindConnection, fmt.Sprintf(format, args...))
}

// Validation creates a validation error
func Validation(format string, args ...interface{}) *sqlError {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Wrap annotates err with message. The kind and code of err are kept when
// err was created by this package, otherwise the result is an internal error.
func Wrap(err error, message string) *sqlError {
	if err == nil {
		return nil
	}

	e := &sqlError{
		kind:  KindInternal,
		code:  CodInternalError,
		msg:   message,
		cause: err,
		stack: string(debug.Stack()),
	}

	if se, ok := err.(*sqlError); ok {
		e.kind = se.kind
		e.code = se.code
		e.number = se.number
	}

	return e
}

func (e *sqlError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *sqlError) Message() string {
	return e.msg
}

func (e *sqlError) Cause() error {
	if e.cause == nil {
		return e
	}
	return e.cause
}

func (e *sqlError) Unwrap() error {
	return e.cause
}

func (e *sqlError) Code() Code {
	return e.code
}

func (e *sqlError) Kind() Kind {
	return e.kind
}

// Number is the server-side error number, 0 when the error did not
// originate from the server.
func (e *sqlError) Number() uint16 {
	return e.number
}

func (e *sqlError) Stack() string {
	return e.stack
}

func (e *sqlError) WithCode(code Code) *sqlError {
	e.code = code
	return e
}

// WithKind reclassifies the error, resetting its code to the kind default
func (e *sqlError) WithKind(kind Kind) *sqlError {
	e.kind = kind
	e.code = defaultCodes[kind]
	return e
}

func (e *sqlError) Is(target error) bool {
	t, ok := target.(*sqlError)
	if !ok {
		return false
	}

	switch t {
	case ErrConnection, ErrValidation, ErrQuery:
		return e.kind == t.kind
	}

	return e.kind == t.kind && e.code == t.code && e.msg == t.msg
}
