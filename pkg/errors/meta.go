/*
Copyright 2024 Codenotary Inc. All rights reserved.

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

// Code is a SQLSTATE class/subclass pair.
type Code string

const (
	CodSuccessCompletion                       Code = "00000"
	CodNoData                                  Code = "02000"
	CodInternalError                           Code = "XX000"
	CodConnectionException                     Code = "08000"
	CodConnectionDoesNotExist                  Code = "08003"
	CodConnectionFailure                       Code = "08006"
	CodSqlclientUnableToEstablishSqlConnection Code = "08001"
	CodDataException                           Code = "22000"
	CodNullValueNotAllowed                     Code = "22004"
	CodInvalidParameterValue                   Code = "22023"
	CodIntegrityConstraintViolation            Code = "23000"
	CodInvalidSchemaName                       Code = "3F000"
	CodSyntaxErrorOrAccessRuleViolation        Code = "42000"
	CodInvalidName                             Code = "42602"
)

// Kind classifies an error for the caller.
type Kind uint8

const (
	KindInternal Kind = iota
	KindConnection
	KindValidation
	KindQuery
)

var kindToString = map[Kind]string{
	KindInternal:   "internal",
	KindConnection: "connection",
	KindValidation: "validation",
	KindQuery:      "query",
}

func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "unknown"
}

var defaultCodes = map[Kind]Code{
	KindInternal:   CodInternalError,
	KindConnection: CodConnectionException,
	KindValidation: CodInvalidParameterValue,
	KindQuery:      CodSyntaxErrorOrAccessRuleViolation,
}
