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
	"regexp"
	"strings"
	"unicode"

	"github.com/codenotary/sqlbrowser/pkg/errors"
)

// Delimiter quotes identifiers in MySQL-compatible dialects
const Delimiter = "`"

// MaxIdentifierLength is the server limit for database, table and column names
const MaxIdentifierLength = 64

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// EscapeIdentifier wraps name in backticks, doubling any backtick inside it.
func EscapeIdentifier(name string) string {
	return Delimiter + strings.ReplaceAll(name, Delimiter, Delimiter+Delimiter) + Delimiter
}

// ValidateIdentifier checks that name can be used to reference an existing
// object: non-blank, within the length limit, without control characters.
func ValidateIdentifier(name, label string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Validation("%s cannot be null or empty", label)
	}

	if len(name) > MaxIdentifierLength {
		return errors.Validation("%s name exceeds %d characters", label, MaxIdentifierLength).
			WithCode(errors.CodInvalidName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.Validation("%s name contains control characters", label).
				WithCode(errors.CodInvalidName)
		}
	}

	return nil
}

// ValidateName checks a name for an object about to be created. On top of
// ValidateIdentifier only letters, digits and underscore are accepted.
func ValidateName(name, label string) error {
	if err := ValidateIdentifier(name, label); err != nil {
		return err
	}

	if !namePattern.MatchString(name) {
		return errors.Validation("name can only contain letters, numbers and underscore").
			WithCode(errors.CodInvalidName)
	}

	return nil
}

func escapeChecked(name, label string) (string, error) {
	if err := ValidateIdentifier(name, label); err != nil {
		return "", err
	}
	return EscapeIdentifier(name), nil
}

// QualifiedName renders `database`.`table`
func QualifiedName(database, table string) (string, error) {
	db, err := escapeChecked(database, "Database")
	if err != nil {
		return "", err
	}

	tbl, err := escapeChecked(table, "Table")
	if err != nil {
		return "", err
	}

	return db + "." + tbl, nil
}
