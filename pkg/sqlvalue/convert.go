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

package sqlvalue

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var supportedTimeFormats = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FromDriver converts a scanned cell into a TypedValue. dbType is the
// driver-reported column type name (e.g. "INT", "UNSIGNED BIGINT",
// "DECIMAL", "DATETIME"); it only matters for cells delivered as text,
// which is how the text protocol returns every non-NULL value.
func FromDriver(src interface{}, dbType string) TypedValue {
	switch v := src.(type) {
	case nil:
		return NewNull()
	case TypedValue:
		return v
	case int64:
		return NewInteger(v)
	case int32:
		return NewInteger(int64(v))
	case int:
		return NewInteger(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return NewVarchar(strconv.FormatUint(v, 10))
		}
		return NewInteger(int64(v))
	case uint32:
		return NewInteger(int64(v))
	case float64:
		return NewFloat64(v)
	case float32:
		return NewFloat64(float64(v))
	case bool:
		return NewBool(v)
	case time.Time:
		return NewDate(v)
	case []byte:
		return fromText(string(v), dbType)
	case string:
		return fromText(v, dbType)
	}
	return NewVarchar(fmt.Sprintf("%v", src))
}

func fromText(s string, dbType string) TypedValue {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	t = strings.TrimPrefix(t, "UNSIGNED ")

	switch t {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR":
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return NewInteger(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return FromDriver(u, dbType)
		}
	case "FLOAT", "DOUBLE", "REAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return NewFloat64(f)
		}
	case "DECIMAL", "NUMERIC":
		if exact, ok := ExactDecimal(s); ok {
			return NewVarchar(exact)
		}
	case "DATE", "DATETIME", "TIMESTAMP":
		for _, layout := range supportedTimeFormats {
			if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return NewDate(ts)
			}
		}
	case "BOOL", "BOOLEAN":
		if b, err := strconv.ParseBool(s); err == nil {
			return NewBool(b)
		}
	}

	return NewVarchar(s)
}

// ExactDecimal reports whether s is a decimal number and renders it without
// loss, keeping its scale: "010.50" becomes "10.50".
func ExactDecimal(s string) (string, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	if e := d.Exponent(); e < 0 {
		return d.StringFixed(-e), true
	}
	return d.String(), true
}
