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
	"math"
	"testing"
	"time"

	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTypedValues(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	var tests = []struct {
		value    TypedValue
		typ      SQLValueType
		raw      interface{}
		rendered string
	}{
		{NewNull(), NullType, nil, "NULL"},
		{NewInteger(-7), IntegerType, int64(-7), "-7"},
		{NewFloat64(2.5), FloatType, 2.5, "2.5"},
		{NewVarchar("O'Brien"), TextType, "O'Brien", "O'Brien"},
		{NewBool(true), BooleanType, true, "true"},
		{NewDate(ts), DateType, ts, "2024-03-01 10:30:00"},
		{NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), DateType, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.rendered, func(t *testing.T) {
			require.Equal(t, tt.typ, tt.value.Type())
			require.Equal(t, tt.raw, tt.value.RawValue())
			require.Equal(t, tt.rendered, tt.value.String())
			require.Equal(t, tt.typ == NullType, tt.value.IsNull())
		})
	}
}

func TestInfer(t *testing.T) {
	require.Equal(t, NewInteger(42), Infer("42"))
	require.Equal(t, NewFloat64(4.25), Infer("4.25"))
	require.Equal(t, NewBool(false), Infer("false"))
	require.Equal(t, NewVarchar("True"), Infer("True"))
	require.Equal(t, NewVarchar("NaN"), Infer("NaN"))
	require.Equal(t, NewFloat64(0.1), Infer("0.1"))
	require.Equal(t, NewVarchar("18446744073709551615"), Infer("18446744073709551615"))
	require.Equal(t, NewVarchar("12345678901234567.123"), Infer("12345678901234567.123"))
	require.Equal(t, NewVarchar("1e400"), Infer("1e400"))
	require.Equal(t, NewVarchar("1 OR 1=1"), Infer("1 OR 1=1"))
}

func TestFieldsKeepInsertionOrder(t *testing.T) {
	f := NewFields().
		Set("name", NewVarchar("Alice")).
		Set("age", NewInteger(30)).
		Set("name", NewVarchar("Bob")).
		Set("nickname", nil)

	require.Equal(t, 3, f.Len())
	require.Equal(t, []string{"name", "age", "nickname"}, f.Names())
	require.Equal(t, []TypedValue{NewVarchar("Bob"), NewInteger(30), NewNull()}, f.Values())

	v, ok := f.Get("age")
	require.True(t, ok)
	require.Equal(t, NewInteger(30), v)

	_, ok = f.Get("missing")
	require.False(t, ok)

	var zero Fields
	zero.Set("a", NewInteger(1))
	require.Equal(t, 1, zero.Len())
}

func TestNilFields(t *testing.T) {
	var f *Fields

	require.True(t, f.IsEmpty())
	require.Zero(t, f.Len())
	require.Nil(t, f.Names())
	require.Nil(t, f.Values())

	_, ok := f.Get("x")
	require.False(t, ok)
}

func TestTableCell(t *testing.T) {
	tbl := &Table{
		Columns: []string{"id", "name"},
		Rows: [][]TypedValue{
			{NewInteger(1), NewVarchar("Bob")},
		},
	}

	require.Equal(t, 1, tbl.Len())
	require.Equal(t, 1, tbl.ColumnIndex("name"))
	require.Equal(t, -1, tbl.ColumnIndex("age"))

	v, err := tbl.Cell(0, "name")
	require.NoError(t, err)
	require.Equal(t, NewVarchar("Bob"), v)

	_, err = tbl.Cell(1, "name")
	require.ErrorIs(t, err, errors.ErrValidation)

	_, err = tbl.Cell(0, "age")
	require.ErrorIs(t, err, errors.ErrValidation)

	require.Equal(t, [][]string{{"1", "Bob"}}, tbl.StringRows())

	var empty *Table
	require.Zero(t, empty.Len())
}

func TestFromDriver(t *testing.T) {
	ts := time.Date(2023, 12, 24, 18, 0, 0, 0, time.UTC)

	var tests = []struct {
		name     string
		src      interface{}
		dbType   string
		expected TypedValue
	}{
		{"nil", nil, "INT", NewNull()},
		{"int64", int64(5), "", NewInteger(5)},
		{"int32", int32(6), "", NewInteger(6)},
		{"float32", float32(0.5), "", NewFloat64(0.5)},
		{"float64", 1.5, "", NewFloat64(1.5)},
		{"bool", true, "", NewBool(true)},
		{"time", ts, "", NewDate(ts)},
		{"int text", []byte("12"), "INT", NewInteger(12)},
		{"unsigned text", []byte("42"), "UNSIGNED BIGINT", NewInteger(42)},
		{"unsigned max text", []byte("18446744073709551615"), "UNSIGNED BIGINT", NewVarchar("18446744073709551615")},
		{"uint64", uint64(9), "", NewInteger(9)},
		{"uint64 max", uint64(math.MaxUint64), "", NewVarchar("18446744073709551615")},
		{"double text", []byte("3.5"), "DOUBLE", NewFloat64(3.5)},
		{"decimal text", []byte("10.25"), "DECIMAL", NewVarchar("10.25")},
		{"decimal scale", []byte("10.50"), "DECIMAL", NewVarchar("10.50")},
		{"decimal wide", []byte("12345678901234567.1234567891"), "NUMERIC", NewVarchar("12345678901234567.1234567891")},
		{"datetime text", []byte("2023-12-24 18:00:00"), "DATETIME", NewDate(ts)},
		{"date text", "2023-12-24", "DATE", NewDate(time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC))},
		{"varchar", []byte("Bob"), "VARCHAR", NewVarchar("Bob")},
		{"no type", "Bob", "", NewVarchar("Bob")},
		{"bad int", []byte("abc"), "INT", NewVarchar("abc")},
		{"zero date", []byte("0000-00-00"), "DATE", NewVarchar("0000-00-00")},
		{"typed", NewInteger(3), "", NewInteger(3)},
		{"other", struct{ A int }{1}, "", NewVarchar("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FromDriver(tt.src, tt.dbType))
		})
	}
}

func TestExactDecimal(t *testing.T) {
	for raw, expected := range map[string]string{
		"10.50":                    "10.50",
		" 010.5 ":                  "10.5",
		"-0.001":                   "-0.001",
		"1e3":                      "1000",
		"99999999999999999999.999": "99999999999999999999.999",
	} {
		exact, ok := ExactDecimal(raw)
		require.True(t, ok, raw)
		require.Equal(t, expected, exact, raw)
	}

	_, ok := ExactDecimal("1.2.3")
	require.False(t, ok)
}
