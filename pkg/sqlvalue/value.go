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
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type SQLValueType = string

const (
	NullType    SQLValueType = "NULL"
	IntegerType SQLValueType = "INTEGER"
	FloatType   SQLValueType = "FLOAT"
	TextType    SQLValueType = "TEXT"
	BooleanType SQLValueType = "BOOLEAN"
	DateType    SQLValueType = "DATE"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05.999999"
)

// TypedValue is a single cell, parameter or condition operand. The set of
// implementations is closed.
type TypedValue interface {
	Type() SQLValueType
	// RawValue is the plain Go value handed to the driver when binding
	RawValue() interface{}
	String() string
	IsNull() bool

	sealed()
}

type NullValue struct{}

func NewNull() *NullValue {
	return &NullValue{}
}

func (n *NullValue) Type() SQLValueType    { return NullType }
func (n *NullValue) RawValue() interface{} { return nil }
func (n *NullValue) String() string        { return "NULL" }
func (n *NullValue) IsNull() bool          { return true }
func (n *NullValue) sealed()               {}

type Integer struct {
	val int64
}

func NewInteger(val int64) *Integer {
	return &Integer{val: val}
}

func (v *Integer) Type() SQLValueType    { return IntegerType }
func (v *Integer) RawValue() interface{} { return v.val }
func (v *Integer) String() string        { return strconv.FormatInt(v.val, 10) }
func (v *Integer) IsNull() bool          { return false }
func (v *Integer) sealed()               {}

type Float64 struct {
	val float64
}

func NewFloat64(val float64) *Float64 {
	return &Float64{val: val}
}

func (v *Float64) Type() SQLValueType    { return FloatType }
func (v *Float64) RawValue() interface{} { return v.val }
func (v *Float64) String() string        { return strconv.FormatFloat(v.val, 'f', -1, 64) }
func (v *Float64) IsNull() bool          { return false }
func (v *Float64) sealed()               {}

type Varchar struct {
	val string
}

func NewVarchar(val string) *Varchar {
	return &Varchar{val: val}
}

func (v *Varchar) Type() SQLValueType    { return TextType }
func (v *Varchar) RawValue() interface{} { return v.val }
func (v *Varchar) String() string        { return v.val }
func (v *Varchar) IsNull() bool          { return false }
func (v *Varchar) sealed()               {}

type Bool struct {
	val bool
}

func NewBool(val bool) *Bool {
	return &Bool{val: val}
}

func (v *Bool) Type() SQLValueType    { return BooleanType }
func (v *Bool) RawValue() interface{} { return v.val }
func (v *Bool) String() string        { return strconv.FormatBool(v.val) }
func (v *Bool) IsNull() bool          { return false }
func (v *Bool) sealed()               {}

type Date struct {
	val time.Time
}

func NewDate(val time.Time) *Date {
	return &Date{val: val}
}

func (v *Date) Type() SQLValueType    { return DateType }
func (v *Date) RawValue() interface{} { return v.val }
func (v *Date) IsNull() bool          { return false }
func (v *Date) sealed()               {}

// String renders a calendar date without a time part when the time of day is
// exactly midnight.
func (v *Date) String() string {
	h, m, s := v.val.Clock()
	if h == 0 && m == 0 && s == 0 && v.val.Nanosecond() == 0 {
		return v.val.Format(dateLayout)
	}
	return v.val.Format(datetimeLayout)
}

// Infer picks the narrowest value type able to represent raw exactly:
// integer, float, boolean, then text. Numbers a float64 would round (more
// than int64 can hold, or too many significant digits) stay as text so the
// server converts them itself.
func Infer(raw string) TypedValue {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NewInteger(i)
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) && decimal.NewFromFloat(f).Equal(d) {
			return NewFloat64(f)
		}
		return NewVarchar(raw)
	}
	if raw == "true" || raw == "false" {
		return NewBool(raw == "true")
	}
	return NewVarchar(raw)
}
