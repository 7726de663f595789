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

// Fields is an ordered mapping from column name to value. It backs both the
// values of an INSERT/UPDATE and the equality conditions of a WHERE clause.
// Iteration order is insertion order and fixes parameter binding order.
//
// A nil *Fields behaves as an empty mapping.
type Fields struct {
	names  []string
	values map[string]TypedValue
}

func NewFields() *Fields {
	return &Fields{values: make(map[string]TypedValue)}
}

// Set assigns v to name. Re-assigning an existing name keeps its position.
// A nil v is stored as NULL.
func (f *Fields) Set(name string, v TypedValue) *Fields {
	if v == nil {
		v = NewNull()
	}
	if f.values == nil {
		f.values = make(map[string]TypedValue)
	}
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = v
	return f
}

func (f *Fields) Get(name string) (TypedValue, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[name]
	return v, ok
}

func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

func (f *Fields) IsEmpty() bool {
	return f.Len() == 0
}

// Names returns a copy of the column names in insertion order
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.names...)
}

// Values returns the values in insertion order
func (f *Fields) Values() []TypedValue {
	if f == nil {
		return nil
	}
	vals := make([]TypedValue, len(f.names))
	for i, n := range f.names {
		vals[i] = f.values[n]
	}
	return vals
}
