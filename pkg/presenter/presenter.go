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

package presenter

import (
	"fmt"
	"io"
	"sort"

	"github.com/codenotary/sqlbrowser/pkg/catalog"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

const (
	SuccessPrefix = "SUCCESS: "
	ErrorPrefix   = "ERROR: "
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "info"
}

// Presenter renders results and status messages for a human
type Presenter interface {
	ShowTable(table *sqlvalue.Table)
	ShowStatus(message string, level Level)
}

// Terminal renders to a text stream, tables through tablewriter and status
// lines colored by level.
type Terminal struct {
	out     io.Writer
	colors  map[Level]*color.Color
	noColor bool
}

var _ Presenter = (*Terminal)(nil)

func NewTerminal(out io.Writer, noColor bool) *Terminal {
	t := &Terminal{
		out:     out,
		noColor: noColor,
		colors: map[Level]*color.Color{
			LevelInfo:    color.New(color.FgCyan),
			LevelSuccess: color.New(color.FgGreen),
			LevelError:   color.New(color.FgRed, color.Bold),
		},
	}

	if noColor {
		for _, c := range t.colors {
			c.DisableColor()
		}
	}

	return t
}

// FormatStatus prefixes message the way it is shown to the user
func FormatStatus(message string, level Level) string {
	switch level {
	case LevelSuccess:
		return SuccessPrefix + message
	case LevelError:
		return ErrorPrefix + message
	}
	return message
}

func (t *Terminal) ShowStatus(message string, level Level) {
	c, ok := t.colors[level]
	if !ok {
		c = t.colors[LevelInfo]
	}
	fmt.Fprintln(t.out, c.Sprint(FormatStatus(message, level)))
}

func (t *Terminal) ShowTable(table *sqlvalue.Table) {
	if table == nil {
		return
	}

	consoleTable := tablewriter.NewWriter(t.out)
	consoleTable.SetHeader(table.Columns)
	consoleTable.AppendBulk(table.StringRows())
	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.SetAutoWrapText(false)
	consoleTable.Render()

	fmt.Fprintf(t.out, "%d row(s)\n", table.Len())
}

// ShowList renders names as a one column table titled header
func (t *Terminal) ShowList(header string, names []string) {
	rows := make([][]sqlvalue.TypedValue, len(names))
	for i, n := range names {
		rows[i] = []sqlvalue.TypedValue{sqlvalue.NewVarchar(n)}
	}
	t.ShowTable(&sqlvalue.Table{Columns: []string{header}, Rows: rows})
}

// ShowTree renders databases with their tables indented below them
func (t *Terminal) ShowTree(nodes []catalog.DatabaseNode) {
	for _, n := range nodes {
		fmt.Fprintln(t.out, n.Name)
		for i, tbl := range n.Tables {
			branch := "├── "
			if i == len(n.Tables)-1 {
				branch = "└── "
			}
			fmt.Fprintln(t.out, branch+tbl)
		}
	}
}

// ShowColumns renders column descriptors in declaration order
func (t *Terminal) ShowColumns(cols []catalog.ColumnDescriptor) {
	consoleTable := tablewriter.NewWriter(t.out)
	consoleTable.SetHeader([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})

	for _, c := range cols {
		null := "NO"
		if c.Nullable {
			null = "YES"
		}
		def := "NULL"
		if c.Default != nil {
			def = *c.Default
		}
		consoleTable.Append([]string{c.Name, c.DeclaredType, null, c.Key, def, c.Extra})
	}

	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.Render()
}

// ShowHelp renders command usage sorted by command name
func (t *Terminal) ShowHelp(usage map[string]string) {
	names := make([]string, 0, len(usage))
	for n := range usage {
		names = append(names, n)
	}
	sort.Strings(names)

	consoleTable := tablewriter.NewWriter(t.out)
	consoleTable.SetHeader([]string{"Command", "Description"})
	for _, n := range names {
		consoleTable.Append([]string{n, usage[n]})
	}
	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.SetAutoWrapText(false)
	consoleTable.Render()
}
