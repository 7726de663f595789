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

package sqlbrowser

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/codenotary/sqlbrowser/pkg/catalog"
	"github.com/codenotary/sqlbrowser/pkg/connection"
	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/executor"
	"github.com/codenotary/sqlbrowser/pkg/presenter"
	"github.com/codenotary/sqlbrowser/pkg/sqlvalue"
	"github.com/peterh/liner"
)

var (
	ErrNoTable = errors.Validation("please select a table first")
	ErrNoRow   = errors.Validation("please select a row first")

	// the shown values no longer identify a row, e.g. it changed meanwhile
	ErrNoMatchingRow = errors.New(errors.KindQuery, "no matching row, reload the table and retry").
		WithCode(errors.CodNoData)
)

type command struct {
	usage string
	short string
	run   func(args string) error
}

type repl struct {
	ctx    context.Context
	conn   connection.Conn
	exec   *executor.Executor
	sess   *executor.Session
	out    *presenter.Terminal
	reader lineReader
	port   executor.PromptPort

	// table most recently shown with "show", row commands act on it
	lastTable  string
	lastResult *sqlvalue.Table

	commands map[string]*command
}

func newRepl(ctx context.Context, conn connection.Conn, exec *executor.Executor, sess *executor.Session, out *presenter.Terminal, reader lineReader) *repl {
	r := &repl{
		ctx:    ctx,
		conn:   conn,
		exec:   exec,
		sess:   sess,
		out:    out,
		reader: reader,
		port:   &linePrompt{reader: reader},
	}
	r.initCommands()
	return r
}

func (r *repl) initCommands() {
	r.commands = map[string]*command{
		"databases":       {"databases", "list databases", r.databases},
		"tree":            {"tree", "list databases with their tables", r.tree},
		"use":             {"use <database>", "select the current database", r.use},
		"close":           {"close", "close the current database", r.close},
		"tables":          {"tables [database]", "list tables of a database", r.tables},
		"describe":        {"describe [table]", "show the columns of a table", r.describe},
		"show":            {"show <table>", "load every row of a table", r.show},
		"query":           {"query <select statement>", "run a read-only query", r.query},
		"insert":          {"insert [table]", "insert a record, asking a value for every column", r.insert},
		"update":          {"update <row>", "update a displayed row of the shown table", r.update},
		"delete":          {"delete <row>", "delete a displayed row of the shown table", r.delete},
		"create-table":    {"create-table <table> <columns>", "create a table, e.g. create-table users id INT, name VARCHAR(50)", r.createTable},
		"create-database": {"create-database <database>", "create a database", r.createDatabase},
		"drop-table":      {"drop-table [table]", "drop a table after confirmation", r.dropTable},
	}
}

func (r *repl) promptLabel() string {
	if r.sess.HasDatabase() {
		return "sqlbrowser:" + r.sess.CurrentDatabase + "> "
	}
	return "sqlbrowser> "
}

// Run reads commands until exit or end of input
func (r *repl) Run() {
	for {
		line, err := r.reader.Prompt(r.promptLabel())
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			r.out.ShowStatus(err.Error(), presenter.LevelError)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.reader.AppendHistory(line)

		if !r.Execute(line) {
			return
		}
	}
}

// Execute runs a single command line. It returns false once the user asked
// to leave.
func (r *repl) Execute(line string) bool {
	name, args := splitCommand(line)

	switch name {
	case "exit", "quit":
		return false
	case "help", "-h", "--help":
		r.help()
		return true
	}

	cmd, ok := r.commands[name]
	if !ok {
		r.out.ShowStatus(fmt.Sprintf("command not found: %s. Run help for usage", name), presenter.LevelError)
		return true
	}

	if err := cmd.run(args); err != nil {
		r.out.ShowStatus(err.Error(), presenter.LevelError)
	}

	return true
}

func (r *repl) help() {
	usage := make(map[string]string, len(r.commands)+2)
	for _, c := range r.commands {
		usage[c.usage] = c.short
	}
	usage["help"] = "show this message"
	usage["exit"] = "leave sqlbrowser"
	r.out.ShowHelp(usage)
}

func (r *repl) complete(line string) []string {
	var names []string
	for n := range r.commands {
		names = append(names, n)
	}
	names = append(names, "help", "exit")
	sort.Strings(names)

	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, strings.ToLower(line)) {
			out = append(out, n)
		}
	}
	return out
}

// splitArgs separates the first word of s from the rest
func splitArgs(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func splitCommand(line string) (string, string) {
	name, args := splitArgs(line)
	return strings.ToLower(name), args
}

func (r *repl) targetTable(args string) (string, error) {
	if t := strings.TrimSpace(args); t != "" {
		return t, nil
	}
	if r.lastTable == "" {
		return "", ErrNoTable
	}
	return r.lastTable, nil
}

// selectedRow parses a 1-based row number of the shown table
func (r *repl) selectedRow(args string) (int, error) {
	if r.lastResult == nil {
		return 0, ErrNoTable
	}
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 1 || n > r.lastResult.Len() {
		return 0, ErrNoRow
	}
	return n - 1, nil
}

func (r *repl) databases(string) error {
	dbs, err := catalog.ListDatabases(r.ctx, r.conn)
	if err != nil {
		return err
	}
	r.out.ShowList("Database", dbs)
	r.out.ShowStatus("Loaded database list successfully", presenter.LevelSuccess)
	return nil
}

func (r *repl) tree(string) error {
	nodes, err := catalog.Tree(r.ctx, r.conn)
	if err != nil {
		return err
	}
	r.out.ShowTree(nodes)
	return nil
}

func (r *repl) use(args string) error {
	if err := r.exec.SwitchDatabase(r.ctx, r.conn, r.sess, args); err != nil {
		return err
	}
	r.lastTable, r.lastResult = "", nil
	r.out.ShowStatus("Database selected: "+args, presenter.LevelSuccess)
	return nil
}

func (r *repl) close(string) error {
	if !r.sess.HasDatabase() {
		return executor.ErrNoDatabase
	}
	r.exec.CloseDatabase(r.sess)
	r.lastTable, r.lastResult = "", nil
	r.out.ShowStatus("Database closed", presenter.LevelSuccess)
	return nil
}

func (r *repl) tables(args string) error {
	database := strings.TrimSpace(args)
	if database == "" {
		if !r.sess.HasDatabase() {
			return executor.ErrNoDatabase
		}
		database = r.sess.CurrentDatabase
	}

	tables, err := catalog.ListTables(r.ctx, r.conn, database)
	if err != nil {
		return err
	}
	r.out.ShowList("Table", tables)
	r.out.ShowStatus("Loaded tables for database: "+database, presenter.LevelSuccess)
	return nil
}

func (r *repl) describe(args string) error {
	table, err := r.targetTable(args)
	if err != nil {
		return err
	}
	if !r.sess.HasDatabase() {
		return executor.ErrNoDatabase
	}

	cols, err := catalog.DescribeColumns(r.ctx, r.conn, r.sess.CurrentDatabase, table)
	if err != nil {
		return err
	}
	r.out.ShowColumns(cols)
	return nil
}

func (r *repl) show(args string) error {
	if strings.TrimSpace(args) == "" {
		return ErrNoTable
	}
	return r.load(args)
}

func (r *repl) load(table string) error {
	result, err := r.exec.LoadTable(r.ctx, r.conn, r.sess, table)
	if err != nil {
		return err
	}

	r.lastTable, r.lastResult = table, result

	r.out.ShowTable(result)
	r.out.ShowStatus(fmt.Sprintf("Successfully loaded %s of %s!", table, r.sess.CurrentDatabase), presenter.LevelSuccess)
	return nil
}

func (r *repl) reload(table string) error {
	if table != r.lastTable {
		return nil
	}
	return r.load(table)
}

func (r *repl) query(args string) error {
	result, err := r.exec.Select(r.ctx, r.conn, r.sess, args)
	if err != nil {
		return err
	}
	r.out.ShowTable(result)
	return nil
}

func (r *repl) insert(args string) error {
	table, err := r.targetTable(args)
	if err != nil {
		return err
	}

	res, err := r.exec.InsertWithPrompt(r.ctx, r.conn, r.sess, table, r.port)
	if err != nil {
		return err
	}
	if !res.Executed {
		r.out.ShowStatus("Nothing to insert", presenter.LevelInfo)
		return nil
	}

	r.out.ShowStatus("Inserted record in "+table, presenter.LevelSuccess)
	return r.reload(table)
}

func (r *repl) update(args string) error {
	row, err := r.selectedRow(args)
	if err != nil {
		return err
	}

	table := r.lastTable

	res, err := r.exec.UpdateWithPrompt(r.ctx, r.conn, r.sess, table, r.lastResult, row, r.port)
	if err != nil {
		return err
	}
	if !res.Executed {
		r.out.ShowStatus("Nothing to update", presenter.LevelInfo)
		return nil
	}
	if res.RowsAffected == 0 {
		return ErrNoMatchingRow
	}

	r.out.ShowStatus("Updated record in "+table, presenter.LevelSuccess)
	return r.reload(table)
}

func (r *repl) delete(args string) error {
	row, err := r.selectedRow(args)
	if err != nil {
		return err
	}

	table := r.lastTable

	res, err := r.exec.DeleteWithPrompt(r.ctx, r.conn, r.sess, table, r.lastResult, row, r.port)
	if err != nil {
		return err
	}
	if !res.Executed {
		r.out.ShowStatus("Nothing deleted", presenter.LevelInfo)
		return nil
	}
	if res.RowsAffected == 0 {
		return ErrNoMatchingRow
	}

	r.out.ShowStatus("Deleted successfully!", presenter.LevelSuccess)
	return r.reload(table)
}

func (r *repl) createTable(args string) error {
	table, columns := splitArgs(args)

	if err := r.exec.CreateTable(r.ctx, r.conn, r.sess, table, columns); err != nil {
		return err
	}
	r.out.ShowStatus("Created successfully!", presenter.LevelSuccess)
	return nil
}

func (r *repl) createDatabase(args string) error {
	if err := r.exec.CreateDatabase(r.ctx, r.conn, r.sess, args); err != nil {
		return err
	}
	r.out.ShowStatus("Created successfully!", presenter.LevelSuccess)
	return nil
}

func (r *repl) dropTable(args string) error {
	table, err := r.targetTable(args)
	if err != nil {
		return err
	}

	dropped, err := r.exec.DropTableWithPrompt(r.ctx, r.conn, r.sess, table, r.port)
	if err != nil {
		return err
	}
	if !dropped {
		return nil
	}

	if table == r.lastTable {
		r.lastTable, r.lastResult = "", nil
	}

	r.out.ShowStatus("Dropped successfully!", presenter.LevelSuccess)
	return nil
}
