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

package connection

import (
	"context"
	"database/sql"
	"os"
	"sync"

	"github.com/codenotary/sqlbrowser/pkg/errors"
	"github.com/codenotary/sqlbrowser/pkg/logger"
	"github.com/go-sql-driver/mysql"
)

// Conn is the connection handle consumed by the catalog and the executor.
// *sql.Conn satisfies it; session state such as the current schema is bound
// to the underlying physical connection.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PingContext(ctx context.Context) error
}

var (
	_ Conn = (*sql.Conn)(nil)
	_ Conn = (*sql.DB)(nil)
)

var (
	// ErrAlreadyConnected is used when trying to establish a new connection with a manager that is already connected
	ErrAlreadyConnected = errors.Connection("already connected")

	// ErrNotConnected is used when the operation can not be done because the connection is closed
	ErrNotConnected = errors.Connection("not connected")
)

// Manager acquires, holds and closes a single database connection. It does
// not serialize statements: callers own exclusive, sequential use of Conn.
type Manager struct {
	opts   *Options
	logger logger.Logger

	open func(opts *Options) (*sql.DB, error)

	mtx  sync.Mutex
	db   *sql.DB
	conn *sql.Conn
}

func NewManager(opts *Options, log logger.Logger) *Manager {
	if opts == nil {
		opts = DefaultOptions()
	}
	if log == nil {
		log = logger.NewSimpleLogger("sqlbrowser connection", os.Stderr)
	}

	return &Manager{
		opts:   opts,
		logger: log,
		open:   openDB,
	}
}

func openDB(opts *Options) (*sql.DB, error) {
	connector, err := mysql.NewConnector(opts.DriverConfig())
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// Connect dials the server and pins one connection. Only the dial is bounded
// by the configured connect timeout.
func (m *Manager) Connect(ctx context.Context) (Conn, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.conn != nil {
		return nil, ErrAlreadyConnected
	}

	db, err := m.open(m.opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database").
			WithKind(errors.KindConnection).
			WithCode(errors.CodSqlclientUnableToEstablishSqlConnection)
	}

	dialCtx, cancel := context.WithTimeout(ctx, m.opts.ConnectTimeout)
	defer cancel()

	conn, err := db.Conn(dialCtx)
	if err == nil {
		err = conn.PingContext(dialCtx)
		if err != nil {
			conn.Close()
		}
	}
	if err != nil {
		db.Close()
		m.logger.Errorf("unable to connect to %s: %v", GetURI(m.opts), err)
		return nil, errors.Wrap(err, "failed to connect to database").
			WithKind(errors.KindConnection).
			WithCode(errors.CodSqlclientUnableToEstablishSqlConnection)
	}

	m.db = db
	m.conn = conn

	m.logger.Infof("connected to %s", GetURI(m.opts))

	return conn, nil
}

// Conn returns the pinned connection, nil when not connected
func (m *Manager) Conn() Conn {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.conn == nil {
		return nil
	}
	return m.conn
}

func (m *Manager) IsConnected() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.conn != nil
}

func (m *Manager) Options() *Options {
	return m.opts
}

// Disconnect closes the pinned connection and its pool
func (m *Manager) Disconnect() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.conn == nil {
		return ErrNotConnected
	}

	merr := m.conn.Close()
	if err := m.db.Close(); merr == nil {
		merr = err
	}

	m.conn = nil
	m.db = nil

	m.logger.Infof("disconnected from %s", GetURI(m.opts))

	return merr
}
