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
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	DefaultAddress        = "localhost"
	DefaultPort           = 3306
	DefaultUsername       = "root"
	DefaultConnectTimeout = 5000 * time.Millisecond
)

// Options connection options
type Options struct {
	Address        string            // Database hostname / ip address
	Port           int               // Database port number
	Username       string            // Login user
	Password       string            // Login password
	Database       string            // Schema selected right after connecting, may be empty
	ConnectTimeout time.Duration     // Dial timeout, the only timeout applied
	Params         map[string]string // Additional driver DSN parameters
}

// DefaultOptions ...
func DefaultOptions() *Options {
	return &Options{
		Address:        DefaultAddress,
		Port:           DefaultPort,
		Username:       DefaultUsername,
		ConnectTimeout: DefaultConnectTimeout,
		Params:         map[string]string{},
	}
}

// WithAddress sets address
func (o *Options) WithAddress(address string) *Options {
	if address != "" {
		o.Address = address
	}
	return o
}

// WithPort sets port
func (o *Options) WithPort(port int) *Options {
	if port > 0 {
		o.Port = port
	}
	return o
}

// WithUsername sets the login user
func (o *Options) WithUsername(username string) *Options {
	o.Username = username
	return o
}

// WithPassword sets the login password
func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithDatabase sets the database selected on connect
func (o *Options) WithDatabase(database string) *Options {
	o.Database = database
	return o
}

// WithConnectTimeout sets the dial timeout
func (o *Options) WithConnectTimeout(timeout time.Duration) *Options {
	if timeout > 0 {
		o.ConnectTimeout = timeout
	}
	return o
}

// WithParam sets an additional driver parameter
func (o *Options) WithParam(key, value string) *Options {
	if o.Params == nil {
		o.Params = map[string]string{}
	}
	o.Params[key] = value
	return o
}

// Bind returns the host:port pair
func (o *Options) Bind() string {
	return net.JoinHostPort(o.Address, strconv.Itoa(o.Port))
}

// DriverConfig renders the options as a go-sql-driver configuration.
// DATE/DATETIME columns are parsed into time values.
func (o *Options) DriverConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = o.Username
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = o.Bind()
	cfg.DBName = o.Database
	cfg.Timeout = o.ConnectTimeout
	cfg.ParseTime = true

	if len(o.Params) > 0 {
		cfg.Params = make(map[string]string, len(o.Params))
		for k, v := range o.Params {
			cfg.Params[k] = v
		}
	}

	return cfg
}

// DSN renders the options as a go-sql-driver data source name
func (o *Options) DSN() string {
	return o.DriverConfig().FormatDSN()
}
