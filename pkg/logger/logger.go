/*
Copyright 2025 Codenotary Inc. All rights reserved.

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

package logger

import (
	"errors"
	"io"
	"os"
	"strings"
)

const (
	// LogFormatText is the log format to use for TEXT output
	LogFormatText = "text"

	// LogFormatJSON is the log format to use for JSON output
	LogFormatJSON = "json"
)

var ErrInvalidLoggerType = errors.New("invalid logger type")

// LogLevel ...
type LogLevel int8

// Log levels
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

var levelToString = map[LogLevel]string{
	LogDebug: "debug",
	LogInfo:  "info",
	LogWarn:  "warn",
	LogError: "error",
}

func (l LogLevel) String() string {
	return levelToString[l]
}

// Logger ...
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Close() error
}

// ParseLogLevel maps a level name to a LogLevel, defaulting to LogInfo
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return LogError
	case "warn", "warning":
		return LogWarn
	case "debug":
		return LogDebug
	}
	return LogInfo
}

func LogLevelFromEnvironment() LogLevel {
	logLevel, _ := os.LookupEnv("LOG_LEVEL")
	return ParseLogLevel(logLevel)
}

// Options can be used to configure a new logger.
type Options struct {
	// Name of the subsystem to prefix logs with
	Name string

	// The threshold for the logger. Anything less severe is suppressed
	Level LogLevel

	// Where to write the logs to. Defaults to os.Stderr if nil
	Output io.Writer

	// The format in which logs will be formatted. (eg: text/json)
	LogFormat string
}

// NewLogger is a factory for selecting a logger based on options
func NewLogger(opts *Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch opts.LogFormat {
	case LogFormatJSON:
		return NewJSONLogger(opts.Name, out, opts.Level), nil
	case LogFormatText, "":
		return NewSimpleLoggerWithLevel(opts.Name, out, opts.Level), nil
	default:
		return nil, ErrInvalidLoggerType
	}
}
