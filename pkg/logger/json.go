/*
Copyright 2024 Codenotary Inc. All rights reserved.

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
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultTimeFormat is the time format to use for JSON output
const DefaultTimeFormat = "2006-01-02T15:04:05.000000Z07:00"

var _ Logger = (*JsonLogger)(nil)

// JsonLogger writes one JSON object per line.
type JsonLogger struct {
	name  string
	level LogLevel

	timeFnc func() time.Time

	mutex sync.Mutex
	enc   *json.Encoder
}

type jsonEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module,omitempty"`
	Message   string `json:"message"`
}

// NewJSONLogger returns a json logger.
func NewJSONLogger(name string, out io.Writer, level LogLevel) *JsonLogger {
	return &JsonLogger{
		name:    name,
		level:   level,
		timeFnc: time.Now,
		enc:     json.NewEncoder(out),
	}
}

func (l *JsonLogger) log(level LogLevel, f string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	_ = l.enc.Encode(&jsonEntry{
		Timestamp: l.timeFnc().Format(DefaultTimeFormat),
		Level:     level.String(),
		Module:    l.name,
		Message:   fmt.Sprintf(f, args...),
	})
}

func (l *JsonLogger) Errorf(f string, args ...interface{}) {
	l.log(LogError, f, args...)
}

func (l *JsonLogger) Warningf(f string, args ...interface{}) {
	l.log(LogWarn, f, args...)
}

func (l *JsonLogger) Infof(f string, args ...interface{}) {
	l.log(LogInfo, f, args...)
}

func (l *JsonLogger) Debugf(f string, args ...interface{}) {
	l.log(LogDebug, f, args...)
}

func (l *JsonLogger) Close() error {
	return nil
}
