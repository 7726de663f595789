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

package executor

import (
	"github.com/rs/xid"
)

// Session is the caller-owned state shared by consecutive operations on the
// same connection. CurrentDatabase only changes through SwitchDatabase and
// CloseDatabase.
type Session struct {
	ID              string
	CurrentDatabase string
}

// NewSession creates a session, database may be empty
func NewSession(database string) *Session {
	return &Session{
		ID:              xid.New().String(),
		CurrentDatabase: database,
	}
}

func (s *Session) HasDatabase() bool {
	return s != nil && s.CurrentDatabase != ""
}
