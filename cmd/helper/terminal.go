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

package helper

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

type PasswordReader interface {
	Read(string) ([]byte, error)
}

type stdinPasswordReader struct{}

func (pr *stdinPasswordReader) Read(msg string) ([]byte, error) {
	fmt.Print(msg)
	pass, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return pass, nil
}

var DefaultPasswordReader PasswordReader = new(stdinPasswordReader)

// ParseYN returns true only for an explicit yes. Empty input selects def.
func ParseYN(input string, def bool) bool {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "":
		return def
	case "y", "yes":
		return true
	}
	return false
}
