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
	"github.com/codenotary/sqlbrowser/cmd/helper"
	"github.com/codenotary/sqlbrowser/pkg/executor"
)

// lineReader is the subset of *liner.State the shell needs
type lineReader interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt string, text string, pos int) (string, error)
	AppendHistory(item string)
}

// linePrompt asks questions on the same line editor the shell reads from.
// Ctrl-C or end of input dismisses a question.
type linePrompt struct {
	reader lineReader
}

var _ executor.PromptPort = (*linePrompt)(nil)

func (p *linePrompt) PromptValue(label, initial string) (string, bool) {
	v, err := p.reader.PromptWithSuggestion(label+": ", initial, -1)
	if err != nil {
		return "", false
	}
	return v, true
}

func (p *linePrompt) PromptConfirm(message string) bool {
	v, err := p.reader.Prompt(message + " [y/N] ")
	if err != nil {
		return false
	}
	return helper.ParseYN(v, false)
}
