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

package helper

import (
	"fmt"
	"os"

	"github.com/codenotary/sqlbrowser/pkg/errors"
)

var osexit = os.Exit

// QuitToStdErr prints an error on stderr and closes
func QuitToStdErr(msg interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, UnwrapMessage(msg))
	osexit(1)
}

func OverrideQuitter(quitter func(int)) {
	osexit = quitter
}

// UnwrapMessage renders errors of this module with their SQLSTATE code
func UnwrapMessage(msg interface{}) interface{} {
	if err, ok := msg.(errors.Error); ok {
		return fmt.Sprintf("%s (%s)", err.Error(), err.Code())
	}
	return msg
}
