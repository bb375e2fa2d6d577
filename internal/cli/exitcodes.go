// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import "errors"

// Exit codes, the same as diff(1) uses.
const (
	// ExitSame indicates that the inputs are the same.
	ExitSame = 0

	// ExitDifferent indicates that the inputs differ.
	ExitDifferent = 1

	// ExitTrouble indicates that the comparison failed.
	ExitTrouble = 2
)

// ErrDifferent is returned by the commands if the inputs differ. It's a signal for the exit code,
// not a failure.
var ErrDifferent = errors.New("inputs differ")

// ExitCode maps the error returned by a command to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSame
	case errors.Is(err, ErrDifferent):
		return ExitDifferent
	default:
		return ExitTrouble
	}
}
