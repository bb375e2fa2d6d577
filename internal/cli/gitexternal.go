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

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"znkr.io/atomdiff"
)

const devNull = "/dev/null"

// newGitExternalCommand returns a command that can be used as GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF="atomdiff git-external" git diff
//
// git calls it with path old-file old-hex old-mode new-file new-hex new-mode.
func newGitExternalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "git-external PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Compare files for git, see GIT_EXTERNAL_DIFF in git(1)",
		Args:  cobra.MinimumNArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, oldFile, oldHex, newFile, newHex, newMode := args[0], args[1], args[2], args[4], args[5], args[6]

			old, err := readGitFile(oldFile)
			if err != nil {
				return err
			}
			new, err := readGitFile(newFile)
			if err != nil {
				return err
			}

			info := atomdiff.InputInfo{LeftLabel: "a/" + path, RightLabel: "b/" + path}
			if oldFile == devNull {
				info.LeftLabel = devNull
			}
			if newFile == devNull {
				info.RightLabel = devNull
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "diff --git a/%s b/%s\n", path, path)
			fmt.Fprintf(out, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
			err = compare(cmd, opts, old, new, info)
			if errors.Is(err, ErrDifferent) {
				// git treats a non-zero exit code as failure.
				return nil
			}
			return err
		},
	}
}

func readGitFile(name string) ([]byte, error) {
	if name == devNull {
		return nil, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func abbrev(hex string) string {
	return hex[:min(len(hex), 10)]
}
