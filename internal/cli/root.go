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

// Package cli provides the Cobra command structure for atomdiff.
package cli

import (
	"github.com/spf13/cobra"

	"znkr.io/atomdiff/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root atomdiff command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "atomdiff [flags] LEFT RIGHT",
		Short: "Compare files line by line",
		Long: `atomdiff compares two files line by line and prints the differences.

Use "-" to read one of the inputs from standard input. The exit status is 0 if
the inputs are the same, 1 if they differ, and 2 if there was trouble.

The algorithm used for the comparison is configurable: by default, Myers'
algorithm is used for inputs of moderate size and a divide and conquer variant
of it for larger inputs. Patience diff is available as an alternative.`,
		Args: cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
			return opts.loadConfigFile(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newGitExternalCommand(opts))

	return rootCmd
}
