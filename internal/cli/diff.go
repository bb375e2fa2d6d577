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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/logging"
	"znkr.io/atomdiff/textdiff"
)

const stdinName = "-"

func runDiff(cmd *cobra.Command, opts *options, leftPath, rightPath string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if leftPath == stdinName && rightPath == stdinName {
		return errors.New("only one input can be read from standard input")
	}

	left, err := readInput(cmd.InOrStdin(), leftPath)
	if err != nil {
		return err
	}
	right, err := readInput(cmd.InOrStdin(), rightPath)
	if err != nil {
		return err
	}

	info := atomdiff.InputInfo{
		LeftLabel:  opts.label(0, displayName(leftPath)),
		RightLabel: opts.label(1, displayName(rightPath)),
	}
	return compare(cmd, opts, left, right, info)
}

// compare compares left and right and writes the result to the command's output in the format
// selected by opts.
func compare(cmd *cobra.Command, opts *options, left, right []byte, info atomdiff.InputInfo) error {
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	compareOpts, err := opts.compareOptions()
	if err != nil {
		return err
	}
	d, err := atomdiff.New(append(compareOpts, atomdiff.WithLogger(logger))...)
	if err != nil {
		return err
	}
	res, err := d.Compare(left, right)
	switch {
	case errors.Is(err, atomdiff.ErrBinary):
		if bytes.Equal(left, right) {
			return nil
		}
		if _, err := fmt.Fprintf(out, "Binary files %s and %s differ\n", info.LeftLabel, info.RightLabel); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return ErrDifferent
	case err != nil:
		return err
	}

	stats := res.Stats()
	logger.Debug("compared inputs",
		logging.FieldLabel, info.LeftLabel+" "+info.RightLabel,
		logging.FieldChunks, len(res.Chunks()),
		logging.FieldAttempts, stats.Attempts,
		logging.FieldDeclines, stats.Declines)

	if err := write(out, opts, res, info); err != nil {
		return err
	}
	if !res.Equal() {
		return ErrDifferent
	}
	return nil
}

func write(w io.Writer, opts *options, res *atomdiff.Result, info atomdiff.InputInfo) error {
	formatOpts, err := opts.formatOptions(w)
	if err != nil {
		return err
	}
	switch {
	case opts.ed:
		_, err = textdiff.WriteEd(w, res)
	case opts.sideBySide:
		_, err = textdiff.WriteSideBySide(w, res, info, formatOpts...)
	default:
		_, err = textdiff.WriteUnified(w, res, info, formatOpts...)
	}
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == stdinName {
		return "/dev/stdin"
	}
	return path
}
