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

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"znkr.io/atomdiff/internal/cli"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

// execute runs the root command with args and returns stdout and the exit code.
func execute(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), cli.ExitCode(err)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "atomdiff", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"version", "git-external"} {
		sub, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, "subcommand %q", name) {
			assert.Equal(t, name, sub.Name())
		}
	}

	for _, name := range []string{"algorithm", "text", "ignore-whitespace", "show-function-line", "unified", "ed", "side-by-side", "width", "color", "label", "strict", "max-depth", "config", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q", name)
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ab := writeFile(t, dir, "ab.txt", "a\nb\n")
	ac := writeFile(t, dir, "ac.txt", "a\nc\n")
	spaced := writeFile(t, dir, "spaced.txt", "a  b\n")
	single := writeFile(t, dir, "single.txt", "a b\n")
	bin1 := writeFile(t, dir, "bin1", "\x00\x01binary")
	bin2 := writeFile(t, dir, "bin2", "\x00\x02binary")
	block := writeFile(t, dir, "block.rb", "# ...\n[1, 2].map do |i|\n  i.upcase\nend\n")
	blocks := writeFile(t, dir, "blocks.rb", "# ...\n[1, 2].map do |i|\n  i\nend\n\n[1, 2].map do |i|\n  i.upcase\nend\n")
	labels := []string{"--label", "old", "--label", "new"}

	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode int
	}{
		{
			name:     "identical",
			args:     []string{ab, ab},
			want:     "",
			wantCode: cli.ExitSame,
		},
		{
			name:     "unified",
			args:     append([]string{ab, ac}, labels...),
			want:     "--- old\n+++ new\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "unified-file-names",
			args:     []string{"-U", "0", ab, ac},
			want:     "--- " + ab + "\n+++ " + ac + "\n@@ -2,1 +2,1 @@\n-b\n+c\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "ed",
			args:     []string{"-e", ab, ac},
			want:     "2c\nc\n.\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name: "side-by-side",
			args: append([]string{"-y", "-W", "23", ab, ac}, labels...),
			want: "" +
				"old          new\n" +
				"a            a\n" +
				"b          | c\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "color",
			args:     append([]string{"--color", "always", "-U", "0", ab, ac}, labels...),
			want:     "\033[1m--- old\033[0m\n\033[1m+++ new\033[0m\n\033[36m@@ -2,1 +2,1 @@\033[0m\n\033[31m-b\033[0m\n\033[32m+c\033[0m\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "indent-heuristic",
			args:     append([]string{"--indent-heuristic", "-U", "1", block, blocks}, labels...),
			want:     "--- old\n+++ new\n@@ -1,2 +1,6 @@\n # ...\n+[1, 2].map do |i|\n+  i\n+end\n+\n [1, 2].map do |i|\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "ignore-whitespace",
			args:     []string{"-w", spaced, single},
			want:     "",
			wantCode: cli.ExitSame,
		},
		{
			name:     "patience",
			args:     append([]string{"--algorithm", "patience", ab, ac}, labels...),
			want:     "--- old\n+++ new\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "patience-first",
			args:     append([]string{"--algorithm", "patience-first", ab, ac}, labels...),
			want:     "--- old\n+++ new\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "binary",
			args:     append([]string{bin1, bin2}, labels...),
			want:     "Binary files old and new differ\n",
			wantCode: cli.ExitDifferent,
		},
		{
			name:     "binary-identical",
			args:     []string{bin1, bin1},
			want:     "",
			wantCode: cli.ExitSame,
		},
		{
			name:     "missing-file",
			args:     []string{ab, filepath.Join(dir, "missing")},
			wantCode: cli.ExitTrouble,
		},
		{
			name:     "unknown-algorithm",
			args:     []string{"--algorithm", "magic", ab, ac},
			wantCode: cli.ExitTrouble,
		},
		{
			name:     "conflicting-formats",
			args:     []string{"-e", "-y", ab, ac},
			wantCode: cli.ExitTrouble,
		},
		{
			name:     "invalid-color",
			args:     []string{"--color", "sometimes", ab, ac},
			wantCode: cli.ExitTrouble,
		},
		{
			name:     "too-many-labels",
			args:     append([]string{ab, ac, "--label", "third"}, labels...),
			wantCode: cli.ExitTrouble,
		},
		{
			name:     "wrong-number-of-args",
			args:     []string{ab},
			wantCode: cli.ExitTrouble,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, code := execute(t, "", tt.args...)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode != cli.ExitTrouble {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDiffStdin(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "file.txt", "a\nb\n")

	got, code := execute(t, "a\nc\n", "-U", "0", file, "-")
	assert.Equal(t, cli.ExitDifferent, code)
	assert.Equal(t, "--- "+file+"\n+++ /dev/stdin\n@@ -2,1 +2,1 @@\n-b\n+c\n", got)

	_, code = execute(t, "a\n", "-", "-")
	assert.Equal(t, cli.ExitTrouble, code)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	x := writeFile(t, dir, "x.txt", "1\n2\n3\n4\n5\n")
	y := writeFile(t, dir, "y.txt", "1\n2\nthree\n4\n5\n")
	cfg := writeFile(t, dir, "config.yaml", "unified: 0\nalgorithm: myers-then-patience\n")
	bad := writeFile(t, dir, "bad.yaml", "unified: 0\nunknown-option: true\n")
	labels := []string{"--label", "x", "--label", "y"}

	got, code := execute(t, "", append([]string{"--config", cfg, x, y}, labels...)...)
	assert.Equal(t, cli.ExitDifferent, code)
	assert.Equal(t, "--- x\n+++ y\n@@ -3,1 +3,1 @@\n-3\n+three\n", got)

	// Flags take precedence over the config file.
	got, code = execute(t, "", append([]string{"--config", cfg, "-U", "1", x, y}, labels...)...)
	assert.Equal(t, cli.ExitDifferent, code)
	assert.Equal(t, "--- x\n+++ y\n@@ -2,3 +2,3 @@\n 2\n-3\n+three\n 4\n", got)

	_, code = execute(t, "", "--config", bad, x, y)
	assert.Equal(t, cli.ExitTrouble, code)

	_, code = execute(t, "", "--config", filepath.Join(dir, "missing.yaml"), x, y)
	assert.Equal(t, cli.ExitTrouble, code)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	got, code := execute(t, "", "version")
	assert.Equal(t, cli.ExitSame, code)
	assert.Contains(t, got, "test-version")
	assert.Contains(t, got, "test-commit")
	assert.Contains(t, got, "test-date")
}

func TestGitExternal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old", "a\nb\n")
	new := writeFile(t, dir, "new", "a\nc\n")

	got, code := execute(t, "", "git-external", "f.txt", old, "0123456789abcdef", "100644", new, "fedcba9876543210", "100644")
	assert.Equal(t, cli.ExitSame, code)
	assert.Equal(t, ""+
		"diff --git a/f.txt b/f.txt\n"+
		"index 0123456789..fedcba9876 100644\n"+
		"--- a/f.txt\n"+
		"+++ b/f.txt\n"+
		"@@ -1,2 +1,2 @@\n"+
		" a\n"+
		"-b\n"+
		"+c\n", got)

	got, code = execute(t, "", "git-external", "f.txt", "/dev/null", "0000000000", "100644", new, "fedcba9876543210", "100644")
	assert.Equal(t, cli.ExitSame, code)
	assert.Equal(t, ""+
		"diff --git a/f.txt b/f.txt\n"+
		"index 0000000000..fedcba9876 100644\n"+
		"--- /dev/null\n"+
		"+++ b/f.txt\n"+
		"@@ -0,0 +1,2 @@\n"+
		"+a\n"+
		"+c\n", got)
}
