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

package textdiff

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/unixpatch"
	"znkr.io/atomdiff/textdiff/color"
)

var (
	update   = flag.Bool("update", false, "update golden files")
	validate = flag.Bool("validate", false, "perform validation using the unix patch cli tool")
)

func TestGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					got, err := st.format(tt.x, tt.y, st.opts...)
					if err != nil {
						t.Fatalf("%s(...) failed: %v", st.formatName, err)
					}
					if diff := cmp.Diff(string(st.want), string(got)); diff != "" {
						t.Errorf("%s(...) result are different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", st.formatName, got, st.want, diff)
					}
					checkPatch(t, string(tt.x), string(tt.y), string(got), st.patchFormat)
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if *update {
					writeGolden(t, tt)
				}
			})
		})
	}
}

func checkPatch(t *testing.T, x, y, script string, format unixpatch.Format) {
	t.Helper()
	if !*validate || len(script) == 0 {
		return
	}
	patched, err := unixpatch.Patch(x, script, format)
	if err != nil {
		t.Fatalf("failed to run patch: %v", err)
	}
	if diff := cmp.Diff(y, patched); diff != "" {
		t.Errorf("file is different after applying patch [-want,+got]:\n%s", diff)
	}
}

func TestUnifiedEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: "",
		},
		{
			name: "identical",
			x:    "first line\n",
			y:    "first line\n",
			want: "",
		},
		{
			name: "new-lines-only",
			x:    "\n",
			y:    "\n",
			want: "",
		},
		{
			name: "x-empty",
			x:    "",
			y:    "one-line\n",
			want: "@@ -0,0 +1,1 @@\n+one-line\n",
		},
		{
			name: "y-empty",
			x:    "one-line\n",
			y:    "",
			want: "@@ -1,1 +0,0 @@\n-one-line\n",
		},
		{
			name: "missing-newline-x",
			x:    "first line",
			y:    "first line\n",
			want: "@@ -1,1 +1,1 @@\n-first line\n\\ No newline at end of file\n+first line\n",
		},
		{
			name: "missing-newline-y",
			x:    "first line\n",
			y:    "first line",
			want: "@@ -1,1 +1,1 @@\n-first line\n+first line\n\\ No newline at end of file\n",
		},
		{
			name: "missing-newline-both",
			x:    "a\nsecond line",
			y:    "b\nsecond line",
			want: "@@ -1,2 +1,2 @@\n-a\n+b\n second line\n\\ No newline at end of file\n",
		},
		{
			name: "missing-newline-empty-x",
			x:    "",
			y:    "\n",
			want: "@@ -0,0 +1,1 @@\n+\n", // no missing newline note here
		},
		{
			name: "missing-newline-empty-y",
			x:    "\n",
			y:    "",
			want: "@@ -1,1 +0,0 @@\n-\n", // no missing newline note here
		},
		{
			name: "change-in-the-middle",
			x:    "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\n",
			y:    "a\nb\nc\nd\ne\nF\ng\nh\ni\nj\n",
			want: "@@ -3,7 +3,7 @@\n c\n d\n e\n-f\n+F\n g\n h\n i\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unified(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Unified(...) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Unified(...) is different:\ngot:  %q\nwant: %q", got, tt.want)
			}
			checkPatch(t, tt.x, tt.y, got, unixpatch.Unified)

			gotBytes, err := Unified([]byte(tt.x), []byte(tt.y))
			if err != nil {
				t.Fatalf("Unified([]byte...) failed: %v", err)
			}
			if string(gotBytes) != tt.want {
				t.Errorf("Unified([]byte...) is different:\ngot:  %q\nwant: %q", gotBytes, tt.want)
			}
		})
	}
}

func TestWriteUnified(t *testing.T) {
	x := "one\ntwo\nthree\n"
	y := "one\n2\nthree\n"
	res, err := atomdiff.Compare([]byte(x), []byte(y))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}

	tests := []struct {
		name string
		info atomdiff.InputInfo
		opts []atomdiff.Option
		want string
	}{
		{
			name: "labels",
			info: atomdiff.InputInfo{LeftLabel: "a/file.txt", RightLabel: "b/file.txt"},
			want: "--- a/file.txt\n+++ b/file.txt\n@@ -1,3 +1,3 @@\n one\n-two\n+2\n three\n",
		},
		{
			name: "context-override",
			opts: []atomdiff.Option{atomdiff.Context(0)},
			want: "@@ -2,1 +2,1 @@\n-two\n+2\n",
		},
		{
			name: "colors",
			info: atomdiff.InputInfo{LeftLabel: "x", RightLabel: "y"},
			opts: []atomdiff.Option{TerminalColors(), atomdiff.Context(0)},
			want: "\033[1m--- x\033[0m\n\033[1m+++ y\033[0m\n\033[36m@@ -2,1 +2,1 @@\033[0m\n\033[31m-two\033[0m\n\033[32m+2\033[0m\n",
		},
		{
			name: "custom-colors",
			opts: []atomdiff.Option{
				TerminalColors(color.HunkHeaders(), color.Matches(color.Blue), color.Inserts(color.Bold, color.Green)),
			},
			want: "@@ -1,3 +1,3 @@\n\033[34m one\033[0m\n\033[31m-two\033[0m\n\033[1;32m+2\033[0m\n\033[34m three\033[0m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			n, err := WriteUnified(&b, res, tt.info, tt.opts...)
			if err != nil {
				t.Fatalf("WriteUnified(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("WriteUnified(...) result are different [-want,+got]:\n%s", diff)
			}
			if n != b.Len() {
				t.Errorf("WriteUnified(...) = %d, want %d", n, b.Len())
			}

			// Formatting doesn't change the result, a second run produces the same output.
			var again bytes.Buffer
			if _, err := WriteUnified(&again, res, tt.info, tt.opts...); err != nil {
				t.Fatalf("WriteUnified(...) failed: %v", err)
			}
			if again.String() != b.String() {
				t.Errorf("second WriteUnified(...) is different:\ngot:  %q\nwant: %q", again.String(), b.String())
			}
		})
	}
}

func TestFunctionContext(t *testing.T) {
	var x, y strings.Builder
	x.WriteString("func first() {\n")
	y.WriteString("func first() {\n")
	for i := range 10 {
		line := "\tline " + strconv.Itoa(i) + "\n"
		x.WriteString(line)
		if i == 8 {
			line = "\tchanged\n"
		}
		y.WriteString(line)
	}
	x.WriteString("}\n")
	y.WriteString("}\n")

	long := "func aVeryLongFunctionNameThatDoesNotFitIntoTheHunkHeader(argument int) {   \n"
	tests := []struct {
		name string
		x, y string
		opts []atomdiff.Option
		want string
	}{
		{
			name: "default-pattern",
			x:    x.String(),
			y:    y.String(),
			opts: []atomdiff.Option{atomdiff.ShowFunctionContext()},
			want: "@@ -7,6 +7,6 @@ func first() {\n \tline 5\n \tline 6\n \tline 7\n-\tline 8\n+\tchanged\n \tline 9\n }\n",
		},
		{
			name: "no-match",
			x:    "\ta\n\tb\n",
			y:    "\ta\n\tc\n",
			opts: []atomdiff.Option{atomdiff.ShowFunctionContext()},
			want: "@@ -1,2 +1,2 @@\n \ta\n-\tb\n+\tc\n",
		},
		{
			name: "access-label",
			x:    "class A {\npublic:\n  int a;\n  int b;\n  int c;\n  int d;\n",
			y:    "class A {\npublic:\n  int a;\n  int b;\n  int c;\n  int e;\n",
			opts: []atomdiff.Option{atomdiff.ShowFunctionContext()},
			want: "@@ -3,4 +3,4 @@ class A {\n   int a;\n   int b;\n   int c;\n-  int d;\n+  int e;\n",
		},
		{
			name: "truncated",
			x:    long + "\n\n\na\n",
			y:    long + "\n\n\nb\n",
			opts: []atomdiff.Option{atomdiff.ShowFunctionContext(), atomdiff.Context(1)},
			want: "@@ -4,2 +4,2 @@ func aVeryLongFunctionNameThatDoesNotFitIntoTheHunkHead\n \n-a\n+b\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unified(tt.x, tt.y, tt.opts...)
			if err != nil {
				t.Fatalf("Unified(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unified(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"aä", 2, "a"}, // ä is two bytes
		{"aä", 3, "aä"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestEd(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "identical",
			x:    "a\nb\n",
			y:    "a\nb\n",
			want: "",
		},
		{
			name: "append-to-empty",
			x:    "",
			y:    "a\nb\n",
			want: "0a\na\nb\n.\n",
		},
		{
			name: "delete-all",
			x:    "a\nb\n",
			y:    "",
			want: "1,2d\n",
		},
		{
			name: "change-and-delete",
			x:    "a\nb\nc\nd\n",
			y:    "A\nb\nc\n",
			want: "4d\n1c\nA\n.\n",
		},
		{
			name: "dot-in-the-middle",
			x:    "a\nb\n",
			y:    "x\n.\ny\nb\n",
			want: "1c\nx\n..\n.\ns/.//\na\ny\n.\n",
		},
		{
			name: "dot-at-the-end",
			x:    "a\n",
			y:    "a\n.\n",
			want: "1a\n..\n.\ns/.//\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Ed(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Ed(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ed(...) result are different [-want,+got]:\n%s", diff)
			}
			checkPatch(t, tt.x, tt.y, got, unixpatch.Ed)
		})
	}
}

func TestWriteSideBySide(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		info atomdiff.InputInfo
		opts []atomdiff.Option
		want string
	}{
		{
			name: "basic",
			x:    "same\nold\ngone\nsame\n",
			y:    "same\nnew\nsame\nadded\n",
			opts: []atomdiff.Option{Width(23)},
			want: "" +
				"same         same\n" +
				"old        | new\n" +
				"gone       <\n" +
				"same         same\n" +
				"           > added\n",
		},
		{
			name: "labels",
			x:    "a\n",
			y:    "b\n",
			info: atomdiff.InputInfo{LeftLabel: "left", RightLabel: "right"},
			opts: []atomdiff.Option{Width(23)},
			want: "" +
				"left         right\n" +
				"a          | b\n",
		},
		{
			name: "truncated",
			x:    "0123456789abc\n",
			y:    "0123456789abc\n",
			opts: []atomdiff.Option{Width(23)},
			want: "0123456789   0123456789\n",
		},
		{
			name: "tabs",
			x:    "\tx\n",
			y:    "y\n",
			opts: []atomdiff.Option{Width(43)},
			want: "        x            | y\n",
		},
		{
			name: "wide",
			x:    "世界世界世界\n",
			y:    "hello\n",
			opts: []atomdiff.Option{Width(23)},
			want: "世界世界世 | hello\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := atomdiff.Compare([]byte(tt.x), []byte(tt.y))
			if err != nil {
				t.Fatalf("Compare(...) failed: %v", err)
			}
			var b bytes.Buffer
			n, err := WriteSideBySide(&b, res, tt.info, tt.opts...)
			if err != nil {
				t.Fatalf("WriteSideBySide(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("WriteSideBySide(...) result are different [-want,+got]:\n%s", diff)
			}
			if n != b.Len() {
				t.Errorf("WriteSideBySide(...) = %d, want %d", n, b.Len())
			}
		})
	}
}

var errBroken = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errBroken }

func TestWriteErrors(t *testing.T) {
	res, err := atomdiff.Compare([]byte("a\nb\n"), []byte("a\nc\n"))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	writers := map[string]func() (int, error){
		"unified":      func() (int, error) { return WriteUnified(brokenWriter{}, res, atomdiff.InputInfo{}) },
		"ed":           func() (int, error) { return WriteEd(brokenWriter{}, res) },
		"side-by-side": func() (int, error) { return WriteSideBySide(brokenWriter{}, res, atomdiff.InputInfo{}) },
	}
	for name, write := range writers {
		t.Run(name, func(t *testing.T) {
			n, err := write()
			if !errors.Is(err, errBroken) {
				t.Errorf("got error %v, want %v", err, errBroken)
			}
			if n != 0 {
				t.Errorf("got %d bytes written, want 0", n)
			}
		})
	}
}

func TestCompareErrors(t *testing.T) {
	_, err := Unified("a\n", "\x00\x01\x02")
	if !errors.Is(err, atomdiff.ErrBinary) {
		t.Errorf("Unified(text, binary) = %v, want %v", err, atomdiff.ErrBinary)
	}
	got, err := Unified("a\n", "\x00\x01\x02", atomdiff.ForceText())
	if err != nil {
		t.Fatalf("Unified(text, binary, ForceText()) failed: %v", err)
	}
	if want := "@@ -1,1 +1,1 @@\n-a\n+\x00\x01\x02\n\\ No newline at end of file\n"; got != want {
		t.Errorf("Unified(text, binary, ForceText()) = %q, want %q", got, want)
	}
}

func BenchmarkUnified(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run(tt.name, func(b *testing.B) {
			for _, st := range tt.subtests {
				b.Run(st.name, func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						_, _ = st.format(tt.x, tt.y, st.opts...)
					}
				})
			}
		})
	}
}

type test struct {
	name     string
	filename string
	comment  []byte
	x, y     []byte
	subtests []subtest
}

type subtest struct {
	name        string
	opts        []atomdiff.Option
	format      func(x, y []byte, opts ...atomdiff.Option) ([]byte, error)
	formatName  string
	patchFormat unixpatch.Format
	pragmas     []byte
	want        []byte
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimPrefix(filename, "testdata/"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			case "diff":
				test.subtests = append(test.subtests, parseSubtest(t, f.Data))
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func parseSubtest(t testing.TB, data []byte) subtest {
	t.Helper()
	st := subtest{
		format:     Unified[[]byte],
		formatName: "Unified",
	}
	boolPragma := func(k, v string, opt atomdiff.Option) {
		switch v {
		case "true":
			st.opts = append(st.opts, opt)
		case "false":
			// do nothing
		default:
			t.Fatalf("invalid value for %s: %q", k, v)
		}
	}

	var name []string
	i := 0
	for ; i < len(data); i++ {
		if data[i] != '#' {
			break
		}
		i++
		eol := i + bytes.IndexByte(data[i:], '\n')
		if eol < i {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		k, v, found := bytes.Cut(data[i:eol], []byte{':'})
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		switch k, v := strings.TrimSpace(string(k)), strings.TrimSpace(string(v)); k {
		case "function-context":
			boolPragma(k, v, atomdiff.ShowFunctionContext())
			name = append(name, k)
		case "ignore-whitespace":
			boolPragma(k, v, atomdiff.IgnoreWhitespace())
			name = append(name, k)
		case "optimal":
			boolPragma(k, v, atomdiff.Optimal())
			name = append(name, k)
		case "indent-heuristic":
			boolPragma(k, v, IndentHeuristic())
			name = append(name, k)
		case "context":
			n, err := strconv.Atoi(v)
			if err != nil {
				t.Fatalf("invalid value for context: %v", err)
			}
			st.opts = append(st.opts, atomdiff.Context(n))
			name = append(name, k+"="+v)
		case "preset":
			p, err := atomdiff.ParsePreset(v)
			if err != nil {
				t.Fatalf("invalid value for preset: %v", err)
			}
			st.opts = append(st.opts, atomdiff.WithPreset(p))
			name = append(name, k+"="+v)
		case "format":
			switch v {
			case "unified":
				// default
			case "ed":
				st.format, st.formatName, st.patchFormat = Ed[[]byte], "Ed", unixpatch.Ed
			default:
				t.Fatalf("invalid value for format: %q", v)
			}
			name = append(name, v)
		default:
			t.Fatalf("unknown option: %q", k)
		}
		i = eol
	}
	if len(name) == 0 {
		name = append(name, "default")
	}
	st.name = strings.Join(name, ":")
	st.pragmas = data[:i]
	st.want = data[i:]
	return st
}

func writeGolden(t *testing.T, tt test) {
	f, err := os.CreateTemp("", "test-golden-*")
	if err != nil {
		t.Fatalf("failed to create temporary file: %v", err)
	}
	defer f.Close()

	write := func(b []byte) {
		t.Helper()
		if _, err := f.Write(b); err != nil {
			t.Fatalf("error writing golden file: %v", err)
		}
	}

	write(tt.comment)
	write([]byte("-- x --\n"))
	write(tt.x)
	write([]byte("-- y --\n"))
	write(tt.y)
	for _, st := range tt.subtests {
		write([]byte("-- diff --\n"))
		write(st.pragmas)
		write(st.want)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("error closing golden file: %v", err)
	}
	if err := os.Rename(f.Name(), tt.filename); err != nil {
		t.Fatalf("error renaming golden file: %v", err)
	}
}
