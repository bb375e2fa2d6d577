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
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/chunk"
	"znkr.io/atomdiff/internal/config"
	"znkr.io/atomdiff/textdiff/color"
)

// WriteUnified writes res to w in unified format and returns the number of bytes written.
//
// The file header is written only if info has at least one label. Identical inputs produce no
// output at all.
//
// The following options are supported: [atomdiff.Context], [atomdiff.ShowFunctionContext],
// [atomdiff.FunctionPattern], [TerminalColors].
func WriteUnified(w io.Writer, res *atomdiff.Result, info atomdiff.InputInfo, opts ...atomdiff.Option) (int, error) {
	cfg := config.Apply(res.Config(), opts, config.Format)
	cw := &countingWriter{w: w}
	if res.Equal() {
		return 0, nil
	}

	u := unified{
		res:   res,
		color: cfg.Color,
	}
	if cfg.ShowFunctionContext && cfg.FunctionPattern != nil {
		u.funcs = &functionFinder{lines: res.Left(), re: cfg.FunctionPattern, match: -1}
	}

	if info.LeftLabel != "" || info.RightLabel != "" {
		u.fileHeader("--- ", info.LeftLabel)
		u.fileHeader("+++ ", info.RightLabel)
	}
	for h := range chunk.Hunks(res.Chunks(), cfg.Context) {
		u.hunk(h)
		if _, err := cw.Write(u.buf.Bytes()); err != nil {
			break
		}
		u.buf.Reset()
	}
	return cw.result("unified diff")
}

type unified struct {
	res   *atomdiff.Result
	color config.ColorConfig
	funcs *functionFinder
	buf   bytes.Buffer
}

func (u *unified) fileHeader(prefix, label string) {
	u.colored(u.color.FileHeader, func() {
		u.buf.WriteString(prefix)
		u.buf.WriteString(label)
	})
	u.buf.WriteByte('\n')
}

func (u *unified) hunk(h chunk.Hunk) {
	u.colored(u.color.HunkHeader, func() {
		u.buf.WriteString("@@ -")
		writeRange(&u.buf, h.Left)
		u.buf.WriteString(" +")
		writeRange(&u.buf, h.Right)
		u.buf.WriteString(" @@")
	})
	if u.funcs != nil {
		if fn := u.funcs.find(h.Left.Start); fn != "" {
			u.buf.WriteByte(' ')
			u.buf.WriteString(fn)
		}
	}
	u.buf.WriteByte('\n')

	left, right := u.res.Left(), u.res.Right()
	for _, c := range h.Chunks {
		if c.Kind == chunk.Equal {
			for i := c.Left.Start; i < c.Left.End; i++ {
				u.line(u.color.Match, prefixMatch, left, i)
			}
			continue
		}
		for i := c.Left.Start; i < c.Left.End; i++ {
			u.line(u.color.Delete, prefixDelete, left, i)
		}
		for i := c.Right.Start; i < c.Right.End; i++ {
			u.line(u.color.Insert, prefixInsert, right, i)
		}
	}
}

func (u *unified) line(code string, prefix byte, seq *atomdiff.Sequence, i int) {
	u.colored(code, func() {
		u.buf.WriteByte(prefix)
		u.buf.WriteString(seq.Line(i))
	})
	u.buf.WriteByte('\n')
	if !seq.HasNewline(i) {
		u.buf.WriteString(missingNewline)
	}
}

func (u *unified) colored(code string, f func()) {
	if code == "" {
		f()
		return
	}
	u.buf.WriteString(code)
	f()
	u.buf.WriteString(color.Reset)
}

// writeRange writes a hunk range as "l,n". An empty range refers to the line before it.
func writeRange(b *bytes.Buffer, r chunk.Range) {
	l := r.Start
	if r.Len() > 0 {
		l++
	}
	b.WriteString(strconv.Itoa(l))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(r.Len()))
}

// maxFunctionLen is the maximum length of a function line in a hunk header, in bytes.
const maxFunctionLen = 55

// functionFinder finds the closest line above a hunk that matches re. Hunks are visited in
// order, so every line is examined at most once.
type functionFinder struct {
	lines   *atomdiff.Sequence
	re      *regexp.Regexp
	scanned int // lines below scanned have been examined
	match   int // closest match below scanned, or -1
}

func (f *functionFinder) find(start int) string {
	for i := start - 1; i >= f.scanned; i-- {
		if f.matches(f.lines.Line(i)) {
			f.match = i
			break
		}
	}
	f.scanned = max(f.scanned, start)
	if f.match < 0 {
		return ""
	}
	return truncate(strings.TrimRightFunc(f.lines.Line(f.match), isSpace), maxFunctionLen)
}

var accessLabels = []string{"public:", "private:", "protected:"}

func (f *functionFinder) matches(line string) bool {
	for _, l := range accessLabels {
		if strings.HasPrefix(line, l) {
			return false
		}
	}
	return f.re.MatchString(line)
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f' }

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
