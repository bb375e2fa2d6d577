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
	"strings"

	"github.com/mattn/go-runewidth"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/chunk"
	"znkr.io/atomdiff/internal/config"
)

const (
	gutterMatch  = ' '
	gutterChange = '|'
	gutterDelete = '<'
	gutterInsert = '>'
)

// minWidth leaves room for the gutter and two columns of at least two cells.
const minWidth = 7

const tabWidth = 8

// WriteSideBySide writes both inputs to w in two columns and returns the number of bytes
// written. A marker between the columns tells how lines differ: "|" for changed lines, "<" for
// deleted lines and ">" for inserted lines. Lines are expanded and cut to fit into their column,
// widths are measured in terminal cells. If info has labels, they are written in the
// first row.
//
// The following options are supported: [Width].
func WriteSideBySide(w io.Writer, res *atomdiff.Result, info atomdiff.InputInfo, opts ...atomdiff.Option) (int, error) {
	cfg := config.Apply(res.Config(), opts, config.Format)
	s := sideBySide{
		col:   (max(cfg.Width, minWidth) - 3) / 2,
		left:  res.Left(),
		right: res.Right(),
	}
	cw := &countingWriter{w: w}

	if info.LeftLabel != "" || info.RightLabel != "" {
		s.pair(info.LeftLabel, gutterMatch, info.RightLabel)
	}
	for _, c := range res.Chunks() {
		n, m := c.Left.Len(), c.Right.Len()
		for k := range max(n, m) {
			i, j := c.Left.Start+k, c.Right.Start+k
			switch {
			case c.Kind == chunk.Equal:
				s.row(i, gutterMatch, j)
			case k < n && k < m:
				s.row(i, gutterChange, j)
			case k < n:
				s.row(i, gutterDelete, -1)
			default:
				s.row(-1, gutterInsert, j)
			}
			if s.buf.Len() >= 4096 {
				if _, err := cw.Write(s.buf.Bytes()); err != nil {
					return cw.result("side by side diff")
				}
				s.buf.Reset()
			}
		}
	}
	_, _ = cw.Write(s.buf.Bytes())
	return cw.result("side by side diff")
}

type sideBySide struct {
	col         int
	left, right *atomdiff.Sequence
	buf         bytes.Buffer
}

// row writes left line i and right line j separated by gutter. A negative index leaves the column
// empty.
func (s *sideBySide) row(i int, gutter byte, j int) {
	var l, r string
	if i >= 0 {
		l = s.left.Line(i)
	}
	if j >= 0 {
		r = s.right.Line(j)
	}
	s.pair(l, gutter, r)
}

func (s *sideBySide) pair(l string, gutter byte, r string) {
	l, r = s.cell(l), s.cell(r)
	s.buf.WriteString(strings.TrimRight(runewidth.FillRight(l, s.col)+" "+string(gutter)+" "+r, " "))
	s.buf.WriteByte('\n')
}

// cell expands tabs in line and cuts it to the column width.
func (s *sideBySide) cell(line string) string {
	line = strings.TrimSuffix(line, "\r")
	if strings.IndexByte(line, '\t') >= 0 {
		var sb strings.Builder
		w := 0
		for _, r := range line {
			if r == '\t' {
				n := tabWidth - w%tabWidth
				sb.WriteString(strings.Repeat(" ", n))
				w += n
				continue
			}
			sb.WriteRune(r)
			w += runewidth.RuneWidth(r)
		}
		line = sb.String()
	}
	return runewidth.Truncate(line, s.col, "")
}
