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
	"strconv"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/chunk"
)

// WriteEd writes res to w as an ed script that converts the left input into the right input and
// returns the number of bytes written.
//
// Commands are written from the end of the file to the beginning, so that line numbers of the
// left input stay valid while the script is applied. A missing newline at the end of the file
// can't be expressed in ed and is ignored.
func WriteEd(w io.Writer, res *atomdiff.Result) (int, error) {
	cw := &countingWriter{w: w}
	chunks := res.Chunks()
	right := res.Right()
	var b bytes.Buffer
	for i := len(chunks) - 1; i >= 0; i-- {
		c := chunks[i]
		if c.Kind != chunk.Changed {
			continue
		}
		switch {
		case c.Left.Len() == 0:
			b.WriteString(strconv.Itoa(c.Left.Start))
			b.WriteByte('a')
		case c.Right.Len() == 0:
			writeEdRange(&b, c.Left)
			b.WriteByte('d')
		default:
			writeEdRange(&b, c.Left)
			b.WriteByte('c')
		}
		b.WriteByte('\n')
		if c.Right.Len() > 0 {
			writeEdText(&b, right, c.Right)
		}
		if _, err := cw.Write(b.Bytes()); err != nil {
			break
		}
		b.Reset()
	}
	return cw.result("ed script")
}

// writeEdRange writes r with 1-based line numbers, "s" for a single line and "s,e" otherwise.
func writeEdRange(b *bytes.Buffer, r chunk.Range) {
	b.WriteString(strconv.Itoa(r.Start + 1))
	if r.Len() > 1 {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(r.End))
	}
}

// writeEdText writes the lines in r followed by a terminating ".". A line consisting of a single
// "." would end the text early. It's written as ".." and fixed with a substitution, after which
// text input is resumed if there are more lines.
func writeEdText(b *bytes.Buffer, seq *atomdiff.Sequence, r chunk.Range) {
	for i := r.Start; i < r.End; i++ {
		line := seq.Line(i)
		if line != "." {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}
		b.WriteString("..\n.\ns/.//\n")
		if i+1 == r.End {
			return
		}
		b.WriteString("a\n")
	}
	b.WriteString(".\n")
}
