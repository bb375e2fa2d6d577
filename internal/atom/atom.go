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

// Package atom splits input buffers into atoms, the units the diff algorithms compare.
//
// An atom is a line including its terminating newline. The last atom of a buffer may lack the
// newline; such a sequence reports MissingNewline. Atoms never copy the input: offsets point into
// the caller's buffer, which therefore must not be modified while a Sequence is in use.
package atom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/go-enry/go-enry/v2"

	"znkr.io/atomdiff/internal/byteview"
)

// ErrBinary is returned by Atomize for input that does not look like text.
var ErrBinary = errors.New("binary content")

// Atom is a single comparable unit of a Sequence.
type Atom struct {
	Index  int    // position in the sequence
	Offset int    // byte offset in the buffer
	Len    int    // byte length including the terminator
	Key    string // comparison key, the raw text unless whitespace is folded
	Hash   uint64 // xxhash of Key
}

// Equal reports whether a and b compare equal.
func Equal(a, b *Atom) bool {
	return a.Hash == b.Hash && a.Key == b.Key
}

// Flags select how a buffer is atomized.
type Flags struct {
	ForceText        bool // skip binary detection
	IgnoreWhitespace bool // fold horizontal whitespace in comparison keys
}

// Sequence is an atomized buffer. It is immutable once built.
type Sequence struct {
	data           string
	atoms          []Atom
	missingNewline bool
}

// Atomize splits buf into line atoms.
func Atomize(buf []byte, flags Flags) (*Sequence, error) {
	if !flags.ForceText && IsBinary(buf) {
		return nil, ErrBinary
	}

	data := byteview.String(buf)
	n := strings.Count(data, "\n")
	missing := len(data) > 0 && data[len(data)-1] != '\n'
	if missing {
		n++
	}

	seq := &Sequence{
		data:           data,
		atoms:          make([]Atom, n),
		missingNewline: missing,
	}
	off := 0
	for i := range n {
		end := len(data)
		if j := strings.IndexByte(data[off:], '\n'); j >= 0 {
			end = off + j + 1
		}
		key := data[off:end]
		if flags.IgnoreWhitespace {
			key = foldWhitespace(key)
		}
		seq.atoms[i] = Atom{
			Index:  i,
			Offset: off,
			Len:    end - off,
			Key:    key,
			Hash:   xxhash.Sum64String(key),
		}
		off = end
	}
	return seq, nil
}

// IsBinary reports whether buf should be treated as binary: it contains a NUL byte anywhere or is
// not valid UTF-8. enry only sniffs a prefix, it's the fast path for the common case.
func IsBinary(buf []byte) bool {
	return enry.IsBinary(buf) || bytes.IndexByte(buf, 0) >= 0 || !utf8.Valid(buf)
}

// foldWhitespace collapses runs of horizontal whitespace into a single space and drops leading
// and trailing whitespace. The newline terminator is kept so that a missing final newline still
// makes two lines differ.
func foldWhitespace(line string) string {
	body, eol := line, ""
	if strings.HasSuffix(body, "\n") {
		body, eol = body[:len(body)-1], "\n"
	}

	var b strings.Builder
	b.Grow(len(line))
	space := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if isSpace(c) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(c)
	}
	b.WriteString(eol)
	return b.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// Len returns the number of atoms.
func (s *Sequence) Len() int { return len(s.atoms) }

// Atoms returns the atoms of s. The slice must not be modified.
func (s *Sequence) Atoms() []Atom { return s.atoms }

// Text returns the raw bytes of atom i, including its terminator.
func (s *Sequence) Text(i int) string {
	a := &s.atoms[i]
	return s.data[a.Offset : a.Offset+a.Len]
}

// Line returns the raw bytes of atom i without its terminator.
func (s *Sequence) Line(i int) string {
	return strings.TrimSuffix(s.Text(i), "\n")
}

// HasNewline reports whether atom i ends in a newline.
func (s *Sequence) HasNewline(i int) bool {
	return i < len(s.atoms)-1 || !s.missingNewline
}

// MissingNewline reports whether the last atom lacks a newline terminator.
func (s *Sequence) MissingNewline() bool { return s.missingNewline }

// Data returns the buffer s was built from.
func (s *Sequence) Data() string { return s.data }

// View returns a view of the whole sequence.
func (s *Sequence) View() View { return View{Seq: s, Start: 0, End: len(s.atoms)} }

// Slice returns a view of atoms [start, end).
func (s *Sequence) Slice(start, end int) View {
	if start < 0 || end < start || end > len(s.atoms) {
		panic(fmt.Sprintf("invalid view [%d, %d) of sequence with %d atoms", start, end, len(s.atoms)))
	}
	return View{Seq: s, Start: start, End: end}
}
