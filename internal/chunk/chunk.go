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

// Package chunk contains the result representation shared by the diff algorithms, the engine
// and the formatters: an ordered list of chunks that tiles both inputs.
package chunk

import "fmt"

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind

// Kind distinguishes matching from differing chunks.
type Kind int

const (
	Equal Kind = iota
	Changed
)

// Range is a half open range [Start, End) of atom indices.
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Chunk pairs a range of the left input with a range of the right input.
//
// For Equal chunks both ranges have the same length and the atoms match pairwise. For Changed
// chunks either range may be empty (a pure deletion or insertion) but not both.
type Chunk struct {
	Kind        Kind
	Left, Right Range
}

func (c Chunk) String() string { return fmt.Sprintf("%v%v%v", c.Kind, c.Left, c.Right) }

// Builder accumulates chunks in order.
//
// Empty chunks are dropped and a chunk of the same kind as its predecessor is merged into it, so
// that the result never contains two adjacent chunks of the same kind.
type Builder struct {
	chunks []Chunk
}

// Append adds c. It panics if c does not start where the previous chunk ended.
func (b *Builder) Append(c Chunk) {
	if c.Left.Len() < 0 || c.Right.Len() < 0 {
		panic(fmt.Sprintf("invalid chunk %v", c))
	}
	if c.Left.Len() == 0 && c.Right.Len() == 0 {
		return
	}
	if c.Kind == Equal && c.Left.Len() != c.Right.Len() {
		panic(fmt.Sprintf("equal chunk with different lengths %v", c))
	}
	n := len(b.chunks)
	if n == 0 {
		b.chunks = append(b.chunks, c)
		return
	}
	last := &b.chunks[n-1]
	if last.Left.End != c.Left.Start || last.Right.End != c.Right.Start {
		panic(fmt.Sprintf("chunk %v does not continue %v", c, *last))
	}
	if last.Kind == c.Kind {
		last.Left.End = c.Left.End
		last.Right.End = c.Right.End
		return
	}
	b.chunks = append(b.chunks, c)
}

// Len returns the number of chunks appended so far, after merging.
func (b *Builder) Len() int { return len(b.chunks) }

// Finish returns the chunks and verifies that they tile left and right exactly. A violation is
// an internal error and panics.
func (b *Builder) Finish(left, right Range) []Chunk {
	chunks := b.chunks
	b.chunks = nil
	if err := Validate(chunks, left, right); err != nil {
		panic(err)
	}
	return chunks
}

// Validate checks that chunks tile left and right without gaps or overlap and alternate in kind.
func Validate(chunks []Chunk, left, right Range) error {
	s, t := left.Start, right.Start
	for i, c := range chunks {
		if c.Left.Start != s || c.Right.Start != t {
			return fmt.Errorf("chunk %d %v does not start at (%d, %d)", i, c, s, t)
		}
		if c.Left.Len() < 0 || c.Right.Len() < 0 || c.Left.Len()+c.Right.Len() == 0 {
			return fmt.Errorf("chunk %d %v is empty or inverted", i, c)
		}
		if c.Kind == Equal && c.Left.Len() != c.Right.Len() {
			return fmt.Errorf("chunk %d %v has ranges of different lengths", i, c)
		}
		if i > 0 && chunks[i-1].Kind == c.Kind {
			return fmt.Errorf("chunk %d %v has the same kind as its predecessor", i, c)
		}
		s, t = c.Left.End, c.Right.End
	}
	if s != left.End || t != right.End {
		return fmt.Errorf("chunks end at (%d, %d), want (%d, %d)", s, t, left.End, right.End)
	}
	return nil
}
