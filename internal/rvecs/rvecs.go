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

// Package rvecs converts between chunks and result vectors. A result vector marks every changed
// line of one input with true and carries one trailing border element that is always false, so
// that scanners never need a bounds check before looking at the next element.
//
// Chunks are the representation the engine produces and formatters consume; result vectors make
// it easy to move individual edits around, which is what the indent heuristic does.
package rvecs

import (
	"fmt"

	"znkr.io/atomdiff/internal/chunk"
)

// Make allocates result vectors for inputs of length n and m.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// FromChunks returns the result vectors for chunks, which must tile [0, n) and [0, m).
func FromChunks(chunks []chunk.Chunk, n, m int) (rx, ry []bool) {
	rx, ry = Make(n, m)
	for _, c := range chunks {
		if c.Kind != chunk.Changed {
			continue
		}
		for s := c.Left.Start; s < c.Left.End; s++ {
			rx[s] = true
		}
		for t := c.Right.Start; t < c.Right.End; t++ {
			ry[t] = true
		}
	}
	return
}

// ToChunks turns result vectors back into chunks.
func ToChunks(rx, ry []bool) []chunk.Chunk {
	n, m := len(rx)-1, len(ry)-1
	var b chunk.Builder
	s, t := 0, 0
	for s < n || t < m {
		pos := s + t
		s0, t0 := s, t
		for s < n && rx[s] {
			s++
		}
		for t < m && ry[t] {
			t++
		}
		b.Append(chunk.Chunk{Kind: chunk.Changed, Left: chunk.Range{Start: s0, End: s}, Right: chunk.Range{Start: t0, End: t}})

		s0, t0 = s, t
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
		b.Append(chunk.Chunk{Kind: chunk.Equal, Left: chunk.Range{Start: s0, End: s}, Right: chunk.Range{Start: t0, End: t}})

		if s+t == pos {
			panic(fmt.Sprintf("result vectors out of sync at (%d, %d)", s, t))
		}
	}
	return b.Finish(chunk.Range{Start: 0, End: n}, chunk.Range{Start: 0, End: m})
}
