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

package chunk

import "iter"

// Hunk is a group of chunks that are printed together. It contains at least one Changed chunk
// and at most context atoms of Equal chunks before and after the changes.
type Hunk struct {
	Left, Right Range // extent of the hunk, including context
	Chunks      []Chunk
}

// Hunks groups chunks into hunks with up to context atoms of surrounding context. Changes that
// are separated by no more than 2*context equal atoms end up in the same hunk, since their
// context would otherwise overlap.
func Hunks(chunks []Chunk, context int) iter.Seq[Hunk] {
	context = max(context, 0)
	return func(yield func(Hunk) bool) {
		i := 0
		for i < len(chunks) {
			if chunks[i].Kind != Changed {
				i++
				continue
			}

			// Extend the hunk over equal chunks that are short enough to be shared context.
			first, last := i, i
			for j := i + 1; j < len(chunks); j++ {
				if chunks[j].Kind == Changed {
					last = j
					continue
				}
				if j+1 < len(chunks) && chunks[j].Left.Len() <= 2*context {
					continue
				}
				break
			}

			var h Hunk
			if first > 0 && chunks[first-1].Kind == Equal {
				c := chunks[first-1]
				n := min(context, c.Left.Len())
				h.Chunks = append(h.Chunks, Chunk{
					Kind:  Equal,
					Left:  Range{c.Left.End - n, c.Left.End},
					Right: Range{c.Right.End - n, c.Right.End},
				})
			}
			h.Chunks = append(h.Chunks, chunks[first:last+1]...)
			if last+1 < len(chunks) && chunks[last+1].Kind == Equal {
				c := chunks[last+1]
				n := min(context, c.Left.Len())
				h.Chunks = append(h.Chunks, Chunk{
					Kind:  Equal,
					Left:  Range{c.Left.Start, c.Left.Start + n},
					Right: Range{c.Right.Start, c.Right.Start + n},
				})
			}
			// Context is clipped to zero for context == 0, drop those chunks again.
			h.Chunks = dropEmpty(h.Chunks)
			h.Left = Range{h.Chunks[0].Left.Start, h.Chunks[len(h.Chunks)-1].Left.End}
			h.Right = Range{h.Chunks[0].Right.Start, h.Chunks[len(h.Chunks)-1].Right.End}

			if !yield(h) {
				return
			}
			i = last + 1
		}
	}
}

func dropEmpty(chunks []Chunk) []Chunk {
	out := chunks[:0]
	for _, c := range chunks {
		if c.Left.Len()+c.Right.Len() > 0 {
			out = append(out, c)
		}
	}
	return out
}
