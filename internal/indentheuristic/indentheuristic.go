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

// Package indentheuristic moves change boundaries to positions that are easier to read. It
// implements the indentation heuristic by Michael Haggerty
// (https://github.com/mhagger/diff-slider-tools), which git uses for --indent-heuristic.
//
// A result usually isn't unique. A group of deleted lines can slide down by one if the first
// deleted line equals the first unchanged line after the group, and up by one if the last deleted
// line equals the last unchanged line before it; the same is true for inserted lines. Sliding
// never changes the number of changed lines. The heuristic uses this freedom to
//
//  1. merge groups that become adjacent while sliding,
//  2. align a group with a group on the other side, so that a deletion is directly followed by an
//     insertion, and
//  3. otherwise put the group where the blank lines and indentation around its boundaries look
//     most like a human would have split the text.
//
// The weights of (3) were fitted to human rated diffs by Haggerty.
package indentheuristic

import (
	"cmp"

	"znkr.io/atomdiff/internal/atom"
)

const (
	// A group is never moved more than this many lines.
	maxSliding = 100

	// Indentation is clamped to this value, it's not worth distinguishing deeper levels.
	maxIndent = 200

	// Runs of blank lines are only counted up to this length.
	maxBlanks = 20
)

// Penalties and weights for a split position. Lower scores are better.
const (
	startOfFilePenalty              = 1   // no non-blank lines before the split
	endOfFilePenalty                = 21  // no non-blank lines after the split
	totalBlankWeight                = -30 // per blank line around the split
	postBlankWeight                 = 6   // per blank line after the split
	relativeIndentPenalty           = -4  // indented more than the predecessor
	relativeIndentWithBlankPenalty  = 10  // same, with blank lines around the split
	relativeOutdentPenalty          = 24  // indented less than predecessor, more than successor
	relativeOutdentWithBlankPenalty = 17  // same, with blank lines around the split
	relativeDentPenalty             = 23  // indented less than predecessor, not less than successor
	relativeDentWithBlankPenalty    = 17  // same, with blank lines around the split

	// Only the sign of the difference of effective indents is used, weighted by this.
	indentWeight = 60
)

// Apply slides the groups of changed lines marked in rx and ry. Both result vectors must have one
// element per atom of x and y respectively plus a false border element.
func Apply(x, y *atom.Sequence, rx, ry []bool) {
	slideGroups(x, y, rx, ry) // deletions
	slideGroups(y, x, ry, rx) // insertions
}

// slideGroups slides the groups in r. The groups of the other side, ro, are only moved over to
// find the group aligned with the current one; they stay unchanged.
func slideGroups(seq, other *atom.Sequence, r, ro []bool) {
	g, o := newCursor(seq, r), newCursor(other, ro)
	for g.next() {
		o.mustNext()
		if g.len() == 0 {
			continue
		}

		var (
			alignedEnd = -1    // end of the group when it's aligned with a group on the other side
			lowest     = g.end // smallest end the group can slide to
			n          = 0
		)
		// Sliding can merge groups, which might allow more sliding. Repeat until stable.
		for n != g.len() {
			n = g.len()
			alignedEnd = -1

			for g.up() {
				o.mustPrev()
			}
			lowest = g.end
			if o.len() > 0 {
				alignedEnd = g.end
			}

			for g.down() {
				o.mustNext()
				if o.len() > 0 {
					alignedEnd = g.end
				}
			}
		}

		switch {
		case lowest == g.end:
			// The group can't slide.

		case alignedEnd != -1:
			for o.len() == 0 {
				if !g.up() {
					panic("aligned group not found")
				}
				o.mustPrev()
			}

		default:
			// The group is at its highest end position. Try all end positions above and move the
			// group to the best one.
			best := -1
			var bestScore score
			for end := max(lowest, g.end-n-1, g.end-maxSliding); end <= g.end; end++ {
				var sc score
				sc.add(measureSplit(seq, end))
				sc.add(measureSplit(seq, end-n))
				if best == -1 || sc.cmp(bestScore) <= 0 {
					best, bestScore = end, sc
				}
			}
			for g.end > best {
				if !g.up() {
					panic("best position not reachable")
				}
				o.mustPrev()
			}
		}
	}
	if o.next() {
		panic("group cursors out of sync")
	}
}

// cursor points at a group of consecutive changed lines. Empty groups sit between unchanged
// lines, so that the groups of both sides can be walked in lock step.
type cursor struct {
	start, end int // the group is r[start:end], start == end for empty groups
	atoms      []atom.Atom
	r          []bool
}

func newCursor(seq *atom.Sequence, r []bool) *cursor {
	if len(r) != seq.Len()+1 {
		panic("result vector doesn't match sequence")
	}
	return &cursor{start: -1, end: -1, atoms: seq.Atoms(), r: r}
}

func (c *cursor) len() int { return c.end - c.start }

func (c *cursor) equal(i, j int) bool { return atom.Equal(&c.atoms[i], &c.atoms[j]) }

// next moves to the next, possibly empty, group. It returns false at the end.
func (c *cursor) next() bool {
	if c.end == len(c.r)-1 {
		return false
	}
	c.start = c.end + 1
	c.end = c.start
	for c.end < len(c.r)-1 && c.r[c.end] {
		c.end++
	}
	return true
}

// prev moves to the previous, possibly empty, group. It returns false at the beginning.
func (c *cursor) prev() bool {
	if c.start == 0 {
		return false
	}
	c.end = c.start - 1
	c.start = c.end
	for c.start > 0 && c.r[c.start-1] {
		c.start--
	}
	return true
}

func (c *cursor) mustNext() {
	if !c.next() {
		panic("group cursors out of sync")
	}
}

func (c *cursor) mustPrev() {
	if !c.prev() {
		panic("group cursors out of sync")
	}
}

// down slides the group down by one line and merges it with a group it runs into. It returns
// false if the group can't slide.
func (c *cursor) down() bool {
	if c.end == len(c.r)-1 || !c.equal(c.start, c.end) {
		return false
	}
	c.r[c.start], c.r[c.end] = false, true
	c.start++
	c.end++
	for c.end < len(c.r)-1 && c.r[c.end] {
		c.end++
	}
	return true
}

// up slides the group up by one line and merges it with a group it runs into. It returns false
// if the group can't slide.
func (c *cursor) up() bool {
	if c.start == 0 || !c.equal(c.start-1, c.end-1) {
		return false
	}
	c.r[c.start-1], c.r[c.end-1] = true, false
	c.start--
	c.end--
	for c.start > 0 && c.r[c.start-1] {
		c.start--
	}
	return true
}

// split describes the surroundings of a split before a line.
type split struct {
	eof        bool // the split is after the last line
	indent     int  // indent of the line after the split, -1 if blank
	preBlank   int  // blank lines before the split
	preIndent  int  // indent of the first non-blank line before the split, -1 if none
	postBlank  int  // blank lines after the line after the split
	postIndent int  // indent of the first non-blank line after that, -1 if none
}

// measureSplit measures the split before line i. Indentation is measured on the raw text, even
// if lines compare with folded whitespace.
func measureSplit(seq *atom.Sequence, i int) split {
	sp := split{indent: -1, preIndent: -1, postIndent: -1}
	if i >= seq.Len() {
		sp.eof = true
	} else {
		sp.indent = indentOf(seq.Text(i))
	}

	for j := i - 1; j >= 0; j-- {
		if sp.preIndent = indentOf(seq.Text(j)); sp.preIndent != -1 {
			break
		}
		if sp.preBlank++; sp.preBlank == maxBlanks {
			sp.preIndent = 0
			break
		}
	}

	for j := i + 1; j < seq.Len(); j++ {
		if sp.postIndent = indentOf(seq.Text(j)); sp.postIndent != -1 {
			break
		}
		if sp.postBlank++; sp.postBlank == maxBlanks {
			sp.postIndent = 0
			break
		}
	}
	return sp
}

// indentOf returns the width of the leading whitespace of line, with tab stops every 8 columns,
// or -1 if the line is blank.
func indentOf(line string) int {
	indent := 0
	for i := range len(line) {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\n', '\v', '\r':
		default:
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1
}

type score struct {
	effectiveIndent int
	penalty         int
}

func (s *score) add(sp split) {
	if sp.preIndent == 1 && sp.preBlank == 0 {
		s.penalty += startOfFilePenalty
	}
	if sp.eof {
		s.penalty += endOfFilePenalty
	}

	postBlank := 0
	if sp.indent == -1 {
		postBlank = 1 + sp.postBlank
	}
	totalBlank := sp.preBlank + postBlank
	s.penalty += totalBlankWeight*totalBlank + postBlankWeight*postBlank

	indent := sp.indent
	if indent == -1 {
		indent = sp.postIndent
	}
	s.effectiveIndent += indent

	switch {
	case indent == -1 || sp.preIndent == -1 || indent == sp.preIndent:
	case indent > sp.preIndent:
		if totalBlank != 0 {
			s.penalty += relativeIndentWithBlankPenalty
		} else {
			s.penalty = relativeIndentPenalty
		}
	case sp.postIndent != -1 && sp.postIndent > indent:
		// Outdented, but the next line is indented more: probably the start of a new block.
		if totalBlank != 0 {
			s.penalty += relativeOutdentWithBlankPenalty
		} else {
			s.penalty += relativeOutdentPenalty
		}
	default:
		// Outdented: probably the end of the previous block.
		if totalBlank != 0 {
			s.penalty += relativeDentWithBlankPenalty
		} else {
			s.penalty += relativeDentPenalty
		}
	}
}

func (s score) cmp(t score) int {
	return indentWeight*cmp.Compare(s.effectiveIndent, t.effectiveIndent) + s.penalty - t.penalty
}
