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

// Package patience implements the patience diff algorithm.
//
// Patience matches atoms that occur exactly once in both ranges, keeps the longest sequence of
// such matches that is increasing on both sides and uses them as anchors. The ranges between
// anchors are left to the engine, which typically applies patience again until no unique atoms
// remain and a Myers variant takes over.
package patience

import (
	"math"
	"sort"

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
)

// Patience is the patience algorithm.
type Patience struct{}

// StateSize returns the estimated working state in bytes for inputs of length n and m.
func StateSize(n, m int) int {
	return algo.IntsSize(4 * (n + m))
}

// entry counts the occurrences of a key in both ranges.
type entry struct {
	key      string
	nx, ny   int
	s, t     int  // position of the last occurrence in x and y
	collided bool // another key with the same hash was seen
}

func (Patience) Attempt(node algo.Node, x, y atom.View, ws *algo.Workspace) algo.Outcome {
	if est := StateSize(x.Len(), y.Len()); !node.Permits(est) {
		return algo.Decline(algo.DeclineStateSize, est)
	}

	pairs := uniquePairs(x, y)
	if len(pairs) == 0 {
		return algo.Decline(algo.DeclineUnsuitable, 0)
	}

	// The pairs are ordered by their position in x. The longest subsequence that is also ordered
	// by position in y is the largest set of matches that can appear together in one alignment.
	ts := ws.Ints(len(pairs))
	for i, p := range pairs {
		ts[i] = p.t
	}
	lis := longestIncreasing(ts)

	// Extend every anchor across neighboring equal atoms. A forward extension may swallow the
	// anchors that follow it.
	anchors := make([]chunk.Chunk, 0, len(lis))
	ds, dt := x.Start, y.Start // end of the previous anchor
	for _, i := range lis {
		p := pairs[i]
		if p.s < ds || p.t < dt {
			continue // swallowed by the previous extension
		}
		s0, t0 := p.s, p.t
		for s0 > ds && t0 > dt && x.Equal(s0-1, y, t0-1) {
			s0--
			t0--
		}
		s1, t1 := p.s+1, p.t+1
		for s1 < x.End && t1 < y.End && x.Equal(s1, y, t1) {
			s1++
			t1++
		}
		anchors = append(anchors, chunk.Chunk{
			Kind:  chunk.Equal,
			Left:  chunk.Range{Start: s0, End: s1},
			Right: chunk.Range{Start: t0, End: t1},
		})
		ds, dt = s1, t1
	}
	return algo.SplitAt(anchors)
}

type pair struct {
	s, t int
}

// uniquePairs returns the positions of atoms that occur exactly once in x and once in y, ordered
// by their position in x.
func uniquePairs(x, y atom.View) []pair {
	index := make(map[uint64]int, x.Len())
	var entries []entry
	count := func(a *atom.Atom, inX bool) {
		i, ok := index[a.Hash]
		if !ok {
			if !inX {
				return // only in y, can never be unique in both
			}
			i = len(entries)
			index[a.Hash] = i
			entries = append(entries, entry{key: a.Key})
		}
		e := &entries[i]
		if e.key != a.Key {
			e.collided = true
			return
		}
		if inX {
			e.nx++
			e.s = a.Index
		} else {
			e.ny++
			e.t = a.Index
		}
	}
	xa, ya := x.Atoms(), y.Atoms()
	for i := range xa {
		count(&xa[i], true)
	}
	for i := range ya {
		count(&ya[i], false)
	}

	var pairs []pair
	for i := range xa {
		e := &entries[index[xa[i].Hash]]
		if e.nx == 1 && e.ny == 1 && !e.collided {
			pairs = append(pairs, pair{e.s, e.t})
		}
	}
	return pairs
}

// longestIncreasing returns the indices of a longest strictly increasing subsequence of v.
//
// This is Algorithm A from Thomas G. Szymanski, "A Special Case of the Maximal Common
// Subsequence Problem", Princeton TR #170 (January 1975): tails[k] is the smallest value that
// ends an increasing subsequence of length k+1, and length[i] is the length of the longest one
// ending in v[i].
func longestIncreasing(v []int) []int {
	n := len(v)
	tails := make([]int, 0, n)
	length := make([]int, n)
	for i, e := range v {
		k := sort.SearchInts(tails, e)
		if k == len(tails) {
			tails = append(tails, e)
		} else {
			tails[k] = e
		}
		length[i] = k + 1
	}

	// Walk backwards and pick, for every length, the last element that still fits in front of
	// the element picked before.
	k := len(tails)
	out := make([]int, k)
	last := math.MaxInt
	for i := n - 1; i >= 0 && k > 0; i-- {
		if length[i] == k && v[i] < last {
			k--
			out[k] = i
			last = v[i]
		}
	}
	return out
}
