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

package myers

import (
	"math"
	"slices"

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
)

// Forward is the greedy forward search of Myers' algorithm. It records the furthest reaching
// endpoints of every d-path and walks them back to recover a minimal edit script. The recorded
// trace grows quadratically with the number of differences, so Forward declines inputs whose
// worst case trace exceeds the permitted state size.
type Forward struct{}

// ForwardStateSize returns the worst case trace size in bytes for inputs of length n and m.
func ForwardStateSize(n, m int) int {
	k := n + m + 1
	if k > 1<<30 {
		return math.MaxInt
	}
	return algo.IntsSize(k * k)
}

func (Forward) Attempt(node algo.Node, x, y atom.View, ws *algo.Workspace) algo.Outcome {
	if est := ForwardStateSize(x.Len(), y.Len()); !node.Permits(est) {
		return algo.Decline(algo.DeclineStateSize, est)
	}

	p := atom.CommonPrefix(x, y)
	q := atom.CommonSuffix(x.Sub(x.Start+p, x.End), y.Sub(y.Start+p, y.End))
	xs, xe := x.Start+p, x.End-q
	ys, ye := y.Start+p, y.End-q

	var out []chunk.Chunk
	out = appendChunk(out, chunk.Equal, x.Start, xs, y.Start, ys)
	s, t := xs, ys
	for _, r := range shortestPath(x.Seq.Atoms()[xs:xe], y.Seq.Atoms()[ys:ye], ws) {
		out = appendChunk(out, chunk.Changed, s, xs+r.s, t, ys+r.t)
		out = appendChunk(out, chunk.Equal, xs+r.s, xs+r.s+r.n, ys+r.t, ys+r.t+r.n)
		s, t = xs+r.s+r.n, ys+r.t+r.n
	}
	out = appendChunk(out, chunk.Changed, s, xe, t, ye)
	out = appendChunk(out, chunk.Equal, xe, x.End, ye, y.End)
	return algo.Resolve(out)
}

// run is a sequence of n matching atoms starting at x[s] and y[t].
type run struct {
	s, t, n int
}

// shortestPath returns the matching runs of a minimal edit script that transforms x into y, in
// order.
func shortestPath(x, y []atom.Atom, ws *algo.Workspace) []run {
	N, M := len(x), len(y)
	if N == 0 || M == 0 {
		return nil
	}

	// v[off+k] holds the s-coordinate of the furthest reaching d-path on diagonal k = s - t. The
	// endpoints of round d are appended to trace at offset d*d, since rounds 0..d-1 store
	// 1 + 3 + ... + (2d-1) = d*d values.
	dmax := N + M
	off := dmax + 1
	v := ws.Ints(2*dmax + 3)
	var trace []int

	D := -1
search:
	for d := 0; d <= dmax; d++ {
		for k := -d; k <= d; k += 2 {
			var s int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				s = v[off+k+1] // insertion
			} else {
				s = v[off+k-1] + 1 // deletion, preferred on ties
			}
			t := s - k
			for s < N && t < M && atom.Equal(&x[s], &y[t]) {
				s++
				t++
			}
			v[off+k] = s
			if s >= N && t >= M {
				D = d
				break search
			}
		}
		trace = append(trace, v[off-d:off+d+1]...)
	}
	if D < 0 {
		panic("no path found")
	}

	// Walk back from (N, M), repeating the decisions of the forward search.
	runs := make([]run, 0, D+1)
	s, t := N, M
	for d := D; d > 0; d-- {
		prev := trace[(d-1)*(d-1) : d*d] // diagonal k of round d-1 is at prev[k+d-1]
		k := s - t
		var pk int
		if k == -d || (k != d && prev[k-1+d-1] < prev[k+1+d-1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := prev[pk+d-1]
		pt := ps - pk

		// (es, et) is the point right after the edit, the match run goes from there to (s, t).
		es, et := ps, pt+1
		if pk == k-1 {
			es, et = ps+1, pt
		}
		if s > es {
			runs = append(runs, run{es, et, s - es})
		}
		s, t = ps, pt
	}
	if s > 0 {
		runs = append(runs, run{0, 0, s})
	}
	slices.Reverse(runs)
	return runs
}

func appendChunk(out []chunk.Chunk, kind chunk.Kind, s0, s1, t0, t1 int) []chunk.Chunk {
	if s0 == s1 && t0 == t1 {
		return out
	}
	return append(out, chunk.Chunk{Kind: kind, Left: chunk.Range{Start: s0, End: s1}, Right: chunk.Range{Start: t0, End: t1}})
}
