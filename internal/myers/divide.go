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

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
)

// Divide is the linear space variant of Myers' algorithm. Instead of resolving a range, it finds
// a middle snake of an optimal path and splits the range around it. The engine resolves the two
// halves with the node's inner algorithm.
type Divide struct{}

// DivideStateSize returns the size in bytes of the v-arrays for inputs of length n and m.
func DivideStateSize(n, m int) int {
	if n+m > math.MaxInt/8 {
		return math.MaxInt
	}
	return algo.IntsSize(2 * (2*(n+m) + 3))
}

func (Divide) Attempt(node algo.Node, x, y atom.View, ws *algo.Workspace) algo.Outcome {
	if est := DivideStateSize(x.Len(), y.Len()); !node.Permits(est) {
		return algo.Decline(algo.DeclineStateSize, est)
	}

	p := atom.CommonPrefix(x, y)
	q := atom.CommonSuffix(x.Sub(x.Start+p, x.End), y.Sub(y.Start+p, y.End))
	xs, xe := x.Start+p, x.End-q
	ys, ye := y.Start+p, y.End-q

	anchors := []chunk.Chunk{equal(x.Start, y.Start, p)}
	if xs < xe && ys < ye {
		// The middle snake may be empty, it still marks the point where the range is split.
		s0, s1, t0, t1 := split(x.Seq.Atoms()[xs:xe], y.Seq.Atoms()[ys:ye], ws, ws.Optimal)
		anchors = append(anchors, chunk.Chunk{
			Kind:  chunk.Equal,
			Left:  chunk.Range{Start: xs + s0, End: xs + s1},
			Right: chunk.Range{Start: ys + t0, End: ys + t1},
		})
	}
	anchors = append(anchors, equal(xe, ye, q))
	return algo.SplitAt(anchors)
}

func equal(s, t, n int) chunk.Chunk {
	return chunk.Chunk{Kind: chunk.Equal, Left: chunk.Range{Start: s, End: s + n}, Right: chunk.Range{Start: t, End: t + n}}
}

// split finds the endpoints of a, possibly empty, sequence of diagonals in the middle of an
// optimal path from (0, 0) to (len(x), len(y)).
//
// x and y must not be empty and must not have a common prefix or suffix. The returned snake
// never touches both corners, so both remaining rectangles are strictly smaller than the input.
func split(x, y []atom.Atom, ws *algo.Workspace, optimal bool) (s0, s1, t0, t1 int) {
	N, M := len(x), len(y)

	// vf and vb hold the furthest reaching endpoints of the forward and backward d-paths: the
	// endpoint on diagonal k is stored at v[v0+k]. Only s is stored, t = s - k. One extra element
	// on both ends is a border, written below before it is read, that lets the k-loops treat the
	// edges of the grid like any other diagonal.
	diagonals := N + M
	vlen := 2*diagonals + 3 // +1 for the middle point and +2 for the borders
	buf := ws.Ints(2 * vlen)
	vf, vb := buf[:vlen], buf[vlen:]
	v0 := diagonals + 1

	// The cost limit for TOO_EXPENSIVE is roughly the square root of the number of diagonals.
	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	costLimit = max(minCostLimit, costLimit)

	// k = s - t, so the grid spans the diagonals [-M, N]. Both searches use the same numbering of
	// diagonals, the forward search is centered on diagonal 0 and the backward search on N-M.
	// That way, overlaps are checked without converting k.
	kmin, kmax := -M, N
	fmid, bmid := 0, N-M
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// By Corollary 1 the optimal path length has the parity of N-M. Overlaps only need to be
	// checked in the forward pass for odd and in the backward pass for even deltas.
	odd := (N-M)%2 != 0

	// Without common prefix or suffix there is no 0-path, the d=0 round would only produce these
	// two endpoints. Starting at d=1 keeps the d=0 special case out of the k-loops.
	//
	// By Lemma 3 the searches meet at the latest for d = ⌈(N+M)/2⌉, so the loop needs no
	// condition.
	vf[v0+fmid] = 0
	vb[v0+bmid] = N
	for d := 1; ; d++ {
		// Forward pass.
		//
		// The diagonals of round d are fmid-d, fmid-d+2, ..., fmid+d, but the ones outside of the
		// grid are useless. Instead of moving outside, the range shrinks back by one at the grid
		// edges, which keeps the step of 2. When it grows, the new border element is set to a
		// value that never wins the comparison below.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		// vf holds the endpoints of the (d-1)-paths on the diagonals k±1. By Lemma 1 those never
		// share a slot with the d-paths written in this round.
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Lemma 2: extend the better of the paths on k+1 (down step, implied by t = s - k)
			// and k-1 (right step). Ties go to the right step, deletions come first.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the diagonal as far as possible.
			ss, st := s, t
			for s < N && t < M && atom.Equal(&x[s], &y[t]) {
				s++
				t++
			}
			vf[k0] = s

			// A forward path reaching past the backward path on the same diagonal completes an
			// optimal path, the diagonal just followed is its middle snake.
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ss, s, st, t
			}
		}

		// Backward pass, mirroring the forward pass with the borders set to MaxInt.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k
			ss, st := s, t
			for s > 0 && t > 0 && atom.Equal(&x[s-1], &y[t-1]) {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, ss, t, st
			}
		}

		// TOO_EXPENSIVE: stop searching and settle for a good enough split.
		if !optimal && d >= costLimit {
			return tooExpensive(vf, vb, v0, N, M, fmin, fmax, bmin, bmax)
		}
	}
}

// tooExpensive implements Paul Eggert's TOO_EXPENSIVE heuristic: give up on finding the optimal
// middle snake and split at the endpoint of the furthest reaching forward or backward path
// instead.
func tooExpensive(vf, vb []int, v0, N, M, fmin, fmax, bmin, bmax int) (s0, s1, t0, t1 int) {
	// Forward endpoint inside the grid that maximizes s+t.
	fbest, fbestk := math.MinInt, 0
	for k := fmin; k <= fmax; k += 2 {
		s := vf[k+v0]
		t := s - k
		if 0 <= s && s < N && 0 <= t && t < M && fbest < s+t {
			fbest, fbestk = s+t, k
		}
	}

	// Backward endpoint inside the grid that minimizes s+t.
	bbest, bbestk := math.MaxInt, 0
	for k := bmin; k <= bmax; k += 2 {
		s := vb[k+v0]
		t := s - k
		if 0 <= s && s < N && 0 <= t && t < M && s+t < bbest {
			bbest, bbestk = s+t, k
		}
	}

	switch {
	case fbest != math.MinInt && (N+M)-bbest < fbest:
		k := fbestk
		k0 := k + v0
		s := vf[k0]
		t := s - k
		// Recover the diagonal that ends in (s, t) from the previous endpoint.
		pk := k - 1
		if vf[k0-1] < vf[k0+1] {
			pk = k + 1
		}
		ps := vf[pk+v0]
		diag := min(s-ps, t-(ps-pk))
		return s - diag, s, t - diag, t
	case bbest != math.MaxInt:
		k := bbestk
		k0 := k + v0
		s := vb[k0]
		t := s - k
		pk := k + 1
		if vb[k0-1] < vb[k0+1] {
			pk = k - 1
		}
		ps := vb[pk+v0]
		diag := min(ps-s, (ps-pk)-t)
		return s, s + diag, t, t + diag
	}
	panic("no best path found")
}
