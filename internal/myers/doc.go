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

// Package myers contains the two Myers based algorithms of the engine: Forward and Divide.
//
// # Myers' algorithm
//
// Comparing x and y is a shortest path search in the edit graph. For x = "ABCABBA" and
// y = "CBABAC" the graph looks like this:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an atom of x, a step down inserts an atom of y and a diagonal step
// matches two equal atoms. Right and down steps cost 1, diagonals are free. We use s and t for the
// horizontal and vertical coordinates and k = s - t for diagonals.
//
// A d-path is a path with exactly d non-diagonal steps. The code refers to the following results
// of the paper:
//
// Lemma 1: A d-path ends on a diagonal k in {-d, -d+2, ..., d-2, d}.
//
// Corollary 1: A d-path ends on an odd diagonal if d is odd and on an even diagonal if d is even.
// In particular, the length of an optimal path from (0,0) to (N,M) has the parity of N-M.
//
// Lemma 2: The furthest reaching d-path on diagonal k is the furthest reaching (d-1)-path on
// diagonal k-1 followed by a right step, or the one on diagonal k+1 followed by a down step, in
// both cases followed by as many diagonals as possible.
//
// Lemma 3: There is a D-path from (0,0) to (N,M) if and only if there is a ⌈D/2⌉-path from (0,0)
// to some (s,t) and a ⌊D/2⌋-path from some (s',t') to (N,M) on the same diagonal with s' <= s.
// Both halves are parts of optimal paths.
//
// Computing the endpoints of Lemma 2 for d = 0, 1, 2, ... until one of them reaches (N, M) yields
// a minimal edit script in O((N+M)D) time.
//
// Forward keeps the endpoints of every round and walks them back to the origin. That needs
// O(D²) memory, which is why the engine only uses it below a configured state size.
//
// Divide runs the search from both corners at once. Where a forward and a backward path overlap,
// they share a middle snake of an optimal path. Splitting around it and recursing on both halves
// needs only O(N+M) memory.
//
// # Heuristics
//
// TOO_EXPENSIVE: A heuristic by Paul Eggert. If the search for the middle snake exceeds a cost
// limit of roughly sqrt(N+M) edits, the furthest reaching path found so far is used as the split
// point instead. This bounds the run time for large inputs with many differences at the expense
// of minimality. It is disabled by the Optimal option.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
