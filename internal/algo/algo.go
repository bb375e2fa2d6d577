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

// Package algo describes diff algorithms and how they are combined.
//
// Algorithms are arranged in a Graph of Nodes. Every node names an implementation, a ceiling for
// the memory the implementation may use, a fallback node that takes over when the node declines
// a range, and an inner node that resolves the ranges left between the anchors of a split. The
// engine walks the graph; this package only describes it.
package algo

import (
	"math"

	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
)

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Impl,OutcomeKind,DeclineReason -output=algo_string.go

// Impl identifies an algorithm implementation.
type Impl int

const (
	// Myers is the forward Myers algorithm. It keeps the whole search trace and therefore
	// needs memory quadratic in the size of the input.
	Myers Impl = iota
	// MyersDivide is the linear space divide and conquer variant of Myers.
	MyersDivide
	// Patience anchors on atoms that are unique in both ranges.
	Patience
	// None treats everything between the common prefix and suffix as changed.
	None
)

// Unlimited is a PermittedStateSize without ceiling.
const Unlimited = -1

// Node is a single entry of a Graph.
type Node struct {
	Impl Impl

	// PermittedStateSize is the largest working state, in bytes, that the implementation may
	// allocate for a range. A node whose estimate exceeds it declines. Zero always declines.
	PermittedStateSize int

	// Fallback is tried on the same range when this node declines.
	Fallback NodeID

	// Inner resolves the ranges between anchors when this node splits a range. If it is NoNode,
	// the node itself is used.
	Inner NodeID
}

// Permits reports whether an implementation may allocate size bytes.
func (n Node) Permits(size int) bool {
	return n.PermittedStateSize == Unlimited || size <= n.PermittedStateSize
}

// IntsSize returns the size in bytes of n ints, saturating instead of overflowing.
func IntsSize(n int) int {
	if n < 0 || n > math.MaxInt/8 {
		return math.MaxInt
	}
	return n * 8
}

// OutcomeKind tells how an implementation handled a range.
type OutcomeKind int

const (
	Declined OutcomeKind = iota
	Resolved
	Split
)

// DeclineReason explains a Declined outcome.
type DeclineReason int

const (
	DeclineStateSize DeclineReason = iota // the state estimate exceeds the node's ceiling
	DeclineUnsuitable                     // the input has no structure the algorithm can use
)

// Outcome is the result of an Attempt.
//
//   - Declined: Reason and Estimate are set, nothing was produced.
//   - Resolved: Chunks tile both views completely.
//   - Split: Chunks are Equal anchors in increasing order. The gaps before, between and after
//     the anchors are left to the inner node.
type Outcome struct {
	Kind     OutcomeKind
	Reason   DeclineReason
	Estimate int
	Chunks   []chunk.Chunk
}

func Decline(reason DeclineReason, estimate int) Outcome {
	return Outcome{Kind: Declined, Reason: reason, Estimate: estimate}
}

func Resolve(chunks []chunk.Chunk) Outcome {
	return Outcome{Kind: Resolved, Chunks: chunks}
}

func SplitAt(anchors []chunk.Chunk) Outcome {
	return Outcome{Kind: Split, Chunks: anchors}
}

// Algorithm is implemented by every Impl except None, which the engine handles itself.
type Algorithm interface {
	// Attempt compares x and y, both non-empty, under the limits of node.
	Attempt(node Node, x, y atom.View, ws *Workspace) Outcome
}

// Workspace carries settings and scratch memory shared by all attempts of a single comparison.
type Workspace struct {
	// Optimal disables heuristics that trade minimality for speed.
	Optimal bool

	ints []int
}

// Ints returns a zeroed scratch slice of length n. The slice is only valid until the next call.
func (w *Workspace) Ints(n int) []int {
	if cap(w.ints) < n {
		w.ints = make([]int, n)
	}
	s := w.ints[:n]
	clear(s)
	return s
}
