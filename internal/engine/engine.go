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

// Package engine executes an algorithm graph on two atom sequences.
//
// The engine starts at the root node and resolves a pair of views as follows:
//
//  1. Two empty views need no work, a single empty view is one Changed chunk.
//  2. The node's implementation is attempted.
//  3. If it declines, the node's fallback is attempted on the same views. Without a fallback the
//     views are resolved by the None policy: the common prefix and suffix are Equal, the rest is
//     Changed. In strict mode, the decline is an error instead.
//  4. If it splits the views, the gaps around the anchors are resolved recursively with the
//     node's inner node, or the node itself.
package engine

import (
	"github.com/charmbracelet/log"

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
	"znkr.io/atomdiff/internal/errs"
	"znkr.io/atomdiff/internal/logging"
	"znkr.io/atomdiff/internal/myers"
	"znkr.io/atomdiff/internal/patience"
)

// DefaultMaxDepth is the default recursion ceiling.
const DefaultMaxDepth = 1 << 16

// Options control a single run.
type Options struct {
	// Optimal disables heuristics that trade minimality for speed.
	Optimal bool
	// Strict turns declines without fallback into errors instead of applying the None policy.
	Strict bool
	// MaxDepth limits the recursion depth. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxChunks limits the number of chunks in the result. Zero means no limit.
	MaxChunks int
	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// Stats describe the work done by a run.
type Stats struct {
	Attempts  int // implementation attempts
	Declines  int // declined attempts
	Fallbacks int // fallbacks taken after a decline
	Splits    int // split outcomes
	MaxDepth  int // deepest recursion level reached
}

var implementations = map[algo.Impl]algo.Algorithm{
	algo.Myers:       myers.Forward{},
	algo.MyersDivide: myers.Divide{},
	algo.Patience:    patience.Patience{},
}

type engine struct {
	graph *algo.Graph
	opts  Options
	log   *log.Logger
	ws    algo.Workspace
	b     chunk.Builder
	stats Stats
}

// Run resolves x and y starting at root. The graph must have been validated.
func Run(graph *algo.Graph, root algo.NodeID, x, y atom.View, opts Options) ([]chunk.Chunk, Stats, error) {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	e := &engine{
		graph: graph,
		opts:  opts,
		log:   logging.OrDiscard(opts.Logger),
		ws:    algo.Workspace{Optimal: opts.Optimal},
	}
	if err := e.run(root, x, y, 0); err != nil {
		return nil, e.stats, err
	}
	chunks := e.b.Finish(chunk.Range{Start: x.Start, End: x.End}, chunk.Range{Start: y.Start, End: y.End})
	e.log.Debug("comparison done",
		logging.FieldChunks, len(chunks),
		logging.FieldAttempts, e.stats.Attempts,
		logging.FieldDeclines, e.stats.Declines,
		logging.FieldFallbacks, e.stats.Fallbacks,
		logging.FieldSplits, e.stats.Splits,
		logging.FieldMaxDepth, e.stats.MaxDepth)
	return chunks, e.stats, nil
}

func (e *engine) run(id algo.NodeID, x, y atom.View, depth int) error {
	switch {
	case x.Empty() && y.Empty():
		return nil
	case x.Empty() || y.Empty():
		return e.emit(chunk.Chunk{Kind: chunk.Changed, Left: rangeOf(x), Right: rangeOf(y)})
	}

	if depth > e.opts.MaxDepth {
		return &errs.ResourceExceededError{Limit: errs.LimitDepth, Value: depth, Max: e.opts.MaxDepth}
	}
	e.stats.MaxDepth = max(e.stats.MaxDepth, depth)

	for {
		node := e.graph.Node(id)
		if node.Impl == algo.None {
			return e.none(x, y)
		}

		e.stats.Attempts++
		out := implementations[node.Impl].Attempt(node, x, y, &e.ws)
		switch out.Kind {
		case algo.Resolved:
			for _, c := range out.Chunks {
				if err := e.emit(c); err != nil {
					return err
				}
			}
			return nil

		case algo.Split:
			e.stats.Splits++
			e.log.Debug("range split",
				logging.FieldAlgorithm, node.Impl,
				logging.FieldAnchors, len(out.Chunks),
				logging.FieldDepth, depth)
			inner := node.Inner
			if inner == algo.NoNode {
				inner = id
			}
			return e.split(inner, out.Chunks, x, y, depth)

		case algo.Declined:
			e.stats.Declines++
			e.log.Debug("algorithm declined",
				logging.FieldAlgorithm, node.Impl,
				logging.FieldReason, out.Reason,
				logging.FieldEstimate, out.Estimate,
				logging.FieldPermitted, node.PermittedStateSize,
				logging.FieldLeft, x.Len(),
				logging.FieldRight, y.Len())
			if node.Fallback != algo.NoNode {
				e.stats.Fallbacks++
				e.log.Debug("falling back", logging.FieldAlgorithm, node.Impl, logging.FieldFallback, node.Fallback)
				id = node.Fallback
				continue
			}
			if e.opts.Strict {
				if out.Reason != algo.DeclineStateSize {
					return errs.Configf("%v declined a range of %d and %d atoms without fallback", node.Impl, x.Len(), y.Len())
				}
				return &errs.ResourceExceededError{
					Limit:     errs.LimitState,
					Algorithm: node.Impl.String(),
					Value:     out.Estimate,
					Max:       node.PermittedStateSize,
				}
			}
			return e.none(x, y)

		default:
			panic("unknown outcome")
		}
	}
}

// split resolves the gaps around anchors with the inner node.
func (e *engine) split(inner algo.NodeID, anchors []chunk.Chunk, x, y atom.View, depth int) error {
	s, t := x.Start, y.Start
	for _, a := range anchors {
		if a.Kind != chunk.Equal || a.Left.Start < s || a.Right.Start < t || a.Left.End > x.End || a.Right.End > y.End {
			panic("anchor out of order or outside of the split range")
		}
		if err := e.gap(inner, x.Sub(s, a.Left.Start), y.Sub(t, a.Right.Start), x, y, depth); err != nil {
			return err
		}
		if err := e.emit(a); err != nil {
			return err
		}
		s, t = a.Left.End, a.Right.End
	}
	return e.gap(inner, x.Sub(s, x.End), y.Sub(t, y.End), x, y, depth)
}

func (e *engine) gap(inner algo.NodeID, gx, gy, x, y atom.View, depth int) error {
	if gx.Len()+gy.Len() >= x.Len()+y.Len() && !(gx.Empty() && gy.Empty()) {
		return errs.Configf("inner node %d invoked on an unchanged range of %d and %d atoms", inner, x.Len(), y.Len())
	}
	return e.run(inner, gx, gy, depth+1)
}

// none applies the None policy: the common prefix and suffix are Equal, everything in between
// is Changed.
func (e *engine) none(x, y atom.View) error {
	p := atom.CommonPrefix(x, y)
	q := atom.CommonSuffix(x.Sub(x.Start+p, x.End), y.Sub(y.Start+p, y.End))
	xs, xe := x.Start+p, x.End-q
	ys, ye := y.Start+p, y.End-q
	for _, c := range []chunk.Chunk{
		{Kind: chunk.Equal, Left: chunk.Range{Start: x.Start, End: xs}, Right: chunk.Range{Start: y.Start, End: ys}},
		{Kind: chunk.Changed, Left: chunk.Range{Start: xs, End: xe}, Right: chunk.Range{Start: ys, End: ye}},
		{Kind: chunk.Equal, Left: chunk.Range{Start: xe, End: x.End}, Right: chunk.Range{Start: ye, End: y.End}},
	} {
		if err := e.emit(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) emit(c chunk.Chunk) error {
	e.b.Append(c)
	if e.opts.MaxChunks > 0 && e.b.Len() > e.opts.MaxChunks {
		return &errs.ResourceExceededError{Limit: errs.LimitChunks, Value: e.b.Len(), Max: e.opts.MaxChunks}
	}
	return nil
}

func rangeOf(v atom.View) chunk.Range {
	return chunk.Range{Start: v.Start, End: v.End}
}
