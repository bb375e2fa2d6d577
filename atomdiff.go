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

package atomdiff

import (
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/chunk"
	"znkr.io/atomdiff/internal/config"
	"znkr.io/atomdiff/internal/engine"
	"znkr.io/atomdiff/internal/errs"
	"znkr.io/atomdiff/internal/indentheuristic"
	"znkr.io/atomdiff/internal/rvecs"
)

// Kind tells whether a [Chunk] is equal or changed.
type Kind = chunk.Kind

const (
	Equal   = chunk.Equal
	Changed = chunk.Changed
)

// Range is a half open range of atom indices.
type Range = chunk.Range

// Chunk pairs a range of the left input with a range of the right input. Equal chunks have
// ranges of the same length with pairwise equal atoms. Changed chunks replace the left range with
// the right range, one of them may be empty.
type Chunk = chunk.Chunk

// Sequence is an atomized input.
type Sequence = atom.Sequence

// Stats describe the work done for a comparison.
type Stats = engine.Stats

// InputInfo labels the inputs in formatted output.
type InputInfo struct {
	LeftLabel, RightLabel string
}

// Differ compares inputs with a fixed, validated configuration. A Differ is safe for concurrent
// use.
type Differ struct {
	cfg config.Config
}

// New returns a Differ configured by opts. It returns a [ConfigError] if the configuration is
// invalid.
func New(opts ...Option) (*Differ, error) {
	cfg := config.FromOptions(opts, config.Compare)
	if err := cfg.Graph.Validate(cfg.Root, cfg.Strict); err != nil {
		return nil, err
	}
	switch {
	case cfg.MaxDepth <= 0:
		return nil, errs.Configf("max depth must be positive, got %d", cfg.MaxDepth)
	case cfg.MaxChunks < 0:
		return nil, errs.Configf("max chunks must not be negative, got %d", cfg.MaxChunks)
	case cfg.ShowFunctionContext && cfg.FunctionPattern == nil:
		return nil, errs.Configf("function context requires a pattern")
	}
	return &Differ{cfg: cfg}, nil
}

// Compare compares left and right.
//
// The result refers to the input buffers without copying them; they must not be modified while
// the result is in use.
func (d *Differ) Compare(left, right []byte) (*Result, error) {
	flags := atom.Flags{ForceText: d.cfg.ForceText, IgnoreWhitespace: d.cfg.IgnoreWhitespace}
	x, err := atom.Atomize(left, flags)
	if err != nil {
		return nil, &InputError{Side: "left", Err: err}
	}
	y, err := atom.Atomize(right, flags)
	if err != nil {
		return nil, &InputError{Side: "right", Err: err}
	}

	chunks, stats, err := engine.Run(d.cfg.Graph, d.cfg.Root, x.View(), y.View(), engine.Options{
		Optimal:   d.cfg.Optimal,
		Strict:    d.cfg.Strict,
		MaxDepth:  d.cfg.MaxDepth,
		MaxChunks: d.cfg.MaxChunks,
		Logger:    d.cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	if d.cfg.IndentHeuristic {
		rx, ry := rvecs.FromChunks(chunks, x.Len(), y.Len())
		indentheuristic.Apply(x, y, rx, ry)
		chunks = rvecs.ToChunks(rx, ry)
	}
	return &Result{cfg: d.cfg, left: x, right: y, chunks: chunks, stats: stats}, nil
}

// Compare compares left and right with a Differ configured by opts.
func Compare(left, right []byte, opts ...Option) (*Result, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return d.Compare(left, right)
}

// Result is the immutable outcome of a comparison.
type Result struct {
	cfg         config.Config
	left, right *atom.Sequence
	chunks      []chunk.Chunk
	stats       Stats
}

// Chunks returns the chunks in order. The slice must not be modified.
func (r *Result) Chunks() []Chunk { return r.chunks }

// Left returns the atomized left input.
func (r *Result) Left() *Sequence { return r.left }

// Right returns the atomized right input.
func (r *Result) Right() *Sequence { return r.right }

// Equal reports whether both inputs compare equal.
func (r *Result) Equal() bool {
	for _, c := range r.chunks {
		if c.Kind == Changed {
			return false
		}
	}
	return true
}

// ChangedAtoms returns the number of deleted plus inserted atoms.
func (r *Result) ChangedAtoms() int {
	n := 0
	for _, c := range r.chunks {
		if c.Kind == Changed {
			n += c.Left.Len() + c.Right.Len()
		}
	}
	return n
}

// Stats returns statistics about the comparison.
func (r *Result) Stats() Stats { return r.stats }

// Config returns the configuration the result was computed with. Formatters use it as the
// default for their own options.
func (r *Result) Config() config.Config { return r.cfg }
