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

import "znkr.io/atomdiff/internal/algo"

// Impl identifies an algorithm implementation.
type Impl = algo.Impl

const (
	Myers       = algo.Myers
	MyersDivide = algo.MyersDivide
	Patience    = algo.Patience
	None        = algo.None
)

// Node is an entry of an algorithm [Graph].
type Node = algo.Node

// NodeID is the index of a node in a [Graph].
type NodeID = algo.NodeID

// Graph is an immutable table of algorithm nodes.
type Graph = algo.Graph

const (
	// NoNode marks an absent fallback or inner node.
	NoNode = algo.NoNode
	// Unlimited is a permitted state size without ceiling.
	Unlimited = algo.Unlimited
)

// NewGraph returns a graph of nodes. Nodes refer to each other by their index in nodes.
func NewGraph(nodes ...Node) *Graph { return algo.NewGraph(nodes...) }

// Preset is a predefined algorithm configuration.
type Preset = algo.Preset

const (
	MyersThenDivide   = algo.MyersThenDivide
	MyersThenPatience = algo.MyersThenPatience
	PatienceFirst     = algo.PatienceFirst
	Trivial           = algo.Trivial
)

// ParsePreset returns the preset with the given name, e.g. "myers-then-divide" or "patience-first".
func ParsePreset(name string) (Preset, error) { return algo.ParsePreset(name) }
