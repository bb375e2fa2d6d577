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

package algo

import (
	"fmt"

	"znkr.io/atomdiff/internal/errs"
)

// NodeID is the index of a node in a Graph.
type NodeID int

// NoNode marks an absent fallback or inner node. Note that the zero NodeID refers to the first
// node of a graph, so node literals need to set NoNode explicitly.
const NoNode NodeID = -1

// Graph is an immutable table of algorithm nodes. Nodes refer to each other by index, which
// allows a node to recurse into itself without the graph owning cyclic pointers.
type Graph struct {
	nodes []Node
}

// NewGraph returns a graph with a copy of nodes.
func NewGraph(nodes ...Node) *Graph {
	return &Graph{nodes: append([]Node(nil), nodes...)}
}

// Len returns the number of nodes in g.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given id. It panics if id is out of range; use Validate first.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

func (g *Graph) valid(id NodeID) bool { return 0 <= id && int(id) < len(g.nodes) }

// Validate checks the part of g that is reachable from root.
//
// A fallback runs on the same range as the node that declined, so a cycle of fallbacks would
// never terminate and is rejected. Inner nodes only ever see strictly smaller ranges and may
// form cycles. In strict mode there is no None substitute for a declined range, so every
// fallback chain must end in a node that can resolve any input: the chain must not end in
// Patience or in a node that is not permitted any state.
func (g *Graph) Validate(root NodeID, strict bool) error {
	if g == nil || len(g.nodes) == 0 {
		return errs.Configf("empty algorithm graph")
	}
	if !g.valid(root) {
		return errs.Configf("root node %d out of range [0, %d)", root, len(g.nodes))
	}

	seen := make([]bool, len(g.nodes))
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		n := g.nodes[id]
		if n.Impl < Myers || n.Impl > None {
			return errs.Configf("node %d: unknown implementation %v", id, n.Impl)
		}
		if n.PermittedStateSize < Unlimited {
			return errs.Configf("node %d: invalid permitted state size %d", id, n.PermittedStateSize)
		}
		for _, ref := range []NodeID{n.Fallback, n.Inner} {
			if ref == NoNode {
				continue
			}
			if !g.valid(ref) {
				return errs.Configf("node %d: reference to node %d out of range [0, %d)", id, ref, len(g.nodes))
			}
			stack = append(stack, ref)
		}
		if err := g.checkFallbacks(id, strict); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) checkFallbacks(id NodeID, strict bool) error {
	visited := map[NodeID]bool{}
	last := id
	for cur := id; cur != NoNode; cur = g.nodes[cur].Fallback {
		if !g.valid(cur) {
			return errs.Configf("node %d: reference to node %d out of range [0, %d)", last, cur, len(g.nodes))
		}
		if visited[cur] {
			return errs.Configf("node %d: cyclic fallback chain through node %d", id, cur)
		}
		visited[cur] = true
		last = cur
	}
	if !strict {
		return nil
	}
	switch n := g.nodes[last]; {
	case n.Impl == Patience:
		return errs.Configf("node %d: fallback chain ends in %v, which declines inputs without unique atoms", id, n.Impl)
	case n.Impl != None && n.PermittedStateSize == 0:
		return errs.Configf("node %d: fallback chain ends in node %d, which is permitted no state", id, last)
	}
	return nil
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph%v", g.nodes)
}
