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

// DefaultStateSize is the ceiling for the quadratic forward Myers search in the presets.
const DefaultStateSize = 8 << 20

// Node ids of the preset graph.
const (
	myersThenDivide NodeID = iota
	myersDivide
	myersThenPatience
	patience
	none
)

var presets = Graph{nodes: []Node{
	myersThenDivide:   {Impl: Myers, PermittedStateSize: DefaultStateSize, Fallback: myersDivide, Inner: NoNode},
	myersDivide:       {Impl: MyersDivide, PermittedStateSize: Unlimited, Fallback: NoNode, Inner: myersThenDivide},
	myersThenPatience: {Impl: Myers, PermittedStateSize: DefaultStateSize, Fallback: patience, Inner: NoNode},
	patience:          {Impl: Patience, PermittedStateSize: Unlimited, Fallback: myersThenDivide, Inner: patience},
	none:              {Impl: None, PermittedStateSize: Unlimited, Fallback: NoNode, Inner: NoNode},
}}

// Presets returns the shared graph that backs all presets. It must not be modified.
func Presets() *Graph { return &presets }

// Preset names a root node in the preset graph.
type Preset int

const (
	// MyersThenDivide runs the quadratic Myers search on small ranges and the linear space
	// divide and conquer variant on everything else. This is the default.
	MyersThenDivide Preset = iota
	// MyersThenPatience runs Myers on small ranges and patience on everything else.
	MyersThenPatience
	// PatienceFirst anchors on unique lines first and resolves the rest with Myers.
	PatienceFirst
	// Trivial only strips the common prefix and suffix and marks the rest as changed.
	Trivial
)

var presetNames = [...]string{
	MyersThenDivide:   "myers-then-divide",
	MyersThenPatience: "myers-then-patience",
	PatienceFirst:     "patience-first",
	Trivial:           "none",
}

var presetRoots = [...]NodeID{
	MyersThenDivide:   myersThenDivide,
	MyersThenPatience: myersThenPatience,
	PatienceFirst:     patience,
	Trivial:           none,
}

// Root returns the root node of p in the graph returned by Presets, or NoNode if p is not a
// valid preset.
func (p Preset) Root() NodeID {
	if p < 0 || int(p) >= len(presetRoots) {
		return NoNode
	}
	return presetRoots[p]
}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// PresetNames returns the names accepted by ParsePreset.
func PresetNames() []string { return append([]string(nil), presetNames[:]...) }

// ParsePreset returns the preset with the given name. "myers" and "default" are accepted as
// aliases for the default preset, "patience" for PatienceFirst.
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "", "default", "myers":
		return MyersThenDivide, nil
	case "patience":
		return PatienceFirst, nil
	}
	for p, n := range presetNames {
		if n == name {
			return Preset(p), nil
		}
	}
	return 0, errs.Configf("unknown algorithm %q", name)
}
