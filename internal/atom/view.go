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

package atom

// View is a contiguous range [Start, End) of a Sequence. Indices are absolute positions in the
// sequence.
type View struct {
	Seq        *Sequence
	Start, End int
}

func (v View) Len() int    { return v.End - v.Start }
func (v View) Empty() bool { return v.End == v.Start }

// Atoms returns the atoms covered by v.
func (v View) Atoms() []Atom { return v.Seq.atoms[v.Start:v.End] }

// Sub returns the view of atoms [start, end) where start and end are absolute indices.
func (v View) Sub(start, end int) View {
	if start < v.Start || end > v.End {
		panic("sub view out of range")
	}
	return v.Seq.Slice(start, end)
}

// CommonPrefix returns the number of leading atoms that x and y have in common.
func CommonPrefix(x, y View) int {
	xa, ya := x.Atoms(), y.Atoms()
	n := min(len(xa), len(ya))
	i := 0
	for i < n && Equal(&xa[i], &ya[i]) {
		i++
	}
	return i
}

// CommonSuffix returns the number of trailing atoms that x and y have in common.
func CommonSuffix(x, y View) int {
	xa, ya := x.Atoms(), y.Atoms()
	n := min(len(xa), len(ya))
	i := 0
	for i < n && Equal(&xa[len(xa)-1-i], &ya[len(ya)-1-i]) {
		i++
	}
	return i
}

// Equal reports whether atom i of v equals atom j of w. Both indices are absolute.
func (v View) Equal(i int, w View, j int) bool {
	return Equal(&v.Seq.atoms[i], &w.Seq.atoms[j])
}
