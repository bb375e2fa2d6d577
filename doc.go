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

// Package atomdiff compares two byte buffers and reports which parts are equal and which changed.
//
// The buffers are split into atoms (lines). A declarative graph of algorithms decides how the
// atoms are aligned: every node names an algorithm ([Myers], [MyersDivide], [Patience] or [None]),
// a ceiling for the memory the algorithm may use, a fallback that takes over when the algorithm
// declines and an inner node for the ranges left over after the algorithm split its input. The
// result is an ordered list of [Chunk]s that covers both inputs without gaps or overlap.
//
// The default graph runs the quadratic Myers search on inputs that are small enough and the
// linear space divide and conquer variant on everything else. Other configurations are available
// as presets, see [WithPreset], or can be built from scratch with [WithGraph].
//
// To print a result as unified diff or ed script, see [znkr.io/atomdiff/textdiff].
//
// [znkr.io/atomdiff/textdiff]: https://pkg.go.dev/znkr.io/atomdiff/textdiff
package atomdiff
