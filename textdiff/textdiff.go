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

// Package textdiff formats the result of a line by line comparison.
//
// The writers in this package format an [atomdiff.Result] as a unified diff, an ed script, or two
// columns side by side. Options passed to a writer are applied on top of the options the result
// was computed with.
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
package textdiff

import (
	"fmt"
	"io"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/byteview"
)

const (
	prefixMatch  = ' '
	prefixDelete = '-'
	prefixInsert = '+'
)

const missingNewline = "\\ No newline at end of file\n"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format. The output has no file header.
//
// All options of [atomdiff.New] are supported, as well as [Width] and [TerminalColors].
func Unified[T string | []byte](x, y T, opts ...atomdiff.Option) (T, error) {
	return format(x, y, opts, func(w io.Writer, res *atomdiff.Result) (int, error) {
		return WriteUnified(w, res, atomdiff.InputInfo{})
	})
}

// Ed compares the lines in x and y and returns an ed script that converts x into y.
//
// All options of [atomdiff.New] are supported.
func Ed[T string | []byte](x, y T, opts ...atomdiff.Option) (T, error) {
	return format(x, y, opts, WriteEd)
}

func format[T string | []byte](x, y T, opts []atomdiff.Option, write func(io.Writer, *atomdiff.Result) (int, error)) (T, error) {
	var zero T
	// The inputs are never modified and the result doesn't outlive this call, which makes it safe
	// to look at strings as byte slices.
	res, err := atomdiff.Compare(byteview.Bytes(x), byteview.Bytes(y), opts...)
	if err != nil {
		return zero, err
	}
	var b byteview.Builder[T]
	if _, err := write(&b, res); err != nil {
		return zero, err
	}
	return b.Build(), nil
}

// countingWriter counts the bytes written to w and remembers the first error.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += n
	if err != nil {
		cw.err = err
	}
	return n, err
}

func (cw *countingWriter) result(what string) (int, error) {
	if cw.err != nil {
		return cw.n, fmt.Errorf("writing %s: %w", what, cw.err)
	}
	return cw.n, nil
}
