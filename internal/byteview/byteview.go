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

// Package byteview converts between strings and []byte without copying.
//
// The conversions are only safe as long as the returned value is treated as read-only and the
// source outlives it.
package byteview

import (
	"slices"
	"sync"
	"unsafe"
)

// String returns a string sharing memory with in.
func String[T string | []byte](in T) string {
	switch in := any(in).(type) {
	case string:
		return in
	case []byte:
		return unsafe.String(unsafe.SliceData(in), len(in))
	}
	panic("never reached")
}

// Bytes returns a []byte sharing memory with in. The result must not be modified.
func Bytes[T string | []byte](in T) []byte {
	switch in := any(in).(type) {
	case string:
		return unsafe.Slice(unsafe.StringData(in), len(in))
	case []byte:
		return in
	}
	panic("never reached")
}

// Builder accumulates bytes and hands them out as T without a final copy.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Len() int { return len(b.buf) }

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

// Build returns the accumulated bytes and resets the builder.
func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
