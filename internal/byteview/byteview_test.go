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

package byteview

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	b := []byte("my byte slice")

	got := String(b)
	if unsafe.StringData(got) != unsafe.SliceData(b) {
		t.Errorf("String(b) points to different memory")
	}
	if got != "my byte slice" {
		t.Errorf("String(b) = %q, want %q", got, b)
	}

	allocs := testing.AllocsPerRun(10, func() {
		_ = String(b)
	})
	if allocs > 0 {
		t.Errorf("String[[]byte](...) allocated %v times, want 0", allocs)
	}
}

func TestBytes(t *testing.T) {
	s := "my string"

	got := Bytes(s)
	if unsafe.SliceData(got) != unsafe.StringData(s) {
		t.Errorf("Bytes(s) points to different memory")
	}
	if len(got) != len(s) {
		t.Errorf("len(Bytes(s)) = %v, want %v", len(got), len(s))
	}
	if got := Bytes(""); len(got) != 0 {
		t.Errorf("Bytes(\"\") = %q, want empty", got)
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[[]byte]
	b.WriteString("a")
	b.Write([]byte{'b'})
	if b.Len() != 2 {
		t.Errorf("Len() = %v, want 2", b.Len())
	}

	got, want := b.Build(), []byte("ab")
	if !cmp.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, want = b.Build(), nil
	if !cmp.Equal(got, want) {
		t.Errorf("second call to Build: got %q, want %q", got, want)
	}
}

func TestBuilderBuildStringAlloc(t *testing.T) {
	var b Builder[string]
	allocs := testing.AllocsPerRun(10, func() {
		b.Grow(3)
		b.WriteString("a")
		b.Write([]byte{'b', 'c'})
		_ = b.Build()
	})
	if allocs > 1 {
		t.Errorf("Builder[...].Build() allocated %v times, want <= 1", allocs)
	}
}
