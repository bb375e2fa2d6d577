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

package textdiff_test

import (
	"fmt"
	"log"
	"os"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/textdiff"
)

func ExampleUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed
`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk
`
	out, err := textdiff.Unified(x, y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

func ExampleWriteUnified() {
	x := "int main(void) {\n\tputs(\"hello\");\n\treturn 0;\n}\n"
	y := "int main(void) {\n\tputs(\"hello, world\");\n\treturn 0;\n}\n"

	res, err := atomdiff.Compare([]byte(x), []byte(y), atomdiff.ShowFunctionContext(), atomdiff.Context(0))
	if err != nil {
		log.Fatal(err)
	}
	info := atomdiff.InputInfo{LeftLabel: "a/hello.c", RightLabel: "b/hello.c"}
	if _, err := textdiff.WriteUnified(os.Stdout, res, info); err != nil {
		log.Fatal(err)
	}
	// Output:
	// --- a/hello.c
	// +++ b/hello.c
	// @@ -2,1 +2,1 @@ int main(void) {
	// -	puts("hello");
	// +	puts("hello, world");
}

func ExampleEd() {
	out, err := textdiff.Ed("a\nb\nc\n", "a\nB\nc\nd\n")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// 3a
	// d
	// .
	// 2c
	// B
	// .
}

func ExampleIndentHeuristic() {
	x := `// ...
["foo", "bar", "baz"].map do |i|
  i.upcase
end
`

	y := `// ...
["foo", "bar", "baz"].map do |i|
  i
end

["foo", "bar", "baz"].map do |i|
  i.upcase
end
`

	out, err := textdiff.Unified(x, y, textdiff.IndentHeuristic())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// @@ -1,4 +1,8 @@
	//  // ...
	// +["foo", "bar", "baz"].map do |i|
	// +  i
	// +end
	// +
	//  ["foo", "bar", "baz"].map do |i|
	//    i.upcase
	//  end
}
