package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/atomdiff"
	"znkr.io/atomdiff/textdiff"
)

type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

func atomdiffImpl(name string, opts ...atomdiff.Option) Impl {
	return Impl{
		Name: name,
		Diff: func(x, y []byte) []byte {
			out, err := textdiff.Unified(x, y, append(opts, atomdiff.ForceText())...)
			if err != nil {
				panic(err)
			}
			return out
		},
	}
}

var Impls = []Impl{
	atomdiffImpl("atomdiff"),
	atomdiffImpl("atomdiff-optimal", atomdiff.Optimal()),
	atomdiffImpl("atomdiff-myers-then-patience", atomdiff.WithPreset(atomdiff.MyersThenPatience)),
	atomdiffImpl("atomdiff-patience-first", atomdiff.WithPreset(atomdiff.PatienceFirst)),
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				prefix := " "
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			var buf bytes.Buffer
			a := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				for ; a < ch.A; a++ {
					buf.WriteString(" ")
					buf.Write(d.x[a])
				}
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
				}
				a += ch.Del
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
				}
			}
			for ; a < len(d.x); a++ {
				buf.WriteString(" ")
				buf.Write(d.x[a])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
