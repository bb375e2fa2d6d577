// diff runs one of the implementations used for benchmarking on two inputs, to inspect its
// output by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/atomdiff/internal/benchmarks"
)

func main() {
	lib := flag.String("lib", "atomdiff", "library to use for diffing")
	archive := flag.String("txtar", "", "use the x and y files of a txtar archive instead of two input files")
	flag.Parse()

	if err := run(*lib, *archive, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lib, archive string, args []string) error {
	impl, err := lookup(lib)
	if err != nil {
		return err
	}

	var x, y []byte
	switch {
	case archive != "" && len(args) == 0:
		ar, err := txtar.ParseFile(archive)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = f.Data
			case "y":
				y = f.Data
			}
		}
	case archive == "" && len(args) == 2:
		if x, err = os.ReadFile(args[0]); err != nil {
			return err
		}
		if y, err = os.ReadFile(args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("usage: diff [-lib name] <x> <y> | diff [-lib name] -txtar <file>")
	}

	_, err = os.Stdout.Write(impl.Diff(x, y))
	return err
}

func lookup(name string) (benchmarks.Impl, error) {
	var names []string
	for _, impl := range benchmarks.Impls {
		if impl.Name == name {
			return impl, nil
		}
		names = append(names, impl.Name)
	}
	return benchmarks.Impl{}, fmt.Errorf("lib %q not found, available: %s", name, strings.Join(names, ", "))
}
