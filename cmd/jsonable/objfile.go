package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MSyics/Jsonable/build"
	"github.com/MSyics/Jsonable/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile reads and builds the document at path, "-" being standard input.
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (any, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return readObj(r, path, opts...)
}

func readObj(r io.Reader, name string, opts ...parse.ParseOption) (any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return build.Build(node), nil
}

// inputs returns the files named by args, or standard input when there are
// none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
