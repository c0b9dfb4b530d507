package main

import (
	"fmt"
	"strings"

	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/encode"
	"github.com/MSyics/Jsonable/kind"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires at least one path=value", cli.ErrUsage)
	}
	in := "-"
	if cfg.File != "" {
		in = cfg.File
	}
	doc, err := getObjFile(cc, in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", in, err)
	}
	var root *dyn.Node
	switch x := doc.(type) {
	case nil:
		root = dyn.New()
	case *dyn.Node:
		root = x
	default:
		return fmt.Errorf("cannot set members of %s: document is %s", in, kind.Classify(doc))
	}
	for _, arg := range args {
		if err := assign(root, arg); err != nil {
			return err
		}
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}

func assign(root *dyn.Node, arg string) error {
	key, val, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected path=value", cli.ErrUsage, arg)
	}
	path := objectPath(key)
	if path == "" {
		return fmt.Errorf("%w: argument %q has an empty path", cli.ErrUsage, arg)
	}
	v, err := parseValue(val)
	if err != nil {
		return fmt.Errorf("error reading value of %s: %w", key, err)
	}
	if root.PutPath(path, v) == nil {
		return fmt.Errorf("cannot set %s: an intermediate member is not an object", key)
	}
	return nil
}
