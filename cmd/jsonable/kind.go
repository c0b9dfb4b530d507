package main

import (
	"fmt"

	"github.com/MSyics/Jsonable/kind"

	"github.com/scott-cotton/cli"
)

func kindCmd(cfg *KindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kind.Parse(cc, args)
	if err != nil {
		cfg.Kind.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := ""
	if len(args) != 0 {
		path = objectPath(args[0])
		args = args[1:]
	}
	for _, arg := range inputs(args) {
		doc, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		v := lookup(doc, path)
		empty := ""
		if kind.IsNullOrEmpty(v) {
			empty = " (empty)"
		}
		if _, err := fmt.Fprintf(cc.Out, "%s%s\n", kind.Classify(v), empty); err != nil {
			return err
		}
	}
	return nil
}
