package main

import (
	"fmt"

	"github.com/MSyics/Jsonable/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := objectPath(args[0])
	opts := cfg.encOpts(cc.Out)
	for _, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := encode.Encode(lookup(doc, path), cc.Out, opts...); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", args[0], arg, err)
		}
	}
	return nil
}
