package main

import (
	"fmt"

	"github.com/MSyics/Jsonable/encode"
	"github.com/MSyics/Jsonable/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	differs, err := diffInputs(cfg, cc, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the line diff of a and b and reports whether they differ.
func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b any) (bool, error) {
	indent := cfg.indent()
	if indent == "" {
		indent = "  "
	}
	d, err := diffText(a, b, indent)
	if err != nil || d == "" {
		return false, err
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return false, err
	}
	return true, nil
}

// diffText compares the indented json of a and b, returning "" when they
// are the same.
func diffText(a, b any, indent string) (string, error) {
	sa, err := encode.String(a, encode.Indent(indent))
	if err != nil {
		return "", err
	}
	sb, err := encode.String(b, encode.Indent(indent))
	if err != nil {
		return "", err
	}
	lines := libdiff.Lines(sa, sb)
	if !libdiff.Changed(lines) {
		return "", nil
	}
	return libdiff.Format(lines), nil
}
