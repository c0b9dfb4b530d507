package main

import (
	"fmt"

	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/encode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prog, err := expr.Compile(args[0], expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	for _, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := evalDoc(prog, doc)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", arg, err)
		}
		if s, ok := res.(string); ok && cfg.Raw {
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result for %s: %w", arg, err)
		}
	}
	return nil
}

// evalDoc runs prog with the members of doc as variables and the whole
// document as "doc".
func evalDoc(prog *vm.Program, doc any) (any, error) {
	env := map[string]any{}
	if node, ok := doc.(*dyn.Node); ok {
		env = node.ToMap()
	}
	env["doc"] = dyn.Plain(doc)
	res, err := expr.Run(prog, env)
	if err != nil {
		return nil, err
	}
	return fromPlain(res), nil
}
