package main

import (
	"fmt"

	formation "github.com/hoverset/formation-go"

	"github.com/scott-cotton/cli"
)

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	sel := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, def, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		matches, err := formation.Select(root, sel)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", arg, err)
		}
		for _, m := range matches {
			if cfg.Print {
				if err := cfg.writeNode(cc.Out, m, cfg.outDef(def)); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(cc.Out, m.Path()); err != nil {
				return err
			}
		}
	}
	return nil
}
