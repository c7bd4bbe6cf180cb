package main

import (
	"fmt"

	"github.com/hoverset/formation-go/diff"

	"github.com/scott-cotton/cli"
)

func diffFiles(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two design files", cli.ErrUsage)
	}
	a, _, err := cfg.loadArg(args[0])
	if err != nil {
		return err
	}
	b, _, err := cfg.loadArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	changes := diff.Trees(a, b)
	if err := diff.Render(cc.Out, changes, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
