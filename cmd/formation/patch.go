package main

import (
	"fmt"
	"os"

	formation "github.com/hoverset/formation-go"

	"github.com/scott-cotton/cli"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops := []byte(args[0])
	if !cfg.String {
		ops, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error opening %s: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, def, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		res, err := formation.Patch(root, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeNode(cc.Out, res, cfg.outDef(def)); err != nil {
			return err
		}
	}
	return nil
}
