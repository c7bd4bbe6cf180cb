package main

import (
	"fmt"

	"github.com/hoverset/formation-go/formats"

	"github.com/scott-cotton/cli"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, ft := range formats.FileTypes() {
		if _, err := fmt.Fprintf(cc.Out, "%-8s %s\n", ft.Label, ft.Pattern); err != nil {
			return err
		}
	}
	return nil
}
