package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hoverset/formation-go/formats"
	"github.com/hoverset/formation-go/node"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize diff output'"`

	InFormat, OutFormat *formats.Definition

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**formats.Definition) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		def, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &def
		}
		return def, nil
	})
}

func parseFormat(v string) (formats.Definition, error) {
	for _, def := range formats.Formats() {
		if strings.EqualFold(def.Name, v) {
			return def, nil
		}
		for _, ext := range def.Extensions {
			if strings.EqualFold(ext, v) {
				return def, nil
			}
		}
	}
	return formats.Definition{}, fmt.Errorf("unknown format %q", v)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadArg reads one design file argument ("-" means stdin) and returns its
// tree along with the format it was decoded from.
func (cfg *MainConfig) loadArg(arg string) (*node.Node, formats.Definition, error) {
	if arg == "-" {
		if cfg.InFormat == nil {
			return nil, formats.Definition{}, fmt.Errorf("%w: reading stdin requires -I", cli.ErrUsage)
		}
		def := *cfg.InFormat
		rd, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, formats.Definition{}, err
		}
		f, err := def.New(formats.FromData(string(rd)))
		if err != nil {
			return nil, formats.Definition{}, err
		}
		root, err := f.Load()
		if err != nil {
			return nil, formats.Definition{}, fmt.Errorf("error decoding stdin: %w", err)
		}
		return root, def, nil
	}
	def := cfg.InFormat
	if def == nil {
		d, err := formats.Infer(arg)
		if err != nil {
			return nil, formats.Definition{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		def = &d
	}
	f, err := def.New(formats.FromPath(arg))
	if err != nil {
		return nil, formats.Definition{}, err
	}
	root, err := f.Load()
	if err != nil {
		return nil, formats.Definition{}, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return root, *def, nil
}

// outDef resolves the output format: -O when given, otherwise the format
// the input was decoded from.
func (cfg *MainConfig) outDef(in formats.Definition) formats.Definition {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) writeNode(w io.Writer, root *node.Node, def formats.Definition, opts ...formats.GenOption) error {
	f, err := def.New(formats.FromNode(root))
	if err != nil {
		return err
	}
	out, err := f.Generate(opts...)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig

	Pretty  bool `cli:"name=pretty desc='indent output'"`
	Flat    bool `cli:"name=flat desc='disable indentation'"`
	Compact bool `cli:"name=compact desc='drop spaces after separators'"`
	NoSort  bool `cli:"name=nosort desc='keep key insertion order'"`
	Native  bool `cli:"name=native desc='keep native scalar types'"`
	NoDecl  bool `cli:"name=nodecl desc='omit the xml declaration'"`

	Convert *cli.Command
}

func (cfg *ConvertConfig) genOpts() []formats.GenOption {
	var res []formats.GenOption
	if cfg.Pretty {
		res = append(res, formats.PrettyPrint(true))
	}
	if cfg.Flat {
		res = append(res, formats.PrettyPrint(false))
	}
	if cfg.Compact {
		res = append(res, formats.Compact(true))
	}
	if cfg.NoSort {
		res = append(res, formats.SortKeys(false))
	}
	if cfg.Native {
		res = append(res, formats.StringifyValues(false))
	}
	if cfg.NoDecl {
		res = append(res, formats.XMLDeclaration(false))
	}
	return res
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Print bool `cli:"name=print desc='print matched subtrees instead of paths'"`

	Select *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
