package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MSyics/Jsonable/encode"
	"github.com/MSyics/Jsonable/format"
	"github.com/MSyics/Jsonable/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Compact bool   `cli:"name=c aliases=compact desc='output compact json'"`
	Indent  string `cli:"name=indent desc='indentation per level (default two spaces)'"`
	Dups    bool   `cli:"name=dups desc='accept duplicate object keys'"`
	Verbose bool   `cli:"name=v desc='log debug output'"`

	OutFormat *format.Format
	Defaults  *Defaults

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) defaults() *Defaults {
	if cfg.Defaults == nil {
		return &Defaults{Indent: "  "}
	}
	return cfg.Defaults
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.AllowDuplicateNames(cfg.Dups),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	// validated when the defaults were loaded
	f, _ := format.ParseFormat(cfg.defaults().Format)
	return f
}

func (cfg *MainConfig) indent() string {
	switch {
	case cfg.Compact:
		return ""
	case cfg.Indent != "":
		return cfg.Indent
	}
	return cfg.defaults().Indent
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(cfg.indent()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if c := cfg.defaults().Color; c != nil {
		if *c {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	File string `cli:"name=f desc='input file (default stdin)'"`
	Put  bool   `cli:"name=p aliases=put desc='keep empty objects given as values'"`

	Set *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Raw bool `cli:"name=r desc='print string results without quotes'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type KindConfig struct {
	*MainConfig

	Kind *cli.Command
}
