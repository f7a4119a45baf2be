package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-compose/diag"
	"github.com/signadot/tony-format/go-compose/format"
	"github.com/signadot/tony-format/go-compose/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Resolve bool `cli:"name=r aliases=resolve desc='load whole documents, resolving aliases and merge keys'"`
	NoMerge bool `cli:"name=nomerge desc='with -r, leave << merge keys alone'"`
	Color   bool `cli:"name=color desc='color output'"`

	InFormat *format.Format
	Level    diag.Level

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

func (cfg *MainConfig) levelOpt(_ *cli.Context, v string) (any, error) {
	l, err := diag.ParseLevel(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Level = l
	return l, nil
}

// parseOpts returns the parse options for the named input; without -I the
// format is guessed from the file suffix.
func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	fmat := format.FromPath(name)
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.ParseResolve(cfg.Resolve),
		parse.ParseMergeKeys(!cfg.NoMerge),
	}
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
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

func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.useColor(w) {
		return NewColors()
	}
	return NoColors()
}

func (cfg *MainConfig) diag() *diag.Diag {
	return diag.New(os.Stderr, diag.WithPrefix("ycompose"), diag.WithLevel(cfg.Level))
}

type EventsConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='prefix each event with its path'"`

	Events *cli.Command
}

type PathsConfig struct {
	*MainConfig
	Where string `cli:"name=w aliases=where desc='only print events for which this expression is true'"`

	Paths *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=c desc='unchanged lines of context shown around each change'"`

	Diff *cli.Command
}
