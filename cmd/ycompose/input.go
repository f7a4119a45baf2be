package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-compose/compose"
	"github.com/signadot/tony-format/go-compose/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, name string) ([]byte, error) {
	var r io.Reader
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", name, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	return d, nil
}

// composeInput runs a composer with handler h over the input d.
func composeInput(cfg *MainConfig, name string, d []byte, h compose.Handler) error {
	dg := cfg.diag()
	defer dg.Unref()
	p, err := parse.NewBytes(d, cfg.parseOpts(name)...)
	if err != nil {
		dg.Report(err)
		return fmt.Errorf("error parsing %s: %w", name, parse.ErrParse)
	}
	c, err := compose.New(&compose.Config{Handler: h, Diag: dg, UserData: name})
	if err != nil {
		return err
	}
	defer c.Close()
	res, err := c.Parse(p)
	if !res.OK() {
		return fmt.Errorf("error processing %s: %w", name, err)
	}
	return nil
}

// forInputs calls f on each named input, or on stdin if none are named.
func forInputs(cc *cli.Context, args []string, f func(name string, d []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		d, err := readInput(cc, name)
		if err != nil {
			return err
		}
		if err := f(name, d); err != nil {
			return err
		}
	}
	return nil
}
