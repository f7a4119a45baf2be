package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-compose/compose"
	"github.com/signadot/tony-format/go-compose/stream"

	"github.com/scott-cotton/cli"
)

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return forInputs(cc, args, func(name string, d []byte) error {
		return composeInput(cfg.MainConfig, name, d, eventWriter(cc.Out, colors, cfg.Paths))
	})
}

func eventWriter(w io.Writer, colors *Colors, withPaths bool) compose.Handler {
	return compose.HandlerFunc(func(c *compose.Composer, path *compose.Path, p compose.Parser, ev *stream.Event) (compose.Result, error) {
		var err error
		if withPaths {
			_, err = fmt.Fprintf(w, "%s\t%s\n", colors.Color(PathColor)("%s", path.Text()), colors.Event(ev))
		} else {
			_, err = fmt.Fprintln(w, colors.Event(ev))
		}
		if err != nil {
			return compose.Error, err
		}
		return compose.Continue, nil
	})
}
