package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-compose/compose"
	"github.com/signadot/tony-format/go-compose/stream"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return forInputs(cc, args, func(name string, d []byte) error {
		return composeInput(cfg.MainConfig, name, d, keyWriter(cc.Out, colors))
	})
}

// keyWriter prints each collection key when the value it introduces
// starts.
func keyWriter(w io.Writer, colors *Colors) compose.Handler {
	return compose.HandlerFunc(func(c *compose.Composer, path *compose.Path, p compose.Parser, ev *stream.Event) (compose.Result, error) {
		if !ev.IsNode() {
			return compose.Continue, nil
		}
		o := owner(path, ev)
		key := o.ComplexKey()
		if key == nil || o.AwaitingKey() {
			return compose.Continue, nil
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", colors.Color(PathColor)("%s", path.Text()), colors.Color(KeyColor)("%s", key.Text()))
		if err != nil {
			return compose.Error, err
		}
		return compose.Continue, nil
	})
}
