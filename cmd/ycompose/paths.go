package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-compose/compose"
	"github.com/signadot/tony-format/go-compose/stream"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

// pathEnv is the environment of a -w expression.
type pathEnv struct {
	Path       string `expr:"path"`
	Depth      int    `expr:"depth"`
	Type       string `expr:"type"`
	Value      string `expr:"value"`
	Tag        string `expr:"tag"`
	Anchor     string `expr:"anchor"`
	Index      int    `expr:"index"`
	Key        string `expr:"key"`
	InKey      bool   `expr:"inKey"`
	InValue    bool   `expr:"inValue"`
	ComplexKey string `expr:"complexKey"`
	Spawned    bool   `expr:"spawned"`
}

// owner returns the collection that holds the node ev belongs to. For
// collection events that is the collection around the one being opened or
// closed.
func owner(path *compose.Path, ev *stream.Event) *compose.Component {
	if ev.Type.IsCollectionStart() || ev.Type.IsCollectionEnd() {
		return path.Component(path.Depth() - 2)
	}
	return path.Last()
}

func newPathEnv(path *compose.Path, ev *stream.Event) *pathEnv {
	env := &pathEnv{
		Path:    path.Text(),
		Depth:   path.Depth(),
		Type:    ev.Type.String(),
		Value:   ev.Value,
		Tag:     ev.Tag,
		Anchor:  ev.Anchor,
		Spawned: path.Parent() != nil,
	}
	o := owner(path, ev)
	env.Index = o.Index()
	env.InKey = o.AwaitingKey() || env.Spawned
	env.InValue = o.IsMapping() && !o.AwaitingKey()
	if k, ok := o.ScalarKey(); ok {
		env.Key = k
	}
	if ck := o.ComplexKey(); ck != nil {
		env.ComplexKey = ck.Text()
	}
	return env
}

func compileWhere(where string) (*vm.Program, error) {
	if where == "" {
		return nil, nil
	}
	prg, err := expr.Compile(where, expr.Env(pathEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: -w %q: %w", cli.ErrUsage, where, err)
	}
	return prg, nil
}

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	prg, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return forInputs(cc, args, func(name string, d []byte) error {
		return composeInput(cfg.MainConfig, name, d, pathWriter(cc.Out, colors, prg))
	})
}

func pathWriter(w io.Writer, colors *Colors, prg *vm.Program) compose.Handler {
	return compose.HandlerFunc(func(c *compose.Composer, path *compose.Path, p compose.Parser, ev *stream.Event) (compose.Result, error) {
		if prg != nil {
			out, err := expr.Run(prg, newPathEnv(path, ev))
			if err != nil {
				return compose.Error, err
			}
			if ok, _ := out.(bool); !ok {
				return compose.Continue, nil
			}
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", colors.Color(PathColor)("%s", path.Text()), colors.Event(ev))
		if err != nil {
			return compose.Error, err
		}
		return compose.Continue, nil
	})
}
