package main

import (
	"github.com/signadot/tony-format/go-compose/diag"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Level: diag.LevelInfo}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, events/e (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "diag",
			Description: "minimum diagnostic level: debug, info, warn, error",
			Type:        cli.NamedFuncOpt(cfg.levelOpt, "(level)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ycompose").
		WithSynopsis("ycompose [opts] command [opts]").
		WithDescription("ycompose reports where in the document tree each YAML event occurs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ycMain(cfg, cc, args)
		}).
		WithSubs(
			EventsCommand(cfg),
			PathsCommand(cfg),
			KeysCommand(cfg),
			DiffCommand(cfg))
}

func EventsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EventsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Events, "events").
		WithAliases("e", "ev").
		WithSynopsis("events [files]").
		WithDescription("print the composed event stream in test-suite notation").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return events(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p").
		WithSynopsis("paths [-w expr] [files]").
		WithDescription("print the path of every event, optionally filtered by an expression over " +
			"path, depth, type, value, tag, anchor, index, key, inKey, inValue, complexKey, spawned").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [files]").
		WithDescription("print every collection-valued mapping key with its path").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] a b").
		WithDescription("compare the path traces of two inputs; exits 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
