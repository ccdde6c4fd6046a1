package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sdl/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sdl").
		WithSynopsis("sdl [opts] command [opts]").
		WithDescription("sdl is a tool for working with Simple Declarative Language documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sdlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			GrepCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			MatchCommand(cfg),
			ValuesCommand(cfg),
			TokensCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view sdl files, optionally as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w | -d | -l] [files]").
		WithDescription("rewrite sdl files in canonical form, keeping comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [-q] [files]").
		WithDescription("report syntax and literal errors as file:line:col: message").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithOpts(opts...).
		WithSynopsis("diff [-patch] [-c] <from> <to>").
		WithDescription("print the tag edits between two documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffDocs(cfg, cc, args)
		})
}

func GrepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrepConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Grep, "grep").
		WithOpts(opts...).
		WithSynopsis("grep -e <expr> [files]").
		WithDescription("print the tags, at any depth, for which an expression holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return grep(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <tagpath> [files]").
		WithDescription("get the first tag at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <tagpath> [files]").
		WithDescription("list all tags at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [files]").
		WithDescription("print top level tags matching a pattern tag, in which _ matches any name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func ValuesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValuesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Values, "values").
		WithAliases("val").
		WithSynopsis("values <literal>...").
		WithDescription("print the kind and canonical form of literals").
		WithRun(func(cc *cli.Context, args []string) error {
			return values(cfg, cc, args)
		})
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("tok").
		WithSynopsis("tokens [files]").
		WithDescription("print the tokens of sdl files").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}
