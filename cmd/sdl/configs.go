package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/format"
	"github.com/SingingBush/SDL/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Pretty bool   `cli:"name=pretty aliases=p desc='indent children'"`
	Indent string `cli:"name=indent desc='indentation unit used with -pretty'"`

	S bool `cli:"name=s aliases=sdl desc='output sdl'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

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

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// useColor reports whether output to w is colored: -color decides when
// given, otherwise color is used on terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.outFormat().IsSDL() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include comments'"`
	View     *cli.Command
}

func (cfg *ViewConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseComments(cfg.Comments)}
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	Diff  bool `cli:"name=d desc='print a line diff instead of the result'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit status'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Patch    bool `cli:"name=patch desc='print a json merge patch instead of edits'"`
	Comments bool `cli:"name=c desc='compare comments'"`
	Diff     *cli.Command
}

type GrepConfig struct {
	*MainConfig

	Expr  string `cli:"name=e desc='boolean expression selecting tags'"`
	Count bool   `cli:"name=n desc='print the number of selected tags'"`
	Paths bool   `cli:"name=paths desc='print tag paths only'"`
	Vars  bool   `cli:"name=vars desc='show expression variables and functions'"`

	Grep *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	File bool `cli:"name=f desc='consider match a file path'"`
}

type ValuesConfig struct {
	*MainConfig

	Values *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}
