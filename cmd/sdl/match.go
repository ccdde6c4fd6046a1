package main

import (
	"fmt"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg, cc, args[0])
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	for _, in := range ins {
		res, err := matchInput(cfg, pattern, in)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", in.display(), err)
		}
		if err := encode.EncodeAll(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

func getPattern(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Tag, error) {
	d := []byte(arg)
	if cfg.File {
		in, err := readInput(cc, arg)
		if err != nil {
			return nil, err
		}
		d = in.data
	}
	tags, err := parse.Parse(d, parse.ParseComments(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding pattern: %w", err)
	}
	if len(tags) != 1 {
		return nil, fmt.Errorf("%w: pattern must be a single tag, got %d", cli.ErrUsage, len(tags))
	}
	return tags[0], nil
}

func matchInput(cfg *MatchConfig, pattern *ir.Tag, in *input) ([]*ir.Tag, error) {
	tags, err := parse.Parse(in.data, parse.ParseComments(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding: %w", err)
	}
	var res []*ir.Tag
	for _, t := range tags {
		if !sdl.Match(t, pattern) {
			continue
		}
		if cfg.Trim {
			t = sdl.Trim(pattern, t)
		}
		res = append(res, t)
	}
	return res, nil
}
