package main

import (
	"fmt"
	"io"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		if err := viewInput(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error processing %s: %w", in.display(), err)
		}
	}
	return nil
}

func viewInput(cfg *ViewConfig, w io.Writer, in *input) error {
	tags, err := parse.Parse(in.data, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(w), encode.EncodeComments(cfg.Comments))
	if err := encode.EncodeAll(tags, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
