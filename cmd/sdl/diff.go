package main

import (
	"fmt"
	"io"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/diff"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diffDocs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	var roots [2]*ir.Tag
	for i, arg := range args {
		in, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		roots[i], err = sdl.Root(in.data, parse.ParseComments(cfg.Comments))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", in.display(), err)
		}
	}
	opts := []diff.DiffOption{diff.DiffComments(cfg.Comments)}
	edits := diff.Tags(roots[0], roots[1], opts...)
	if cfg.Patch {
		p, err := diff.MergePatch(roots[0], roots[1], opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", p); err != nil {
			return err
		}
	} else if err := writeEdits(cc.Out, edits, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	if len(edits) != 0 {
		theLog.Debug("documents differ", "edits", len(edits))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeEdits(w io.Writer, edits []diff.Edit, colored bool) error {
	paint := map[diff.Op]func(...any) string{}
	if colored {
		paint[diff.Delete] = color.New(color.FgRed).Sprint
		paint[diff.Insert] = color.New(color.FgGreen).Sprint
		paint[diff.Change] = color.New(color.FgYellow).Sprint
	}
	for i := range edits {
		e := &edits[i]
		s := e.String()
		if f := paint[e.Op]; f != nil {
			s = f(s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
