package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/parse"

	"github.com/scott-cotton/cli"
)

func values(cfg *ValuesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Values.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: values requires at least one literal", cli.ErrUsage)
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 8, 2, ' ', 0)
	failed := false
	for _, arg := range args {
		v, err := parse.Value(arg)
		if err != nil {
			theLog.Error("bad literal", "literal", arg, "error", err)
			failed = true
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", v.Type(), encode.Value(v))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
