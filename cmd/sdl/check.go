package main

import (
	"errors"
	"fmt"

	"github.com/SingingBush/SDL/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, in := range ins {
		_, err := parse.Parse(in.data)
		if err == nil {
			continue
		}
		failed++
		if cfg.Quiet {
			continue
		}
		var pe *parse.Error
		if errors.As(err, &pe) {
			fmt.Fprintf(cc.Out, "%s:%d:%d: %s\n", in.display(), pe.Line, pe.Col, pe.Msg)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", in.display(), err)
	}
	if failed != 0 {
		theLog.Debug("check failed", "files", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}
