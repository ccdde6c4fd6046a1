package main

import (
	"fmt"
	"io"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return queryInputs(cfg.MainConfig, cc, args, path, false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return queryInputs(cfg.MainConfig, cc, args, path, true)
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a tag path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return path, args[1:], nil
}

func queryInputs(cfg *MainConfig, cc *cli.Context, args []string, path string, all bool) error {
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if err := queryInput(cfg, cc.Out, in, path, all); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", in.display(), path, err)
		}
	}
	return nil
}

func queryInput(cfg *MainConfig, w io.Writer, in *input, path string, all bool) error {
	root, err := sdl.Root(in.data)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	var res []*ir.Tag
	if all {
		res, err = root.ListPath(nil, path)
	} else {
		var t *ir.Tag
		t, err = root.GetPath(path)
		if t != nil {
			res = append(res, t)
		}
	}
	if err != nil {
		return err
	}
	if len(res) == 0 {
		// nothing there, and no complaint either
		return nil
	}
	if err := encode.EncodeAll(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
