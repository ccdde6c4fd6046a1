package main

import (
	"fmt"
	"sort"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

// grepEnv is the environment of grep expressions for a single tag.
func grepEnv(t *ir.Tag, depth int) map[string]any {
	values := make([]any, 0, len(t.Values()))
	for _, v := range t.Values() {
		values = append(values, v.Any())
	}
	attrs := map[string]any{}
	for _, a := range t.Attributes() {
		attrs[a.QualifiedName()] = a.Value.Any()
	}
	var value any
	if vs := t.Values(); len(vs) > 0 {
		value = vs[0].Any()
	}
	return map[string]any{
		"name":      t.Name(),
		"namespace": t.Namespace(),
		"qname":     t.QualifiedName(),
		"value":     value,
		"values":    values,
		"attrs":     attrs,
		"children":  t.NumChildren(),
		"depth":     depth,
		"path":      t.Path(),
		"comment":   t.Comment(),
	}
}

// grepOpts returns the expression functions, which act on the tag *cur
// points to when the program runs.
func grepOpts(cur **ir.Tag) []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.Env(grepEnv(ir.MustTag("", "content"), 0)),
		expr.Function("truthy", func(params ...any) (any, error) {
			i := params[0].(int)
			vs := (*cur).Values()
			if i < 0 || i >= len(vs) {
				return false, nil
			}
			return ir.Truth(vs[i]), nil
		},
			new(func(int) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			i := params[0].(int)
			vs := (*cur).Values()
			if i < 0 || i >= len(vs) {
				return "", nil
			}
			return vs[i].Type().String(), nil
		},
			new(func(int) string)),
		expr.Function("has", func(params ...any) (any, error) {
			return (*cur).Child(params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := (*cur).GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return res.Value().Any(), nil
		},
			new(func(string) any)),
	}
}

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Vars {
		names := []string{}
		for k := range grepEnv(ir.MustTag("", "content"), 0) {
			names = append(names, k)
		}
		sort.Strings(names)
		fmt.Fprintf(cc.Out, "variables:\n")
		for _, n := range names {
			fmt.Fprintf(cc.Out, "\t- %s\n", n)
		}
		fmt.Fprintf(cc.Out, "functions:\n\t- truthy(i)\n\t- kind(i)\n\t- has(name)\n\t- getpath(path)\n")
		return nil
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: grep requires an expression, given with -e", cli.ErrUsage)
	}
	var cur *ir.Tag
	prg, err := expr.Compile(cfg.Expr, grepOpts(&cur)...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	n := 0
	for _, in := range ins {
		root, err := sdl.Root(in.data, parse.ParseComments(true))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", in.display(), err)
		}
		res, err := grepTags(prg, &cur, root.Children())
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", in.display(), err)
		}
		n += len(res)
		if cfg.Count {
			continue
		}
		for _, t := range res {
			if cfg.Paths {
				fmt.Fprintf(cc.Out, "%s: %s\n", in.display(), t.Path())
				continue
			}
			if err := encode.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	if cfg.Count {
		fmt.Fprintf(cc.Out, "%d\n", n)
	}
	return nil
}

// grepTags returns the tags under the roots of tags for which prg
// holds, in document order.
func grepTags(prg *vm.Program, cur **ir.Tag, tags []*ir.Tag) ([]*ir.Tag, error) {
	var res []*ir.Tag
	for _, root := range tags {
		err := root.Walk(func(t *ir.Tag, depth int) (bool, error) {
			*cur = t
			ok, err := expr.Run(prg, grepEnv(t, depth))
			if err != nil {
				return false, err
			}
			if ok.(bool) {
				res = append(res, t)
			}
			return true, nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
