package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Write, cfg.Diff, cfg.List) > 1 {
		return fmt.Errorf("%w: at most one of -w -d -l may be given", cli.ErrUsage)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if cfg.Write && in.name == "-" {
			return fmt.Errorf("%w: cannot write stdin", cli.ErrUsage)
		}
		res, err := formatted(in.data)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", in.display(), err)
		}
		changed := !bytes.Equal(res, in.data)
		switch {
		case cfg.List:
			if changed {
				fmt.Fprintln(cc.Out, in.display())
			}
		case cfg.Diff:
			if changed {
				if err := writeDiff(cc.Out, in.display(), string(in.data), string(res), cfg.useColor(cc.Out)); err != nil {
					return err
				}
			}
		case cfg.Write:
			if !changed {
				continue
			}
			theLog.Info("rewriting", "file", in.name)
			if err := writeFile(in.name, res); err != nil {
				return fmt.Errorf("error writing %s: %w", in.name, err)
			}
		default:
			if _, err := cc.Out.Write(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatted returns the canonical text of an sdl document.
func formatted(d []byte) ([]byte, error) {
	tags, err := parse.Parse(d, parse.ParseComments(true))
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	err = encode.EncodeAll(tags, buf, encode.EncodePretty(true), encode.EncodeComments(true))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeDiff writes a line diff from a to b.
func writeDiff(w io.Writer, name, a, b string, colored bool) error {
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	out := &strings.Builder{}
	fmt.Fprintf(out, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffDelete:
				out.WriteString(del("-"+ln) + "\n")
			case diffpatch.DiffInsert:
				out.WriteString(ins("+"+ln) + "\n")
			case diffpatch.DiffEqual:
				out.WriteString(" " + ln + "\n")
			}
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}
