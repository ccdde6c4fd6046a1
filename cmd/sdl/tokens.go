package main

import (
	"fmt"

	"github.com/SingingBush/SDL/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		toks, err := token.Tokenize(in.data)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", in.display(), err)
		}
		token.PrintTokens(cc.Out, toks, in.display())
	}
	return nil
}
