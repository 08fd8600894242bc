package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragaeeb/baburchi-sub001/internal/tokenize"
)

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var symbols []string

	cmd := &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Show how text splits into tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			preserved := cfg.TypoSymbols
			if cmd.Flags().Changed("symbol") {
				preserved = symbols
			}
			for _, token := range tokenize.Tokens(args[0], preserved) {
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&symbols, "symbol", nil, "Preserved symbol (repeatable; overrides config)")

	return cmd
}
