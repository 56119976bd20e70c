package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coarsedate/period/format"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <pattern>",
		Short: "Compile a pattern and dump its token program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Compile(args[0])
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			for i, tok := range f.Tokens() {
				if tok.Specifier == 0 {
					fmt.Printf("%2d  literal   %q\n", i, tok.Literal)
					continue
				}
				width := "min"
				if tok.Fixed {
					width = "fixed"
				}
				fmt.Printf("%2d  field     %c  %s  width=%d (%s)\n", i, tok.Specifier, tok.Kind, tok.Width, width)
			}
			return nil
		},
	}
}
