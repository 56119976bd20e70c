package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReformatCmd() *cobra.Command {
	var (
		fromPattern string
		toPattern   string
		localeTag   string
	)

	cmd := &cobra.Command{
		Use:   "reformat <text>",
		Short: "Parse period text with one pattern and render it with another",
		Example: `  periodfmt reformat --from "yyyy-Qq" --to "Qq/yyyy" 2018-Q2
  periodfmt reformat --from "yyyy-mm" --to "U yyyy" --locale fr 2018-04`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := compileFor(fromPattern, localeTag)
			if err != nil {
				return err
			}
			dst, err := compileFor(toPattern, localeTag)
			if err != nil {
				return err
			}
			date, err := src.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			out, err := dst.Format(date)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromPattern, "from", "", "pattern to parse the input with")
	cmd.Flags().StringVar(&toPattern, "to", "", "pattern to render the output with")
	cmd.Flags().StringVarP(&localeTag, "locale", "l", "", "month-name locale for both patterns")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
