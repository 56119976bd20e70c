package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/coarsedate/period/locale"
)

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales [tag]",
		Short: "List embedded month-name locales, or one locale's table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, tag := range locale.Tags() {
					fmt.Println(tag)
				}
				return nil
			}
			tag, err := language.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse tag %q: %w", args[0], err)
			}
			months, err := locale.Lookup(tag)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", months.Tag())
			for n := 1; n <= 12; n++ {
				name, _ := months.Name(n)
				abbrev, _ := months.Abbrev(n)
				fmt.Printf("%2d  %-12s %s\n", n, name, abbrev)
			}
			return nil
		},
	}
}
