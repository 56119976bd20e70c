package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "periodfmt",
		Short: "Format and parse calendar period text",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newReformatCmd())
	rootCmd.AddCommand(newLocalesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
