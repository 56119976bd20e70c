package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/text/language"

	"github.com/coarsedate/period"
	"github.com/coarsedate/period/format"
	"github.com/coarsedate/period/locale"
)

var log = commonlog.GetLogger("periodfmt")

// compileFor builds a Format from the shared --pattern/--locale flags.
func compileFor(pattern, localeTag string) (*format.Format, error) {
	opts := []format.Option{}
	if localeTag != "" {
		tag, err := language.Parse(localeTag)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", localeTag, err)
		}
		months, err := locale.Lookup(tag)
		if err != nil {
			return nil, err
		}
		log.Debugf("locale %q matched table %s", localeTag, months.Tag())
		opts = append(opts, format.WithMonths(months))
	}
	f, err := format.Compile(pattern, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	log.Debugf("compiled %q into %d tokens", pattern, len(f.Tokens()))
	return f, nil
}

func newParseCmd() *cobra.Command {
	var (
		pattern   string
		asKind    string
		localeTag string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse period text against a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := compileFor(pattern, localeTag)
			if err != nil {
				return err
			}

			var date period.Date
			if asKind != "" {
				kind, err := period.ParseKind(asKind)
				if err != nil {
					return err
				}
				date, err = f.ParseAs(args[0], kind)
				if err != nil {
					return err
				}
			} else {
				date, err = f.Parse(args[0])
				if err != nil {
					return err
				}
			}

			if asJSON {
				fields := map[string]int64{}
				for k := period.Year; k <= period.Day; k++ {
					if n, ok := date.Field(k); ok {
						fields[k.String()] = n
					}
				}
				enc := json.NewEncoder(os.Stdout)
				return enc.Encode(map[string]any{
					"kind":   date.Kind().String(),
					"text":   date.String(),
					"fields": fields,
				})
			}

			fmt.Printf("%s %s\n", date.Kind(), date)
			for k := period.Year; k <= period.Day; k++ {
				if n, ok := date.Field(k); ok {
					fmt.Printf("  %-8s %d\n", k, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "format pattern, e.g. \"yyyy-Qq\"")
	cmd.Flags().StringVar(&asKind, "as", "", "resolve to this granularity instead of the pattern's finest field")
	cmd.Flags().StringVarP(&localeTag, "locale", "l", "", "month-name locale, e.g. \"fr\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
