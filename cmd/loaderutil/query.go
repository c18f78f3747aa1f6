package main

import (
	"encoding/json"

	"github.com/npillmayer/loaderutil"
	"github.com/spf13/cobra"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query QUERY...",
		Short: "Parse loader query strings",
		Long: `query parses every QUERY the way a transformer reads its options and
prints the result as JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, q := range args {
				options, err := loaderutil.ParseQuery(q)
				if err != nil {
					a.printError(cmd, q, err)
					errs = append(errs, err)
					continue
				}
				js, err := json.MarshalIndent(options, "", "  ")
				if err != nil {
					return err
				}
				a.out.line(roleToken, string(js))
			}
			return failed(errs)
		},
	}
}
