package main

import (

	"github.com/npillmayer/loaderutil"
	"github.com/spf13/cobra"
)

func newRequestCmd(a *app) *cobra.Command {
	var (
		root      string
		context   string
		stringify bool
	)
	cmd := &cobra.Command{
		Use:   "request URL...",
		Short: "Convert URLs into module requests",
		Long: `request converts every URL found in an asset into the module request a
bundler resolves. URLs which are no requests are reported as such.

With --stringify, every argument is taken as a request and printed as a
string literal with absolute paths made relative to --context.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Request
			if cmd.Flags().Changed("root") {
				cfg.Root = root
			}
			if cmd.Flags().Changed("context") {
				cfg.Context = context
			}
			col := a.out.column(args)
			if stringify {
				lc := &loaderutil.LoaderContext{Context: cfg.Context}
				for _, r := range args {
					a.out.pair(col, r, roleSource, loaderutil.StringifyRequest(lc, r), roleToken)
				}
				return nil
			}
			var errs []error
			for _, u := range args {
				if !loaderutil.IsURLRequest(u) {
					a.out.pair(col, u, roleSource, "(no request)", rolePlain)
					continue
				}
				request, err := loaderutil.URLToRequest(u, loaderutil.ParseRoot(cfg.Root))
				if err != nil {
					a.printError(cmd, u, err)
					errs = append(errs, err)
					continue
				}
				a.out.pair(col, u, roleSource, request, roleToken)
			}
			return failed(errs)
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", `root for URLs starting with "/" ("true" keeps them absolute)`)
	cmd.Flags().StringVarP(&context, "context", "c", "", "directory requests are made relative to")
	cmd.Flags().BoolVarP(&stringify, "stringify", "s", false, "print requests as string literals")
	return cmd
}
