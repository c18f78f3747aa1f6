package main

import (

	"github.com/npillmayer/loaderutil"
	"github.com/npillmayer/loaderutil/assetfile"
	"github.com/spf13/cobra"
)

func newNameCmd(a *app) *cobra.Command {
	var (
		flags     digestFlags
		template  string
		context   string
		regExp    string
		dottedExt bool
	)
	cmd := &cobra.Command{
		Use:   "name FILE...",
		Short: "Interpolate a name template for files",
		Long: `name prints the name a bundler would emit for every FILE.

Placeholders: [name] [ext] [path] [folder] [query] [emoji] [emoji:N]
[hash] [contenthash] [<algo>:hash:<encoding>:<length>] and [N] for
capture groups of --regexp.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Name
			if cmd.Flags().Changed("template") {
				cfg.Template = template
			}
			if cmd.Flags().Changed("context") {
				cfg.Context = context
			}
			if cmd.Flags().Changed("regexp") {
				cfg.RegExp = regExp
			}
			if cmd.Flags().Changed("dotted-ext") {
				cfg.DottedExt = dottedExt
			}
			spec := flags.spec(cmd, a.config.Digest)
			opts := &loaderutil.InterpolateOptions{
				Context:          cfg.Context,
				RegExp:           cfg.RegExp,
				HashFunction:     spec.Algorithm,
				HashDigest:       spec.Encoding,
				HashDigestLength: spec.MaxLength,
				Salt:             spec.Salt,
				DottedExt:        cfg.DottedExt,
			}
			results, err := assetfile.Collect(cmd.Context(), args, loaderutil.Pattern(cfg.Template), opts)
			if err != nil {
				return err
			}
			var errs []error
			col := a.out.column(args)
			for _, r := range results {
				if r.Err != nil {
					a.printError(cmd, r.Path, r.Err)
					errs = append(errs, r.Err)
					continue
				}
				a.out.pair(col, r.Path, roleSource, r.Name, roleToken)
			}
			return failed(errs)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&template, "template", "t", "", "name template")
	cmd.Flags().StringVarP(&context, "context", "c", "", "directory [path] is relative to")
	cmd.Flags().StringVar(&regExp, "regexp", "", "regular expression for [N] placeholders")
	cmd.Flags().BoolVar(&dottedExt, "dotted-ext", false, "[ext] includes the dot")
	return cmd
}
