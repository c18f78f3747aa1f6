package main

import (
	"os"

	"github.com/npillmayer/loaderutil"
	"github.com/npillmayer/loaderutil/html"
	"github.com/spf13/cobra"
)

func newHTMLCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "html FILE...",
		Short: "List the module requests of HTML pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.config.Request.Root
			if cmd.Flags().Changed("root") {
				r = root
			}
			var errs []error
			for _, p := range args {
				if err := a.listReferences(p, loaderutil.ParseRoot(r)); err != nil {
					a.printError(cmd, p, err)
					errs = append(errs, err)
				}
			}
			return failed(errs)
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", `root for URLs starting with "/"`)
	return cmd
}

func (a *app) listReferences(path string, root loaderutil.Root) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	refs, err := html.Requests(f, root)
	if err != nil {
		return err
	}
	a.out.line(roleKey, path)
	urls := make([]string, len(refs))
	for i, ref := range refs {
		urls[i] = ref.URL
	}
	col := a.out.column(urls)
	for _, ref := range refs {
		a.out.pair(col, ref.URL, roleSource, ref.Request, roleToken)
	}
	return nil
}
