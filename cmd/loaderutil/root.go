package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/loaderutil/hashing"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// app is the state shared by all sub-commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool
	config  Config
	out     *printer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "loaderutil",
		Short: "Content hashes, asset names and module requests",
		Long: `loaderutil computes the names bundlers give to emitted assets and the
module requests assets make.

Commands:
  digest   - hash files and encode the digest
  name     - interpolate a name template for files
  query    - parse a loader query string
  request  - convert URLs into module requests
  html     - list the module requests of an HTML page`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.AddCommand(
		newDigestCmd(a),
		newNameCmd(a),
		newQueryCmd(a),
		newRequestCmd(a),
		newHTMLCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if a.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	var err error
	if a.config, err = loadConfig(a.cfgFile); err != nil {
		a.printError(cmd, "reading config", err)
		return fmt.Errorf("%w: %w", errReported, err)
	}
	hashing.SetDigestCacheLimit(a.config.CacheLimit)
	a.out = newPrinter(cmd.OutOrStdout(), a.noColor)
	return nil
}

func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}

func (a *app) printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %v\n", palette[roleError].Sprint("error"), msg, err)
}

// errReported marks errors which have already been printed.
var errReported = errors.New("loaderutil: errors reported")

func failed(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", errReported, errors.Join(errs...))
}
