package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coregx/spanscan"
)

// options holds the global flags and the state derived from them.
type options struct {
	output      outputFormat
	verbose     bool
	noAccel     bool
	minAccelLen int

	log     *slog.Logger
	scanner *spanscan.ByteScanner
}

// Flags registers the global flags.
func (o *options) Flags(flags *pflag.FlagSet) {
	flags.VarP(&o.output, "output", "o", "Output format (text or yaml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	flags.BoolVar(&o.noAccel, "no-accel", false, "Always use the element-wise fallback kernels")
	flags.IntVar(&o.minAccelLen, "min-accel-len", spanscan.DefaultConfig().MinAccelLen,
		"Shortest input handed to the word-at-a-time kernels")
}

// config maps the flags onto a scanner configuration.
func (o *options) config() spanscan.Config {
	config := spanscan.DefaultConfig()
	config.EnableAccel = !o.noAccel
	config.MinAccelLen = o.minAccelLen
	return config
}

func (o *options) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	config := o.config()
	scanner, err := spanscan.NewByteScanner(config)
	if err != nil {
		return err
	}
	o.scanner = scanner

	o.log.Debug("Scanner ready",
		"command", cmd.Name(),
		"accelerated", scanner.Accelerated(),
		"minAccelLen", config.MinAccelLen)
	return nil
}

func (o *options) teardown(cmd *cobra.Command, _ []string) {
	stats := o.scanner.Stats()
	o.log.Debug("Search stats",
		"command", cmd.Name(),
		"accel", stats.AccelSearches,
		"fallback", stats.FallbackSearches)
}

func newRootCmd() *cobra.Command {
	o := &options{output: outputText}

	cmd := &cobra.Command{
		Use:   "spanscan",
		Short: "Search, compare and fill byte spans",
		Long: `spanscan runs the span search kernels over command-line input.

Searches go through a scanner that hands long inputs to word-at-a-time
kernels and short ones to the element-wise fallback kernels. A missing
needle is reported as index -1.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.setup,
		PersistentPostRun: o.teardown,
	}
	o.Flags(cmd.PersistentFlags())

	cmd.AddCommand(
		newIndexCmd(o),
		newEqualCmd(o),
		newCompareCmd(o),
		newFillCmd(o),
		newInfoCmd(o),
	)
	return cmd
}
