package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/siteheader/console"
)

// Execute runs headerctl.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "headerctl",
		Short: "Prerender and inspect site navigation headers",
		Long: `headerctl injects a site's shared header.html into a page's
header placeholder, highlights the nav link for the page and writes the
result, the same way the in-browser loader does at runtime.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.WarnLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			console.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRenderCmd(), newPageIDCmd(), newVersionCmd())
	return root
}
