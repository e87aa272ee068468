// Package cli implements the extensions-matrix command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nwb-extensions/extensions-matrix/pkg/buildinfo"
)

// Output formats accepted by --output-format.
const (
	FormatGitHubActions = "github-actions"
	FormatJSON          = "json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	outputFormat string
	verbose      bool
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "extensions-matrix",
		Short: "Generate the workflow matrix for NWB extensions testing",
		Long: `extensions-matrix fetches the NWB extensions catalog and generates a JSON
matrix that GitHub Actions workflows use to dynamically test extensions.

Set GITHUB_TOKEN for authenticated catalog requests (higher rate limits).`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVar(&c.outputFormat, "output-format", FormatGitHubActions,
		"output format: github-actions or json")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}
