package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nwb-extensions/extensions-matrix/pkg/catalog"
	"github.com/nwb-extensions/extensions-matrix/pkg/integrations/github"
)

// runGenerate runs the whole pipeline: discover record repos, fetch and
// validate descriptors, build the matrix, and emit it in the requested
// format.
func (c *CLI) runGenerate(ctx context.Context) error {
	if err := validateFormat(c.outputFormat); err != nil {
		return err
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token != "" {
		c.Logger.Debug("Using GitHub token for authenticated requests")
	} else {
		c.Logger.Debug("No GitHub token found, using unauthenticated requests")
	}

	builder := catalog.NewBuilder(github.NewClient(token), c.Logger)
	matrix := builder.Build(ctx)

	if err := c.emit(matrix); err != nil {
		return fmt.Errorf("emit matrix: %w", err)
	}

	printSuccess("Generated matrix with %d extensions", len(matrix.Extension))
	return nil
}

// validateFormat checks that format names a supported output format.
func validateFormat(format string) error {
	switch format {
	case FormatGitHubActions, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format %q (valid: %s, %s)",
		format, FormatGitHubActions, FormatJSON)
}
