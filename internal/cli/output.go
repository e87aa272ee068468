package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nwb-extensions/extensions-matrix/pkg/catalog"
)

// outputKey is the key under which the matrix is published to the workflow.
const outputKey = "matrix"

// emit writes the matrix in the selected output format. Diagnostics go to
// stderr; stdout carries nothing but the payload.
func (c *CLI) emit(m catalog.Matrix) error {
	switch c.outputFormat {
	case FormatJSON:
		return writeJSON(os.Stdout, m)
	default:
		return c.writeGitHubOutput(m)
	}
}

// writeJSON pretty-prints the matrix with 2-space indentation.
func writeJSON(w io.Writer, m catalog.Matrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// writeGitHubOutput emits a single "matrix=<compact json>" line. When the
// GITHUB_OUTPUT environment variable is set the line is appended to that
// file, which is how GitHub Actions passes step outputs; otherwise it goes
// to stdout.
func (c *CLI) writeGitHubOutput(m catalog.Matrix) error {
	line, err := githubOutputLine(m)
	if err != nil {
		return err
	}

	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		if err := appendLine(path, line); err != nil {
			return err
		}
		printDetail("%s → %s", outputKey, path)
		return nil
	}

	_, err = fmt.Fprintln(os.Stdout, line)
	return err
}

// githubOutputLine renders the compact single-line key=value form.
func githubOutputLine(m catalog.Matrix) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return outputKey + "=" + string(data), nil
}

// appendLine appends line plus a newline to the file at path.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, line)
	return err
}
