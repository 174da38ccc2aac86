package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// sourceCommand creates the source command, which prints the Graphviz DOT
// description of the architecture diagram without rendering it.
func (c *CLI) sourceCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "source",
		Short: "Print the Graphviz DOT source for the architecture diagram",
		Long: `Print the Graphviz DOT source for the architecture diagram.

The output is exactly the text handed to the rendering engine, so it can be
piped straight into Graphviz:

  archviz source | dot -Tpng -o architecture_esante.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSource(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runSource writes the diagram's DOT source to path, or to stdout when
// path is empty. Logs go to stderr, so piped output stays clean.
func (c *CLI) runSource(path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, buildArchitecture().Source()); err != nil {
		return err
	}
	if path != "" {
		c.Logger.Infof("Wrote DOT source to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
