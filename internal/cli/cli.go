// Package cli implements the archviz command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and suggestions.
	appName = "archviz"

	// defaultOutput is the base name the diagram is rendered under when
	// neither the --output flag nor the config file names one.
	defaultOutput = "architecture_esante"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command with no arguments performs the one action this
// tool exists for: render the architecture diagram and open the result.
func (c *CLI) RootCommand() *cobra.Command {
	opts := newRenderOpts()

	root := &cobra.Command{
		Use:          appName,
		Short:        "ArchViz renders an annotated architecture diagram with Graphviz",
		Long:         `ArchViz is a CLI tool that renders a healthcare blockchain architecture diagram (a medical microservice, a blockchain node, a database, and a Docker container) to an image via Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	addRenderFlags(root, opts)

	// Register all subcommands
	root.AddCommand(c.sourceCommand())
	root.AddCommand(c.completionCommand())

	return root
}
