package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configFile is the optional configuration file read from the working
// directory. It supplies defaults for the render flags; explicitly set
// flags always win.
const configFile = "archviz.toml"

// config holds the optional file-based defaults for the root command.
// Zero values mean "not set": string fields fall through when empty and
// open is a pointer so `open = false` can be told apart from absent.
type config struct {
	Output string `toml:"output"`
	Format string `toml:"format"`
	Engine string `toml:"engine"`
	Open   *bool  `toml:"open"`
}

// loadConfig reads configFile from the working directory. A missing file
// yields an empty config; a file that exists but cannot be read or parsed
// is an error, so a broken config never silently degrades to defaults.
func loadConfig() (config, error) {
	var cfg config
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", configFile, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return cfg, nil
}

// applyConfig overlays config file values onto opts for every flag the
// user did not set on the command line. Precedence: explicit flags, then
// archviz.toml, then the built-in defaults already in opts.
func applyConfig(cmd *cobra.Command, opts *renderOpts) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Output != "" && !flags.Changed("output") {
		opts.output = cfg.Output
	}
	if cfg.Format != "" && !flags.Changed("format") {
		opts.format = cfg.Format
	}
	if cfg.Engine != "" && !flags.Changed("engine") {
		opts.engine = cfg.Engine
	}
	if cfg.Open != nil && !flags.Changed("open") {
		opts.open = *cfg.Open
	}
	return nil
}
