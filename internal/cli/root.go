package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the heatpath CLI under ctx and returns an error if any
// command fails.
//
// The function sets up the root command with all subcommands (route, plot,
// compare, gen), configures logging based on the --verbose flag, loads the
// optional --config TOML file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible
// to all commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd assembles the command tree with the persistent flags.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "heatpath",
		Short:        "heatpath routes minimum-cost paths across heatmap images",
		Long:         `heatpath reads grayscale heatmap images as cost fields and finds minimum-cost routes across them, either within a single image or through an image sequence where every step must advance one frame.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cmdCtx = withConfig(cmdCtx, cfg)
			}
			cmd.SetContext(cmdCtx)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("heatpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with routing defaults")

	root.AddCommand(newRouteCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newGenCmd())

	return root
}
