package cmd

import (
	"os"

	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem the commands read variants from and write images to.
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "statframes",
	Short: "Farcaster stat frames server and tools",
	Long: `statframes serves Farcaster frames that show a user's token stats.

Available commands:
  serve       Run the HTTP server
  render      Render a frame image for a fid to a file
  variants    List the configured frame variants
  version     Print the version

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging for a command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)
	return cfg, nil
}
