package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventmanager/config"
)

// Global flags
type rootOptions struct {
	logLevel  string
	logFormat string
}

// newRootCommand builds the command tree. Running it without a subcommand starts the server.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	serve := newServeCommand(opts)

	root := &cobra.Command{
		Use:   "server",
		Short: "Event manager server",
		Long: `Event manager server runs the JSON API and the HTML pages for managing events
together with their participants, speakers, vendors, feedback and budget.

Configuration comes from APP_* environment variables and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve.RunE(cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (json, text)")

	root.AddCommand(serve)
	root.AddCommand(newMigrateCommand(opts))
	root.AddCommand(newTokenCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the logging flags.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	return cfg, nil
}
