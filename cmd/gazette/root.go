package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gazette/internal/domain/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	rootCmd := &cobra.Command{
		Use:           "gazette",
		Short:         "Build a publication site from a season of markdown articles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verboseFlag {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "site.yaml", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newBuildCommand(&configFlag))
	rootCmd.AddCommand(newServeCommand(&configFlag))
	rootCmd.AddCommand(newStatsCommand(&configFlag))

	return rootCmd
}

func loadConfig(path string) (config.Config, error) {
	return config.LoadOrDefault(path)
}
