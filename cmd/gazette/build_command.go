package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gazette/internal/build"
	"gazette/internal/render"
)

func newBuildCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Parse the season and render every page into the public dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if err := render.CheckThemeTemplates(cfg.Build.ThemeDir, cfg.Site.Theme); err != nil {
				return err
			}

			b := &build.Builder{Cfg: cfg, Logger: slog.Default()}
			res, err := b.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"built season %q: %d articles, %d distinct words\n",
				res.Season.Slug, res.Articles, res.Words)
			return nil
		},
	}
}
