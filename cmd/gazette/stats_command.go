package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gazette/internal/index"
)

func newStatsCommand(configFlag *string) *cobra.Command {
	var topFlag int

	cmd := &cobra.Command{
		Use:   "stats [season-slug]",
		Short: "Show word statistics recorded by the last build",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if cfg.Build.IndexPath == "" {
				return errors.New("no index path configured")
			}

			st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()

			if len(args) == 0 {
				seasons, err := st.Seasons()
				if err != nil {
					return err
				}
				for _, rec := range seasons {
					fmt.Fprintf(out, "%s\t#%d\t%q\t%d articles\t%d words\n",
						rec.Slug, rec.Number, rec.Title, rec.Articles, rec.Words)
				}
				return nil
			}

			slug := args[0]
			rec, err := st.SeasonInfo(slug)
			if err != nil {
				return fmt.Errorf("season %q: %w", slug, err)
			}
			fmt.Fprintf(out, "%s #%d %q: %d articles, %d distinct words\n",
				rec.Slug, rec.Number, rec.Title, rec.Articles, rec.Words)

			words, err := st.TopWords(slug, topFlag)
			if err != nil {
				return err
			}
			for _, wc := range words {
				fmt.Fprintf(out, "%6d  %s\n", wc.Count, wc.Word)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&topFlag, "top", "n", 10, "number of words to show")
	return cmd
}
