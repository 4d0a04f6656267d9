package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/feed"
)

func newFeedCommand(ctx *commandContext) *cobra.Command {
	var favoritesOnly bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the session's result feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session) error {
				s.projection.SetFavoritesOnly(favoritesOnly)

				photos, err := s.projection.List(cmd.Context())
				if err != nil {
					return err
				}
				summary, err := s.store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Recent Fixes (%d total)\n", summary.Total)
				if len(photos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to show.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFeedTable(photos))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show favorited results only")

	return cmd
}

func renderFeedTable(photos []*feed.Photo) string {
	headers := []string{"#", "Instructions", "When", "Dimensions", "Size", "Model", "Video", "Fav"}
	rows := make([][]string, 0, len(photos))
	for _, photo := range photos {
		when := photo.TimestampLabel
		if photo.IsPending() {
			when = fmt.Sprintf("%s %d%%", photo.TimestampLabel, int(photo.ProgressPercent))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", photo.ID),
			displayTitle(photo.Instructions),
			when,
			photo.Dimensions,
			photo.FileSize,
			photo.Model,
			yesNo(photo.HasVideo()),
			yesNo(photo.Favorited),
		})
	}
	return renderTable(headers, rows, 1, 5)
}
