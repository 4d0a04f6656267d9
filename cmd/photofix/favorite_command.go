package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a result's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePhotoID(args[0])
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(s *session) error {
				photo, err := s.controller.ToggleFavorite(cmd.Context(), id)
				if err != nil {
					return err
				}
				if photo == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No photo #%d in the feed\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Photo #%d favorited: %s\n", photo.ID, yesNo(photo.Favorited))
				return nil
			})
		},
	}
}
