package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/feed"
	"photofix/internal/share"
)

func newShareCommand(ctx *commandContext) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Share a result's displayed variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePhotoID(args[0])
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(s *session) error {
				photo, err := s.store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if photo == nil {
					return fmt.Errorf("no photo #%d in the feed", id)
				}
				if photo.IsPending() {
					return fmt.Errorf("photo #%d is still processing", id)
				}

				if viewFlag != "" {
					selected, ok := feed.ParseView(viewFlag)
					if !ok {
						return fmt.Errorf("unknown view %q", viewFlag)
					}
					if err := s.projection.SelectView(cmd.Context(), id, selected); err != nil {
						return err
					}
				}

				// No native share channel on the CLI; the clipboard fallback
				// prints the locator.
				service := share.NewService(nil, share.WriterClipboard{W: cmd.OutOrStdout()}, s.logger)
				method := service.Share(cmd.Context(), s.projection.ActiveURL(photo))
				fmt.Fprintf(cmd.OutOrStdout(), "Shared photo #%d via %s\n", photo.ID, method)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&viewFlag, "view", "", "Variant to share (original, fixed, video)")

	return cmd
}
