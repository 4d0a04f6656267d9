package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/feed"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one result in detail",
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

				if viewFlag != "" {
					selected, ok := feed.ParseView(viewFlag)
					if !ok {
						return fmt.Errorf("unknown view %q", viewFlag)
					}
					if err := s.projection.SelectView(cmd.Context(), id, selected); err != nil {
						return err
					}
				}
				if err := s.projection.OpenFullscreen(cmd.Context(), id); err != nil {
					return err
				}

				active := s.projection.ActiveView(id)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Photo #%d\n", photo.ID)
				fmt.Fprintf(out, "  Instructions: %s\n", displayTitle(photo.Instructions))
				fmt.Fprintf(out, "  When:         %s\n", photo.TimestampLabel)
				if photo.IsPending() {
					fmt.Fprintf(out, "  Progress:     %d%%\n", int(photo.ProgressPercent))
				}
				fmt.Fprintf(out, "  Dimensions:   %s\n", photo.Dimensions)
				fmt.Fprintf(out, "  Size:         %s\n", photo.FileSize)
				fmt.Fprintf(out, "  Model:        %s\n", photo.Model)
				fmt.Fprintf(out, "  Favorited:    %s\n", yesNo(photo.Favorited))
				fmt.Fprintf(out, "  Video:        %s\n", yesNo(photo.HasVideo()))
				fmt.Fprintf(out, "  Viewing:      %s (%s)\n", active, s.projection.ActiveURL(photo))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&viewFlag, "view", "", "Variant to display (original, fixed, video)")

	return cmd
}
