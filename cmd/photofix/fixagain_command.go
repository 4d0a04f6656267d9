package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/processor"
)

func newFixAgainCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fix-again <id>",
		Short: "Re-run the enhancement cycle on a completed result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePhotoID(args[0])
			if err != nil {
				return err
			}

			progress := newProgressRenderer(cmd.OutOrStdout())
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

				resubmitted, err := s.controller.FixAgain(cmd.Context(), photo)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Fixing photo #%d again as #%d\n", photo.ID, resubmitted.ID)

				if err := s.controller.Wait(cmd.Context()); err != nil {
					return err
				}
				progress.finish()

				published, err := s.store.GetByID(cmd.Context(), resubmitted.ID)
				if err != nil {
					return err
				}
				if published == nil || published.IsPending() {
					return fmt.Errorf("photo #%d did not publish", resubmitted.ID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published #%d (%s, %s)\n",
					published.ID, published.Dimensions, published.FileSize)
				return nil
			}, processor.WithProgressObserver(progress.update))
		},
	}
}
