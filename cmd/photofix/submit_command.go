package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/processor"
	"photofix/internal/upload"
)

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var instructions string

	cmd := &cobra.Command{
		Use:   "submit <image>",
		Short: "Upload a photo and run the enhancement cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := upload.FromFile(args[0], instructions)
			if err != nil {
				return err
			}

			progress := newProgressRenderer(cmd.OutOrStdout())
			return ctx.withSession(cmd, func(s *session) error {
				photo, err := s.controller.Submit(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Fixing photo #%d (%s, %s)\n", photo.ID, req.FileName, photo.FileSize)

				if err := s.controller.Wait(cmd.Context()); err != nil {
					return err
				}
				progress.finish()

				published, err := s.store.GetByID(cmd.Context(), photo.ID)
				if err != nil {
					return err
				}
				if published == nil || published.IsPending() {
					return fmt.Errorf("photo #%d did not publish", photo.ID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published #%d (%s, %s, %s)\n",
					published.ID, published.Dimensions, published.FileSize, published.Model)
				return nil
			}, processor.WithProgressObserver(progress.update))
		},
	}

	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Describe the changes you'd like")

	return cmd
}
