package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photofix/internal/config"
	"photofix/internal/export"
	"photofix/internal/feed"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var (
		viewFlag  string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Save a result variant to the download directory",
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

				cfg := s.cfg
				if outputDir != "" {
					expanded, err := config.ExpandPath(outputDir)
					if err != nil {
						return err
					}
					override := *cfg
					override.Paths.DownloadDir = expanded
					cfg = &override
				}

				downloader := export.NewDownloader(cfg, s.blobs, s.logger)
				path, err := downloader.Download(cmd.Context(), photo, s.projection.ActiveView(id))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&viewFlag, "view", "", "Variant to download (original, fixed, video)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Destination directory (defaults to the configured download directory)")

	return cmd
}
