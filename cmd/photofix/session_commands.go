package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the session",
	}
	cmd.AddCommand(newSessionStatusCommand(ctx))
	cmd.AddCommand(newSessionClearCommand(ctx))
	return cmd
}

func newSessionStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the session feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session) error {
				summary, err := s.store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Session: %s\n", s.cfg.Paths.SessionDir)
				fmt.Fprintf(out, "  Total:      %d\n", summary.Total)
				fmt.Fprintf(out, "  Processing: %d\n", summary.Pending)
				fmt.Fprintf(out, "  Completed:  %d\n", summary.Completed)
				fmt.Fprintf(out, "  Uploads:    %d\n", summary.Uploads)
				fmt.Fprintf(out, "  Samples:    %d\n", summary.Samples)
				fmt.Fprintf(out, "  Favorited:  %d\n", summary.Favorited)
				return nil
			})
		},
	}
}

// newSessionClearCommand discards the session directory wholesale. It never
// opens the store: a clear must work even when the feed database is corrupt
// or locked by a crashed process.
func newSessionClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the session feed and all stored variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(cfg.Paths.SessionDir)
			if dir == "" || dir == "/" {
				return fmt.Errorf("refusing to clear session directory %q", dir)
			}
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("clear session directory: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", dir)
			return nil
		},
	}
}
