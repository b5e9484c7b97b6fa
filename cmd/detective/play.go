package main

import (
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/spf13/cobra"
	"log/slog"
)

func (app *application) playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "play",
		Short:   "Play a game reading the choices from stdin",
		GroupID: "game",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := app.variant()
			if err != nil {
				return err
			}
			opts := variant.DefaultOptions()
			if cmd.Flags().Changed("allow-quit") {
				opts.AllowQuit, _ = cmd.Flags().GetBool("allow-quit")
			}
			if cmd.Flags().Changed("dead-end-exits") {
				opts.DeadEndExits, _ = cmd.Flags().GetBool("dead-end-exits")
			}

			session := game.New(variant, opts, app.logger)
			report, err := session.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return errors.Wrap(err, "play session", slog.String("sessionID", session.ID))
			}
			app.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "game over",
				slog.String("sessionID", report.SessionID), slog.Any("visited", report.Visited))
			return nil
		},
	}
	cmd.Flags().Bool("allow-quit", true, "allow leaving the exploration with s")
	cmd.Flags().Bool("dead-end-exits", false, "end the exploration on reaching a room without exits (default true for novice)")
	return cmd
}
