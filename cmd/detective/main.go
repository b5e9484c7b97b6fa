package main

import (
	"context"
	"fmt"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// application carries what the subcommands share once the persistent flags and the environment are parsed.
type application struct {
	cfg    config
	logger *slog.Logger
}

func newRootCmd(lookupEnv func(string) (string, bool), dotenvFiles ...string) *cobra.Command {
	app := &application{}

	var variantNames []string
	for _, v := range game.Variants {
		variantNames = append(variantNames, string(v))
	}

	rootCmd := &cobra.Command{
		Use:   "detective",
		Short: "Explore the mansion, collect clues and accuse a suspect",
		Long: `Detective Quest is a text adventure in a mansion of seven rooms.

Walk left (e) or right (d) through the rooms, collect the clues you find and,
in the master variant, accuse the suspect the clues point to. Leave with s.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(lookupEnv, dotenvFiles...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("variant") {
				cfg.Variant, _ = cmd.Flags().GetString("variant")
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if app.logger, err = logging.NewLogger(cmd.ErrOrStderr(), level, cfg.LogFormat); err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().String("variant", string(game.Master),
		fmt.Sprintf("game variant, one of %s (env DETECTIVE_VARIANT)", strings.Join(variantNames, ", ")))
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error (env DETECTIVE_LOG_LEVEL)")

	rootCmd.AddGroup(&cobra.Group{ID: "game", Title: "Game"})
	rootCmd.AddCommand(app.playCmd(), app.mapCmd(), versionCmd())

	return rootCmd
}

func (app *application) variant() (game.Variant, error) {
	return game.ParseVariant(app.cfg.Variant)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "detective %s\n", version)
			return err
		},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(os.LookupEnv, ".env")
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(stderr, nil)))
		logger.LogAttrs(ctx, slog.LevelError, "command failed", errors.SlogError(err))
		return 1
	}
	return 0
}

// exitInterrupted is the conventional exit code after SIGINT.
const exitInterrupted = 130

// exitOnInterrupt restores the default signal handling with stop and exits as soon as ctx is done. The returned
// function detaches from ctx and reports false when the exit is already under way.
func exitOnInterrupt(ctx context.Context, stop func(), exit func(code int)) func() bool {
	return context.AfterFunc(ctx, func() {
		stop()
		exit(exitInterrupted)
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// A blocked read from a terminal cannot be cancelled, so the first interrupt ends the process.
	release := exitOnInterrupt(ctx, stop, func(code int) {
		_, _ = fmt.Fprintln(os.Stdout)
		os.Exit(code)
	})
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if !release() {
		select {}
	}
	stop()
	os.Exit(code)
}
