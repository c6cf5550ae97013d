package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/team-roster-bot/internal/config"
	"github.com/preston-bernstein/team-roster-bot/internal/localtest"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/server"
)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var testMode bool

	root := &cobra.Command{
		Use:   "rosterbot [--test [command...]]",
		Short: "Discord bot that manages players and teams",
		Long: `rosterbot connects to Discord and answers roster commands.

With --test it runs without Discord: trailing text is handled as a single
chat command, and no text starts an interactive terminal session.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if testMode {
				return runLocal(cmd.Context(), cfg, newLogger(cfg, cmd.ErrOrStderr(), "warn"), args, in, out)
			}
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments %q; pass --test to run a command locally", args)
			}

			logger := newLogger(cfg, out, cfg.Log.Level)
			srv, err := server.New(cfg, logger)
			if err != nil {
				logging.Error(logger, "startup failed", err)
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	root.Flags().BoolVar(&testMode, "test", false, "run commands locally instead of connecting to Discord")
	// Everything after --test is command text, including words that look like flags.
	root.Flags().SetInterspersed(false)
	root.SetOut(out)

	root.AddCommand(newRegisterCmd(out))
	return root
}

func newRegisterCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "register-commands",
		Short: "Overwrite the application's slash commands",
		Long: `Registers /player, /team and /teams for DISCORD_APPLICATION_ID.
Commands are scoped to DISCORD_GUILD_ID when it is set and global otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			cfg.HTTP.Enabled = false
			cfg.Metrics.Enabled = false
			logger := newLogger(cfg, out, cfg.Log.Level)

			srv, err := server.New(cfg, logger)
			if err != nil {
				logging.Error(logger, "startup failed", err)
				return err
			}
			if err := srv.RegisterCommands(); err != nil {
				logging.Error(logger, "command registration failed", err)
				return err
			}
			return nil
		},
	}
}

func runLocal(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string, in io.Reader, out io.Writer) error {
	core, err := server.NewCore(cfg.DataPath, logger, nil)
	if err != nil {
		return err
	}
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		return localtest.RunOnce(ctx, core.Commands, text, out)
	}
	return localtest.Run(ctx, core.Commands, core.Router, in, out)
}

func newLogger(cfg config.Config, out io.Writer, level string) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  out,
	})
}
