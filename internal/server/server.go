package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/team-roster-bot/internal/config"
	"github.com/preston-bernstein/team-roster-bot/internal/discord"
	httpserver "github.com/preston-bernstein/team-roster-bot/internal/http"
	"github.com/preston-bernstein/team-roster-bot/internal/http/handlers"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
)

var (
	metricsSetup = metrics.Setup
	newSession   = func(token string) (discord.Session, error) { return discord.NewSession(token) }
)

type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	core        *Core
	bot         *discord.Bot
	httpServer  httpServer
	metricsStop func(context.Context) error
}

// New validates credentials, loads the roster and wires the Discord bot and
// ops HTTP server.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	if err := cfg.Discord.Validate(); err != nil {
		return nil, err
	}
	session, err := newSession(cfg.Discord.Token)
	if err != nil {
		return nil, err
	}
	return newServerWithSession(cfg, logger, session)
}

func newServerWithSession(cfg config.Config, logger *slog.Logger, session discord.Session) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)

	core, err := NewCore(cfg.DataPath, logger, recorder)
	if err != nil {
		return nil, err
	}
	bot := discord.NewBot(session, core.Router, core.Commands, logger, recorder)

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		core:        core,
		bot:         bot,
		metricsStop: metricsShutdown,
	}
	if cfg.HTTP.Enabled {
		s.httpServer = buildHTTPServer(cfg, core, bot, metricsHandler, logger, recorder)
	}
	return s, nil
}

func buildHTTPServer(cfg config.Config, core *Core, bot *discord.Bot, metricsHandler http.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(core.Store, logger, bot.Connected)
	router := httpserver.NewRouter(handler, metricsHandler, logger, recorder)

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	rec, handler, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// Run connects the bot and serves the ops endpoints until ctx is canceled or
// either component fails, then shuts everything down.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(func() error {
			logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
			if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				logging.Error(s.logger, "graceful shutdown failed", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		logging.Info(s.logger, "discord bot starting")
		return s.bot.Run(gctx)
	})

	err := g.Wait()
	logging.Info(s.logger, "shutdown signal received")
	s.stopMetrics()
	logging.Info(s.logger, "shutdown complete")
	return err
}

// RegisterCommands overwrites the slash commands for the configured application.
func (s *Server) RegisterCommands() error {
	_, err := s.bot.RegisterCommands(s.cfg.Discord.ApplicationID, s.cfg.Discord.GuildID)
	return err
}

func (s *Server) stopMetrics() {
	if s.metricsStop == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.metricsStop(shutdownCtx); err != nil {
		logging.Warn(s.logger, "metrics shutdown failed", "error", err)
	}
}

// Handler exposes the ops HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler()
}
