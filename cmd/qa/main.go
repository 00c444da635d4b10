package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/go-qa/internal/config"
	"github.com/deppfellow/go-qa/internal/database"
	"github.com/deppfellow/go-qa/internal/handler"
	"github.com/deppfellow/go-qa/internal/logger"
	"github.com/deppfellow/go-qa/internal/repository"
	"github.com/deppfellow/go-qa/internal/router"
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/deppfellow/go-qa/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qa",
		Short:         "Question and answer API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLogger(func(cfg *config.Config, log *zerolog.Logger, ls *logger.LoggerService) error {
				if migrate {
					if err := database.Migrate(cmd.Context(), log, cfg); err != nil {
						log.Error().Err(err).Msg("failed to migrate database")
						return err
					}
				}
				return serve(cmd.Context(), cfg, log, ls)
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLogger(func(cfg *config.Config, log *zerolog.Logger, _ *logger.LoggerService) error {
				if err := database.Migrate(cmd.Context(), log, cfg); err != nil {
					log.Error().Err(err).Msg("failed to migrate database")
					return err
				}
				return nil
			})
		},
	}
}

// withLogger loads the config, sets up logging and New Relic, and runs fn.
func withLogger(fn func(cfg *config.Config, log *zerolog.Logger, ls *logger.LoggerService) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Error().Err(err).Msg("failed to load config")
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return fn(cfg, &log, loggerService)
}

func serve(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
