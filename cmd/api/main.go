// Command api runs the railboard HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/internal/database"
	"github.com/railboard/railboard/internal/handler"
	"github.com/railboard/railboard/internal/logger"
	"github.com/railboard/railboard/internal/middleware"
	"github.com/railboard/railboard/internal/repository"
	"github.com/railboard/railboard/internal/router"
	"github.com/railboard/railboard/internal/server"
	"github.com/railboard/railboard/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg)

	if err := run(cfg, &log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, log *zerolog.Logger) error {
	ctx := context.Background()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return err
	}

	s, err := server.New(cfg, log)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(s)

	tokens := auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenLifetime)

	services, err := service.NewServices(s, repos, tokens)
	if err != nil {
		return err
	}

	middlewares := middleware.NewMiddlewares(s, tokens)
	handlers := handler.NewHandlers(s, services)

	e := router.New(middlewares, handlers)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
