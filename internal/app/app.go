// Package app wires configuration, storage, services and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/message"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/resource"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/setting"
	"github.com/feelhome/feelhome-backend/internal/auth"
	"github.com/feelhome/feelhome-backend/internal/config"
	"github.com/feelhome/feelhome-backend/internal/service/catalog"
	"github.com/feelhome/feelhome-backend/internal/service/inbox"
	"github.com/feelhome/feelhome-backend/internal/service/resolver"
	"github.com/feelhome/feelhome-backend/internal/service/settings"
	"github.com/feelhome/feelhome-backend/internal/transport/middleware"
	"github.com/feelhome/feelhome-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph and serves HTTP until the context
// is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	resourceRepo := resource.New(pool)
	settingRepo := setting.New(pool)
	messageRepo := message.New(pool)

	catalogSvc := catalog.NewService(logger, resourceRepo)
	settingsSvc := settings.NewService(logger, settingRepo)
	resolverSvc := resolver.NewService(logger, settingRepo, resourceRepo)
	inboxSvc := inbox.NewService(logger, messageRepo, txManager, cfg.Inbox.MaxMessageLength)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Resources: rest.NewResourcesHandler(catalogSvc, logger),
		Settings:  rest.NewSettingsHandler(settingsSvc, logger),
		Resolve:   rest.NewResolveHandler(resolverSvc, logger),
		Messages:  rest.NewMessagesHandler(inboxSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down",
			slog.Duration("timeout", cfg.Server.ShutdownTimeout),
		)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}
