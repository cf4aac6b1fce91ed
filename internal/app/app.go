package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	assemblyrepo "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/assembly"
	catalogrepo "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/catalog"
	readingrepo "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/reading"
	userrepo "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/user"
	"github.com/amteixeira/uvtrack-backend/internal/auth"
	"github.com/amteixeira/uvtrack-backend/internal/config"
	assemblysvc "github.com/amteixeira/uvtrack-backend/internal/service/assembly"
	readingsvc "github.com/amteixeira/uvtrack-backend/internal/service/reading"
	statssvc "github.com/amteixeira/uvtrack-backend/internal/service/stats"
	usersvc "github.com/amteixeira/uvtrack-backend/internal/service/user"
	"github.com/amteixeira/uvtrack-backend/internal/transport/middleware"
	"github.com/amteixeira/uvtrack-backend/internal/transport/rest"
	"github.com/amteixeira/uvtrack-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services, and HTTP handlers, and serves
// until ctx is cancelled. Shutdown is graceful within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	assemblies := assemblyrepo.New(pool)
	catalog := catalogrepo.New(pool)
	readings := readingrepo.New(pool)
	users := userrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Auth primitives.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Services.
	assemblyService := assemblysvc.NewService(logger, assemblies, catalog, txManager)
	readingService := readingsvc.NewService(logger, readings, assemblies, txManager)
	statsService := statssvc.NewService(logger, readings, assemblies, users, cfg.Stats)
	userService := usersvc.NewService(logger, users, passwordHasher, jwtManager)

	// HTTP handlers.
	assemblyHandler := rest.NewAssemblyHandler(assemblyService, logger)
	readingHandler := rest.NewReadingHandler(readingService, logger)
	statsHandler := rest.NewStatsHandler(statsService, logger)
	userHandler := rest.NewUserHandler(userService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := routes(routeDeps{
		assembly: assemblyHandler,
		reading:  readingHandler,
		stats:    statsHandler,
		user:     userHandler,
		health:   healthHandler,
	})

	handler = middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(handler)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// migrateUp applies pending goose migrations from the embedded FS.
// Goose requires a *sql.DB, so a short-lived stdlib connection is used
// instead of the pgx pool.
func migrateUp(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
