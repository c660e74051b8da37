package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/gctu/attendance-api/internal/api"
	"github.com/gctu/attendance-api/internal/api/handler"
	"github.com/gctu/attendance-api/internal/core/ports"
	"github.com/gctu/attendance-api/internal/core/service"
	"github.com/gctu/attendance-api/internal/infrastructure/config"
	"github.com/gctu/attendance-api/internal/infrastructure/db/memory"
	"github.com/gctu/attendance-api/internal/infrastructure/db/mongo"
	"github.com/gctu/attendance-api/internal/infrastructure/db/redis"
	"github.com/gctu/attendance-api/internal/infrastructure/queue"
	"github.com/gctu/attendance-api/pkg/logger"
)

const (
	serviceName     = "attendance-api"
	importWorkers   = 8
	shutdownTimeout = 5 * time.Second
)

// @title                       Attendance API
// @version                     1.0
// @description                 Role-based attendance backend for students, lecturers, examiners and administrators.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Configuration ---
	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{Service: serviceName})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("store", cfg.Store.Driver).
		Msg("starting attendance api")

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, logins will fail until it is configured")
	}
	if cfg.Auth.LegacyDefaults {
		log.Warn().Msg("legacy default passwords are enabled")
	}

	checks := make(map[string]handler.Check)

	// --- Stores ---
	var (
		users  ports.UserRepository
		ledger ports.AttendanceRepository
	)
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer disconnectMongo(client, log)

		if err := mongo.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare mongodb schema")
		}
		users = mongo.NewUserRepository(db, cfg.Store.Timeout)
		ledger = mongo.NewAttendanceRepository(db, cfg.Store.Timeout)
		checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	default:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		users = memory.NewUserRepository()
		ledger = memory.NewAttendanceRepository()
	}

	// --- Login throttle (optional) ---
	var throttle ports.LoginThrottle
	if rdb := connectRedis(ctx, cfg, log); rdb != nil {
		defer rdb.Close()
		throttle = redis.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Lockout)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// --- Services ---
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)

	var adminHash string
	if cfg.Auth.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD is not set, the admin account cannot log in with a stored password")
	} else if adminHash, err = hasher.Hash(cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	legacy := service.LegacyPasswords(cfg.Auth.LegacyDefaults)
	dir := service.NewDirectory(users, adminHash)
	tokens := service.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(dir, users, hasher, tokens, throttle, legacy, log)
	userService := service.NewUserService(dir, users, hasher, legacy, log)
	dashboardService := service.NewDashboardService(ledger, log)
	attendanceService := service.NewAttendanceService(dir, ledger, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Users:      userService,
		Dashboards: dashboardService,
		Attendance: attendanceService,
		Importer:   queue.NewImportDispatcher(importWorkers, userService, log),
		Checks:     checks,
		Log:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
	log.Info().Msg("server stopped")
}

// connectRedis returns nil when the throttle is disabled or Redis is
// unreachable. Logins keep working without it.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *goredis.Client {
	rc := redis.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if !rc.Enabled() {
		log.Info().Msg("no redis configured, login throttling disabled")
		return nil
	}
	rdb, err := redis.Connect(ctx, rc, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		return nil
	}
	return rdb
}

func disconnectMongo(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect error")
	}
}
