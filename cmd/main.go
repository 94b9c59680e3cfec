package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/oz/live-bootcamp-project/config"
	"github.com/oz/live-bootcamp-project/db"
	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/oz/live-bootcamp-project/internal/auth/handler"
	"github.com/oz/live-bootcamp-project/internal/auth/hash"
	"github.com/oz/live-bootcamp-project/internal/auth/repository/memory"
	pgrepo "github.com/oz/live-bootcamp-project/internal/auth/repository/postgres"
	redisrepo "github.com/oz/live-bootcamp-project/internal/auth/repository/redis"
	"github.com/oz/live-bootcamp-project/internal/auth/service"
	"github.com/oz/live-bootcamp-project/internal/email"
	"github.com/oz/live-bootcamp-project/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer pool.Close()

	hasher := hash.New(hash.Params{
		Time:        cfg.Hash.Time,
		MemoryKiB:   cfg.Hash.MemoryKiB,
		Parallelism: cfg.Hash.Parallelism,
	}, cfg.Hash.Workers)

	userStore := pgrepo.NewUserStore(pool, hasher)
	bannedTokenStore, twoFACodeStore := buildTokenStores(ctx, cfg, logger)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL(), bannedTokenStore)
	authService := service.NewAuthService(
		userStore,
		twoFACodeStore,
		bannedTokenStore,
		tokenService,
		email.NewLogClient(logger),
		logger,
	)
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL())

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	go func() {
		logger.Info("starting server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	logger.Info("shutdown complete")
}

// buildTokenStores selects the banned-token and 2FA code backends: redis
// when configured, in-memory otherwise.
func buildTokenStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (domain.BannedTokenStore, domain.TwoFACodeStore) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, using in-memory token stores")
		return memory.NewBannedTokenStore(cfg.TokenTTL()), memory.NewTwoFACodeStore(cfg.TwoFATTL())
	}

	client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}

	return redisrepo.NewBannedTokenStore(client, cfg.TokenTTL()), redisrepo.NewTwoFACodeStore(client, cfg.TwoFATTL())
}
