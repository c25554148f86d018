package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"slotcal/internal/common/clock"
	"slotcal/internal/common/uuid"
	"slotcal/internal/config"
	"slotcal/internal/handlers/httpapi"
	"slotcal/internal/notifier"
	sessionRepo "slotcal/internal/repositories/session"
	slotRepo "slotcal/internal/repositories/slot"
	bookingService "slotcal/internal/services/booking"
	messagingService "slotcal/internal/services/messaging"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
		SessionTTL:  cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatal("failed to create session repository", zap.Error(err))
	}

	slots, err := slotRepo.NewRedis(&slotRepo.Config{
		RedisClient: redisClient,
		SessionTTL:  cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatal("failed to create slot repository", zap.Error(err))
	}

	// Initialize services
	bookingSvc, err := bookingService.New(&bookingService.Config{
		SessionRepo:   sessions,
		SlotRepo:      slots,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("failed to create booking service", zap.Error(err))
	}

	messenger, err := messagingService.NewService(&messagingService.ServiceConfig{})
	if err != nil {
		logger.Fatal("failed to create messaging service", zap.Error(err))
	}

	// Optional Discord notification mirror
	var sinks []notifier.Sink
	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		discordSink, err := notifier.NewDiscord(&notifier.DiscordConfig{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		})
		if err != nil {
			logger.Fatal("failed to create Discord sink", zap.Error(err))
		}
		defer discordSink.Close()

		sinks = append(sinks, discordSink)
		logger.Info("Discord notification mirror enabled",
			zap.String("channel_id", cfg.DiscordChannelID))
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		BookingService: bookingSvc,
		Messenger:      messenger,
		Sinks:          sinks,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatal("failed to create HTTP handler", zap.Error(err))
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Routes(),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}

	logger.Info("server has been shut down")
}

// newLogger builds a production zap logger at the configured level
func newLogger(level string) *zap.Logger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
