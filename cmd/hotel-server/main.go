// cmd/hotel-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hotel-concierge/internal/availability"
	"hotel-concierge/internal/chat"
	"hotel-concierge/internal/common/config"
	"hotel-concierge/internal/common/database"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/observability"
	"hotel-concierge/internal/server"
	"hotel-concierge/internal/store"

	ra "hotel-concierge/internal/handlers/availability/room-availability"
	rd "hotel-concierge/internal/handlers/catalog/room-details"
	rn "hotel-concierge/internal/handlers/catalog/room-names"
	cm "hotel-concierge/internal/handlers/chat/chat-message"
	gc "hotel-concierge/internal/handlers/guest/guest-create"
	gd "hotel-concierge/internal/handlers/guest/guest-details"
	gl "hotel-concierge/internal/handlers/guest/guest-list"
)

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", "")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	zapLog.Info("Starting hotel server...", zap.String("environment", cfg.App.Environment))

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel exporter unavailable, continuing without it", zap.Error(err))
	}
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		if err = pg.Ping(ctx); err != nil {
			pg.Close()
			return err
		}
		return nil
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	if cfg.Database.Postgres.RunMigrations {
		version, err := database.RunMigrations(cfg.Database.Postgres.GetURL())
		if err != nil {
			zapLog.Fatal("migrations failed", zap.Error(err))
		}
		zapLog.Info("Schema migrated", zap.Uint("version", version))
	}

	readiness := map[string]server.Pinger{"postgres": pg}

	var cache *redis.Client
	if cfg.Database.Redis.Enabled {
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			if err = rc.Ping(ctx); err != nil {
				rc.Close()
				return err
			}
			return nil
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rc.Close()
		cache = rc.Client
		readiness["redis"] = rc
		zapLog.Info("Redis connected successfully")
	}

	catalog := store.NewCatalog(pg.DB, cache, config.GetDuration(cfg.Catalog.CacheTTL), log)
	bookings := store.NewBookings(pg.DB, log)
	guests := store.NewGuests(pg.DB, log)

	calc := availability.NewCalculator(catalog, bookings, log)
	go calc.Run(ctx, config.GetDuration(cfg.Availability.RefreshInterval))

	engine := chat.NewEngine(catalog, calc, cfg.Chat.Hotel, log)
	chatHandler, err := cm.NewHandler(cm.LoadConfig(cfg), engine, log)
	if err != nil {
		zapLog.Fatal("failed to create chat-message handler", zap.Error(err))
	}

	routes := server.Routes{
		RoomDetails:      rd.NewHandler(rd.LoadConfig(cfg), catalog, log),
		RoomNames:        rn.NewHandler(rn.LoadConfig(cfg), catalog, log),
		RoomAvailability: ra.NewHandler(ra.LoadConfig(cfg), calc, log),
		GuestCreate:      gc.NewHandler(gc.LoadConfig(cfg), guests, log),
		GuestDetails:     gd.NewHandler(gd.LoadConfig(cfg), guests, log),
		GuestList:        gl.NewHandler(gl.LoadConfig(cfg), guests, log),
		ChatMessage:      chatHandler,
	}

	srv := server.New(cfg.HTTP, routes, obs, readiness, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		zapLog.Info("Shutdown signal received, stopping server...")
	case err := <-errCh:
		if err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.HTTP.ShutdownTimeout))
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		zapLog.Error("Error stopping HTTP server", zap.Error(err))
	}

	zapLog.Info("Hotel server stopped gracefully")
}
