package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iliyamo/room-escape-reservation/internal/config"
	"github.com/iliyamo/room-escape-reservation/internal/database"
	"github.com/iliyamo/room-escape-reservation/internal/handler"
	"github.com/iliyamo/room-escape-reservation/internal/queue"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
	"github.com/iliyamo/room-escape-reservation/internal/router"
	"github.com/iliyamo/room-escape-reservation/internal/service"
)

func main() {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	// Redis is optional: without it the cache and rate limiter pass through.
	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		log.Warn("redis unavailable, cache and rate limiting disabled", zap.Error(err))
	} else {
		defer rdb.Close()
	}

	members := repository.NewMemberRepo(db)
	themes := repository.NewThemeRepo(db)
	times := repository.NewTimeRepo(db)
	reservations := repository.NewReservationRepo(db)

	publisher := queue.NewPublisher(cfg.RabbitMQURL, log.Named("queue"))
	reservationSvc := service.NewReservationService(reservations, times, members, themes, publisher, cfg.Location, log.Named("reservation"))
	timeSvc := service.NewTimeService(times, reservations)
	themeSvc := service.NewThemeService(themes)
	memberSvc := service.NewMemberService(members, service.TokenSettings{
		Secret: cfg.JWTSecret,
		TTLMin: cfg.AccessTTLMin,
	}, cfg.BcryptCost)
	if cfg.Admin.Email != "" {
		admin, created, err := memberSvc.EnsureAdmin(ctx, service.Signup{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		})
		switch {
		case err != nil:
			log.Warn("admin bootstrap skipped", zap.Error(err))
		case created:
			log.Info("admin member created", zap.Uint64("id", admin.ID), zap.String("email", admin.Email))
		}
	}

	e := router.New(router.Handlers{
		Reservations: handler.NewReservationHandler(reservationSvc),
		Times:        handler.NewTimeHandler(timeSvc),
		Themes:       handler.NewThemeHandler(themeSvc),
		Members:      handler.NewMemberHandler(memberSvc, cfg.Env == "prod"),
		Health:       handler.Health(db),
	}, router.Options{
		JWTSecret: cfg.JWTSecret,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Log:       log.Named("http"),
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("tz", cfg.Location.String()))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", zap.Error(err))
	}
}

// newLogger builds a production zap logger with ISO8601 timestamps.
func newLogger() *zap.Logger {
	zc := zap.NewProductionConfig()
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := zc.Build()
	if err != nil {
		panic(err)
	}
	return l
}
