package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/config"
	"github.com/rtlite/movieworld/internal/app"
	"github.com/rtlite/movieworld/internal/cache"
	"github.com/rtlite/movieworld/internal/handler"
	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/mq"
)

const maxOpenConns = 10

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	if err := db.AutoMigrate(&model.User{}, &model.NewsSuggestion{}, &model.Order{}); err != nil {
		// the API degrades to 503s on store errors rather than refusing to start
		logger.Warn("auto-migration failed, continuing without it", zap.Error(err))
	}

	var redisCache *cache.RedisCache
	if cfg.CacheURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.CacheURL)
		if err != nil || redisCache.Ping() != nil {
			logger.Warn("cache unavailable, continuing without it", zap.String("url", cfg.CacheURL))
			redisCache = nil
		}
	}

	mqConn := connectMQ(cfg.MQURL, logger)

	application, err := app.New(cfg, db, redisCache, mqConn, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.Init(); err != nil {
		logger.Warn("message queue init failed, continuing without it", zap.Error(err))
	}

	api := &handler.API{
		Account:   handler.NewAccountHandler(application.AccountService),
		News:      handler.NewNewsHandler(application.NewsService),
		Order:     handler.NewOrderHandler(application.OrderService),
		Health:    handler.NewHealthHandler(db),
		Feed:      handler.NewFeedHandler(application.NewsFeed, application.Geocoder),
		StaticDir: cfg.StaticDir,
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func connectMQ(url string, logger *zap.Logger) *amqp.Connection {
	if url == "" {
		return nil
	}
	conn, err := mq.NewMQConn(url)
	if err != nil {
		logger.Warn("message queue unavailable, continuing without it", zap.Error(err))
		return nil
	}
	return conn
}
