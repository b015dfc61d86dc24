package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-backoffice/internal/db"
	"github.com/BruksfildServices01/salon-backoffice/internal/logger"
	"github.com/BruksfildServices01/salon-backoffice/internal/media"
	"github.com/BruksfildServices01/salon-backoffice/internal/metrics"
	"github.com/BruksfildServices01/salon-backoffice/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "changeme" {
			log.Fatal("JWT_SECRET must be set in production")
		}
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := dbpkg.SeedAdmin(db, log, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("failed to seed admin", zap.Error(err))
	}

	// ======================================================
	// Token blacklist: Redis when configured, memory otherwise
	// ======================================================
	var (
		rdb       *redis.Client
		blacklist auth.Blacklist
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal("failed to connect redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		blacklist = auth.NewRedisBlacklist(rdb)
		defer rdb.Close()
	} else {
		log.Warn("REDIS_ADDR not set, revoked tokens are kept in memory")
		blacklist = auth.NewMemoryBlacklist()
	}

	resolver, err := media.NewResolver(cfg.Media, log)
	if err != nil {
		log.Fatal("failed to configure media", zap.Error(err))
	}

	m := metrics.New()

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	auditDispatcher.OnDrop = m.AuditDropped

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Issuer:    auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Blacklist: blacklist,
		Redis:     rdb,
		Media:     resolver,
		Metrics:   m,
		Audit:     auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
