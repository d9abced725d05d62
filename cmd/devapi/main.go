package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/csg33k/hrms-lite/internal/bootstrap"
	"github.com/csg33k/hrms-lite/internal/config"
	"github.com/csg33k/hrms-lite/internal/devapi"
	"github.com/csg33k/hrms-lite/internal/devapi/apperror"
	sqliteadapter "github.com/csg33k/hrms-lite/internal/devapi/sqlite"
	"github.com/csg33k/hrms-lite/internal/ratelimit"
)

func main() {
	cfg := config.Load()
	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.Migrate(ctx); err != nil {
		cancel()
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	cancel()

	svc := devapi.NewService(repo, devapi.WithServiceLogger(logger))
	h := devapi.NewHandler(svc, cfg.AppEnv, logger)
	limiter := ratelimit.New(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	router, err := devapi.NewRouter(h, limiter, cfg.TrustedProxies, logger)
	if err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}

	logger.Info("database ready", zap.String("path", cfg.DBPath))
	bootstrap.StartHTTPServer(router, bootstrap.DefaultServerConfig("devapi", cfg.DevAPIPort))
}
