package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/adapters/hrmsapi"
	"github.com/csg33k/hrms-lite/internal/adapters/pdf"
	"github.com/csg33k/hrms-lite/internal/adapters/session"
	"github.com/csg33k/hrms-lite/internal/adapters/xlsx"
	"github.com/csg33k/hrms-lite/internal/bootstrap"
	"github.com/csg33k/hrms-lite/internal/config"
	"github.com/csg33k/hrms-lite/internal/handlers"
	"github.com/csg33k/hrms-lite/internal/ports"
	"github.com/csg33k/hrms-lite/internal/ratelimit"
)

func main() {
	cfg := config.Load()
	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	proxies, err := ratelimit.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}

	sessions := sessionStore(cfg, logger)
	api := hrmsapi.New(cfg.APIURL, cfg.APITimeout, hrmsapi.WithLogger(logger))

	h := handlers.New(api, sessions, pdf.New(), xlsx.New(), logger,
		handlers.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		handlers.WithTrustedProxies(proxies),
		handlers.WithEnvironment(cfg.AppEnv),
	)

	logger.Info("HRMS Lite",
		zap.String("api_url", cfg.APIURL),
		zap.String("environment", cfg.AppEnv),
	)
	bootstrap.StartHTTPServer(h.Routes(), bootstrap.DefaultServerConfig("hrms-lite", cfg.Port))
}

func sessionStore(cfg config.Config, logger *zap.Logger) ports.SessionStore {
	if cfg.RedisAddr == "" {
		logger.Info("sessions kept in memory", zap.Duration("ttl", cfg.SessionTTL))
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	rdb, err := session.Connect(ctx, cfg.RedisAddr, 5, 2*time.Second)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	logger.Info("sessions kept in redis", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SessionTTL))
	return session.NewRedisStore(rdb, cfg.SessionTTL)
}
