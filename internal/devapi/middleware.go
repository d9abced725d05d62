package devapi

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/contextutil"
	"github.com/csg33k/hrms-lite/internal/devapi/apperror"
	"github.com/csg33k/hrms-lite/internal/ratelimit"
)

const requestIDKey = "request_id"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(contextutil.HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set(requestIDKey, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(contextutil.HeaderRequestID, rid)
		c.Next()
	}
}

func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

// RateLimitByIP throttles a route group per client address.
func RateLimitByIP(limiter *ratelimit.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			status, body := apperror.Response(apperror.TooManyRequests())
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Next()
	}
}

// Recovery turns a panic into the generic 500 body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic serving request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		status, body := apperror.Response(apperror.Internal(fmt.Errorf("panic: %v", recovered)))
		c.AbortWithStatusJSON(status, body)
	})
}
