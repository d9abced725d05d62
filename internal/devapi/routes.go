package devapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/ratelimit"
)

// NewRouter builds the JSON API. Mutating routes share limiter, keyed by
// client IP. X-Forwarded-For is honored only from trustedProxies.
func NewRouter(handler *Handler, limiter *ratelimit.IPRateLimiter, trustedProxies []string, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(RequestID(), AccessLog(logger.Named("devapi.http")), Recovery(logger))

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)

	throttle := RateLimitByIP(limiter)
	api := r.Group("/api")

	employees := api.Group("/employees")
	{
		employees.GET("", handler.ListEmployees)
		employees.GET("/with-stats", handler.ListEmployeesWithStats)
		employees.GET("/:employee_id", handler.GetEmployee)
		employees.POST("", throttle, handler.CreateEmployee)
		employees.DELETE("/:employee_id", throttle, handler.DeleteEmployee)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", handler.ListAttendance)
		attendance.GET("/dashboard", handler.Dashboard)
		attendance.GET("/employee/:employee_id", handler.ListAttendanceByEmployee)
		attendance.POST("", throttle, handler.CreateAttendance)
	}

	return r, nil
}
