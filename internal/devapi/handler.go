package devapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/devapi/apperror"
	"github.com/csg33k/hrms-lite/internal/domain"
)

type Handler struct {
	service     Service
	environment string
	logger      *zap.Logger
}

func NewHandler(service Service, environment string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("devapi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("devapi.handler")
	}
	return &Handler{service: service, environment: environment, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := apperror.Response(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.String("detail", body.Detail),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", append(fields, zap.Error(err))...)
	} else {
		h.logger.Warn("request failed", fields...)
	}
	c.AbortWithStatusJSON(status, body)
}

// pathUUID reads a uuid path parameter, writing a 422 when it is malformed.
func (h *Handler) pathUUID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeError(c, apperror.Validation(apperror.FieldError{
			Field:   apperror.Loc("path", name),
			Message: "Input should be a valid UUID",
			Type:    "uuid_parsing",
		}))
		return "", false
	}
	return id.String(), true
}

// queryParams collects typed query values and the first failure per key.
type queryParams struct {
	c    *gin.Context
	errs []apperror.FieldError
}

func (q *queryParams) intParam(name string, def int) int {
	raw, ok := q.c.GetQuery(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, apperror.FieldError{
			Field:   apperror.Loc("query", name),
			Message: "Input should be a valid integer, unable to parse string as an integer",
			Type:    "int_parsing",
		})
		return def
	}
	return n
}

func (q *queryParams) dateParam(name string) string {
	raw := q.c.Query(name)
	if raw == "" {
		return ""
	}
	if !domain.ValidDate(raw) {
		q.errs = append(q.errs, apperror.FieldError{
			Field:   apperror.Loc("query", name),
			Message: "Input should be a valid date or datetime",
			Type:    "date_from_datetime_parsing",
		})
	}
	return raw
}

func (q *queryParams) page() Page {
	return Page{Skip: q.intParam("skip", 0), Limit: q.intParam("limit", DefaultLimit)}
}

func (q *queryParams) failed(h *Handler) bool {
	if len(q.errs) == 0 {
		return false
	}
	h.writeError(q.c, apperror.Validation(q.errs...))
	return true
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Debug("request body rejected", zap.Error(err))
		h.writeError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if !h.bind(c, &req) {
		return
	}
	e, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	q := &queryParams{c: c}
	page := q.page()
	if q.failed(h) {
		return
	}
	out, err := h.service.ListEmployees(c.Request.Context(), page)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(out))
}

func (h *Handler) ListEmployeesWithStats(c *gin.Context) {
	out, err := h.service.ListEmployeesWithStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(out))
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := h.pathUUID(c, "employee_id")
	if !ok {
		return
	}
	e, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := h.pathUUID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateAttendance(c *gin.Context) {
	var req CreateAttendanceRequest
	if !h.bind(c, &req) {
		return
	}
	if id, err := uuid.Parse(req.EmployeeID); err == nil {
		req.EmployeeID = id.String()
	}
	a, err := h.service.CreateAttendance(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAttendance(c *gin.Context) {
	q := &queryParams{c: c}
	page := q.page()
	query := AttendanceQuery{
		Date:  q.dateParam("date_filter"),
		From:  q.dateParam("start_date"),
		To:    q.dateParam("end_date"),
		Skip:  page.Skip,
		Limit: page.Limit,
	}
	if q.failed(h) {
		return
	}
	out, err := h.service.ListAttendance(c.Request.Context(), query)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(out))
}

func (h *Handler) ListAttendanceByEmployee(c *gin.Context) {
	id, ok := h.pathUUID(c, "employee_id")
	if !ok {
		return
	}
	q := &queryParams{c: c}
	page := q.page()
	if q.failed(h) {
		return
	}
	out, err := h.service.ListAttendanceByEmployee(c.Request.Context(), id, page)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(out))
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Environment: h.environment})
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HRMS Lite API", "version": "1.0.0"})
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
