// Package hrmsapi is the HTTP client for the HRMS REST backend.
// Every call attaches a JSON content type and shares one fixed timeout;
// nothing is retried. Failures are normalized into *Error.
package hrmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/contextutil"
	"github.com/csg33k/hrms-lite/internal/domain"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second

	apiPrefix = "/api"
)

type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

// WithHTTPClient sends requests through a copy of hc, keeping its
// transport, jar and redirect policy. The copy's Timeout is the client-wide
// timeout; hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("hrmsapi")
		}
	}
}

// New returns a client for the backend at baseURL. The /api prefix is
// appended here; callers pass the bare origin.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		timeout: timeout,
		http:    &http.Client{},
		logger:  zap.L().Named("hrmsapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = timeout
	return c
}

// BaseURL returns the resolved API root, including the /api prefix.
func (c *Client) BaseURL() string { return c.baseURL }

// ── Employees ─────────────────────────────────────────────────────────────────

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error) {
	var out []domain.EmployeeWithStats
	if err := c.do(ctx, http.MethodGet, "/employees/with-stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil, nil)
}

// ── Attendance ────────────────────────────────────────────────────────────────

// ListAttendance lists attendance records. The date_filter query parameter
// is only sent when f.Date is set.
func (c *Client) ListAttendance(ctx context.Context, f domain.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	var q url.Values
	if f.Date != "" {
		q = url.Values{"date_filter": {f.Date}}
	}
	var out []domain.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance/employee/"+url.PathEscape(employeeID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAttendance(ctx context.Context, in domain.NewAttendance) (*domain.AttendanceRecord, error) {
	var out domain.AttendanceRecord
	if err := c.do(ctx, http.MethodPost, "/attendance", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/attendance/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Transport ─────────────────────────────────────────────────────────────────

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: DefaultMessage, Err: err}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return &Error{Message: DefaultMessage, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set(contextutil.HeaderRequestID, rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return transportError(err, c.timeout)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err, c.timeout)
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, respBody)
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Message: DefaultMessage, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
