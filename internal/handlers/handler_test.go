package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/adapters/hrmsapi"
	"github.com/csg33k/hrms-lite/internal/adapters/session"
	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/handlers"
	"github.com/csg33k/hrms-lite/internal/ports/mock"
	"github.com/csg33k/hrms-lite/internal/ratelimit"
)

var (
	fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	ada      = domain.Employee{ID: "u1", EmployeeID: "EMP-1", FullName: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering"}
)

type testDeps struct {
	api    *mock.MockHRMSClient
	roster *mock.MockRosterReport
	export *mock.MockAttendanceExport
	srv    http.Handler
	cookie *http.Cookie
}

func setup(t *testing.T, opts ...handlers.Option) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		api:    mock.NewMockHRMSClient(ctrl),
		roster: mock.NewMockRosterReport(ctrl),
		export: mock.NewMockAttendanceExport(ctrl),
	}
	opts = append([]handlers.Option{handlers.WithClock(func() time.Time { return fixedNow })}, opts...)
	h := handlers.New(d.api, session.NewMemoryStore(time.Hour), d.roster, d.export, zap.NewNop(), opts...)
	d.srv = h.Routes()
	return d
}

// do sends the request with the session cookie of earlier requests.
func (d *testDeps) do(req *http.Request) *httptest.ResponseRecorder {
	if d.cookie != nil {
		req.AddCookie(d.cookie)
	}
	rec := httptest.NewRecorder()
	d.srv.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			d.cookie = c
		}
	}
	return rec
}

func form(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func TestDashboard(t *testing.T) {
	d := setup(t)

	rec := d.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-get="/dashboard/stats"`)

	t.Run("stats", func(t *testing.T) {
		d.api.EXPECT().GetDashboard(gomock.Any()).Return(&domain.DashboardStats{TotalEmployees: 4, PresentToday: 3, AbsentToday: 1}, nil)
		rec := d.do(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
		assert.Contains(t, rec.Body.String(), "Present Today")
		assert.Contains(t, rec.Body.String(), ">4<")
	})

	t.Run("error replaces stats", func(t *testing.T) {
		d.api.EXPECT().GetDashboard(gomock.Any()).Return(nil, &hrmsapi.Error{Message: "Network Error"})
		rec := d.do(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
		assert.Contains(t, rec.Body.String(), "Network Error")
		assert.NotContains(t, rec.Body.String(), "Total Employees")
	})
}

func TestEmployeesTable_KeepsLastGoodListOnError(t *testing.T) {
	d := setup(t)
	withStats := []domain.EmployeeWithStats{{Employee: ada, TotalPresentDays: 2}}

	d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).Return(withStats, nil)
	rec := d.do(httptest.NewRequest(http.MethodGet, "/employees/table", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	require.NotNil(t, d.cookie)

	d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).Return(nil, &hrmsapi.Error{Message: "Request failed with status code 500", StatusCode: 500})
	rec = d.do(httptest.NewRequest(http.MethodGet, "/employees/table", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "Request failed with status code 500")
	assert.Contains(t, body, "Ada Lovelace")
}

func TestEmployeesTable_ErrorWithoutHistoryIsEmpty(t *testing.T) {
	d := setup(t)
	d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	rec := d.do(httptest.NewRequest(http.MethodGet, "/employees/table", nil))
	assert.Contains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "No employees found")
}

func TestCreateEmployee(t *testing.T) {
	valid := url.Values{
		"employee_id": {" EMP-7 "},
		"full_name":   {"Grace Hopper"},
		"email":       {"grace@example.com"},
		"department":  {"Navy"},
	}

	t.Run("validation blocks the request", func(t *testing.T) {
		d := setup(t)
		// no EXPECT: any backend call fails the test
		rec := d.do(form(http.MethodPost, "/employees", url.Values{
			"employee_id": {"  "},
			"full_name":   {"Grace"},
			"email":       {"grace@nowhere"},
			"department":  {""},
		}))
		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "Employee ID is required")
		assert.Contains(t, body, "Invalid email format")
		assert.Contains(t, body, "Department is required")
		assert.Contains(t, body, `value="Grace"`)
		assert.Empty(t, rec.Header().Get("HX-Trigger"))
	})

	t.Run("success resets form and closes modal", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().CreateEmployee(gomock.Any(), domain.NewEmployee{
			EmployeeID: "EMP-7",
			FullName:   "Grace Hopper",
			Email:      "grace@example.com",
			Department: "Navy",
		}).Return(&domain.Employee{ID: "u7"}, nil)

		rec := d.do(form(http.MethodPost, "/employees", valid))
		assert.Equal(t, "employees-changed, close-modal", rec.Header().Get("HX-Trigger"))
		assert.NotContains(t, rec.Body.String(), "Grace Hopper")
		assert.Contains(t, rec.Body.String(), `id="employee-form"`)
	})

	t.Run("backend failure keeps values", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
			Return(nil, &hrmsapi.Error{Message: "Employee with ID 'EMP-7' already exists", StatusCode: 400})

		rec := d.do(form(http.MethodPost, "/employees", valid))
		body := rec.Body.String()
		assert.Contains(t, body, "Employee with ID &#39;EMP-7&#39; already exists")
		assert.Contains(t, body, `value="Grace Hopper"`)
		assert.Empty(t, rec.Header().Get("HX-Trigger"))
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("success refreshes table", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().DeleteEmployee(gomock.Any(), "u1").Return(nil)

		rec := d.do(httptest.NewRequest(http.MethodDelete, "/employees/u1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "employees-changed", rec.Header().Get("HX-Trigger"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("failure raises alert", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().DeleteEmployee(gomock.Any(), "u1").Return(&hrmsapi.Error{Message: "Employee not found", StatusCode: 404})

		rec := d.do(httptest.NewRequest(http.MethodDelete, "/employees/u1", nil))
		var trigger map[string]string
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger))
		assert.Equal(t, "Error deleting employee: Employee not found", trigger["hrms-alert"])
	})
}

func TestEmployeeDetail(t *testing.T) {
	d := setup(t)
	d.api.EXPECT().GetEmployee(gomock.Any(), "u1").Return(&ada, nil)
	d.api.EXPECT().ListAttendanceByEmployee(gomock.Any(), "u1").Return([]domain.AttendanceRecord{
		{ID: "a1", EmployeeID: "u1", Date: "2024-03-14", Status: domain.StatusPresent},
	}, nil)

	rec := d.do(httptest.NewRequest(http.MethodGet, "/employees/u1", nil))
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.Contains(t, rec.Body.String(), "Mar 14, 2024")

	d.api.EXPECT().GetEmployee(gomock.Any(), "nope").Return(nil, &hrmsapi.Error{Message: "Employee not found", StatusCode: 404})
	d.api.EXPECT().ListAttendanceByEmployee(gomock.Any(), "nope").Return(nil, nil).AnyTimes()

	rec = d.do(httptest.NewRequest(http.MethodGet, "/employees/nope", nil))
	assert.Contains(t, rec.Body.String(), "Employee not found")
}

func TestAttendanceView(t *testing.T) {
	d := setup(t)
	records := []domain.AttendanceRecord{
		{ID: "a1", EmployeeID: "u1", Date: "2024-01-01", Status: domain.StatusPresent},
		{ID: "a2", EmployeeID: "u2", Date: "2024-01-01", Status: domain.StatusAbsent},
	}

	d.api.EXPECT().ListAttendance(gomock.Any(), domain.AttendanceFilter{Date: "2024-01-01"}).Return(records, nil)
	d.api.EXPECT().ListEmployees(gomock.Any()).Return([]domain.Employee{ada}, nil)

	rec := d.do(httptest.NewRequest(http.MethodGet, "/attendance/view?date_filter=2024-01-01", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, domain.UnknownEmployee)
	assert.Contains(t, body, "Clear Filter")
	assert.Contains(t, body, `hx-swap-oob="true"`)

	t.Run("form select uses last fetched employees", func(t *testing.T) {
		rec := d.do(httptest.NewRequest(http.MethodGet, "/attendance", nil))
		assert.Contains(t, rec.Body.String(), `<option value="u1">Ada Lovelace (EMP-1)</option>`)
		assert.Contains(t, rec.Body.String(), `max="2024-03-15"`)
	})

	t.Run("failure keeps stale rows", func(t *testing.T) {
		d.api.EXPECT().ListAttendance(gomock.Any(), domain.AttendanceFilter{}).Return(nil, &hrmsapi.Error{Message: "timeout of 10000ms exceeded"})
		d.api.EXPECT().ListEmployees(gomock.Any()).Return([]domain.Employee{ada}, nil).AnyTimes()

		rec := d.do(httptest.NewRequest(http.MethodGet, "/attendance/view", nil))
		body := rec.Body.String()
		assert.Contains(t, body, "timeout of 10000ms exceeded")
		assert.Contains(t, body, "Ada Lovelace")
		assert.NotContains(t, body, "Clear Filter")
	})
}

func TestSessionPagesDoNotOverwriteEachOther(t *testing.T) {
	d := setup(t)
	d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotNil(t, d.cookie)
	withCookie := func(req *http.Request) *http.Request {
		req.AddCookie(d.cookie)
		return req
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).
		DoAndReturn(func(context.Context) ([]domain.EmployeeWithStats, error) {
			close(entered)
			<-release
			return []domain.EmployeeWithStats{{Employee: ada}}, nil
		})
	d.api.EXPECT().ListAttendance(gomock.Any(), domain.AttendanceFilter{}).Return(nil, nil)
	d.api.EXPECT().ListEmployees(gomock.Any()).Return([]domain.Employee{ada}, nil)

	tableDone := make(chan *httptest.ResponseRecorder)
	go func() {
		rec := httptest.NewRecorder()
		d.srv.ServeHTTP(rec, withCookie(httptest.NewRequest(http.MethodGet, "/employees/table", nil)))
		tableDone <- rec
	}()
	<-entered

	// The attendance save lands while the employees table is still in flight.
	view := httptest.NewRecorder()
	d.srv.ServeHTTP(view, withCookie(httptest.NewRequest(http.MethodGet, "/attendance/view", nil)))
	require.Equal(t, http.StatusOK, view.Code)

	close(release)
	table := <-tableDone
	assert.Contains(t, table.Body.String(), "Ada Lovelace")

	page := httptest.NewRecorder()
	d.srv.ServeHTTP(page, withCookie(httptest.NewRequest(http.MethodGet, "/attendance", nil)))
	assert.Contains(t, page.Body.String(), `<option value="u1">Ada Lovelace (EMP-1)</option>`)
}

func TestCreateAttendance(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		d := setup(t)
		rec := d.do(form(http.MethodPost, "/attendance", url.Values{"date": {""}, "status": {"Present"}}))
		body := rec.Body.String()
		assert.Contains(t, body, "Please select an employee")
		assert.Contains(t, body, "Date is required")
	})

	t.Run("future date", func(t *testing.T) {
		d := setup(t)
		rec := d.do(form(http.MethodPost, "/attendance", url.Values{"employee_id": {"u1"}, "date": {"2024-03-16"}}))
		assert.Contains(t, rec.Body.String(), "Date cannot be in the future")
	})

	t.Run("success resets date and status", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().CreateAttendance(gomock.Any(), domain.NewAttendance{
			EmployeeID: "u1",
			Date:       "2024-03-01",
			Status:     domain.StatusAbsent,
		}).Return(&domain.AttendanceRecord{ID: "a9"}, nil)

		rec := d.do(form(http.MethodPost, "/attendance", url.Values{
			"employee_id": {"u1"},
			"date":        {"2024-03-01"},
			"status":      {"Absent"},
		}))
		body := rec.Body.String()
		assert.Equal(t, "attendance-changed, close-modal", rec.Header().Get("HX-Trigger"))
		assert.Contains(t, body, `value="2024-03-15"`)
		assert.Contains(t, body, `value="Present" checked`)
	})

	t.Run("backend failure", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().CreateAttendance(gomock.Any(), gomock.Any()).
			Return(nil, &hrmsapi.Error{Message: "Attendance for employee on 2024-03-01 already exists", StatusCode: 400})

		rec := d.do(form(http.MethodPost, "/attendance", url.Values{"employee_id": {"u1"}, "date": {"2024-03-01"}}))
		assert.Contains(t, rec.Body.String(), "Attendance for employee on 2024-03-01 already exists")
		assert.Contains(t, rec.Body.String(), `value="2024-03-01"`)
	})
}

func TestExports(t *testing.T) {
	t.Run("roster pdf", func(t *testing.T) {
		d := setup(t)
		list := []domain.EmployeeWithStats{{Employee: ada}}
		d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).Return(list, nil)
		d.roster.EXPECT().Generate(gomock.Any(), list, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []domain.EmployeeWithStats, w io.Writer) error {
				_, err := w.Write([]byte("%PDF-1.3"))
				return err
			})

		rec := d.do(httptest.NewRequest(http.MethodGet, "/employees/report.pdf", nil))
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "employee_roster_20240315.pdf")
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("roster backend failure", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().ListEmployeesWithStats(gomock.Any()).Return(nil, &hrmsapi.Error{Message: "Network Error"})

		rec := d.do(httptest.NewRequest(http.MethodGet, "/employees/report.pdf", nil))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("attendance xlsx", func(t *testing.T) {
		d := setup(t)
		d.api.EXPECT().ListAttendance(gomock.Any(), domain.AttendanceFilter{Date: "2024-03-01"}).Return(nil, nil)
		d.api.EXPECT().ListEmployees(gomock.Any()).Return(nil, nil)
		d.export.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.export.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		rec := d.do(httptest.NewRequest(http.MethodGet, "/attendance/export.xlsx?date_filter=2024-03-01", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_2024-03-01.xlsx")
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("request id is echoed or issued", func(t *testing.T) {
		d := setup(t)
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "rid-123")
		rec := d.do(req)
		assert.Equal(t, "rid-123", rec.Header().Get("X-Request-ID"))

		rec = d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("session cookie issued once", func(t *testing.T) {
		d := setup(t)
		rec := d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Len(t, rec.Result().Cookies(), 1)

		rec = d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("mutations are rate limited", func(t *testing.T) {
		d := setup(t, handlers.WithRateLimit(0, 1))
		d.api.EXPECT().DeleteEmployee(gomock.Any(), "u1").Return(nil)

		rec := d.do(httptest.NewRequest(http.MethodDelete, "/employees/u1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		rec = d.do(httptest.NewRequest(http.MethodDelete, "/employees/u1", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		// reads are never limited
		rec = d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forwarded-for from an untrusted peer is ignored", func(t *testing.T) {
		d := setup(t, handlers.WithRateLimit(0, 1))
		d.api.EXPECT().DeleteEmployee(gomock.Any(), "u1").Return(nil)

		for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest(http.MethodDelete, "/employees/u1", nil)
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
			assert.Equal(t, want, d.do(req).Code)
		}
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		proxies, err := ratelimit.ParseTrustedProxies([]string{"192.0.2.0/24"})
		require.NoError(t, err)
		d := setup(t, handlers.WithRateLimit(0, 1), handlers.WithTrustedProxies(proxies))
		d.api.EXPECT().DeleteEmployee(gomock.Any(), "u1").Return(nil).Times(2)

		for i := range 2 {
			req := httptest.NewRequest(http.MethodDelete, "/employees/u1", nil)
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
			assert.Equal(t, http.StatusOK, d.do(req).Code)
		}
	})
}

func TestHealth(t *testing.T) {
	d := setup(t, handlers.WithEnvironment("production"))
	rec := d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "healthy", "environment": "production"}, body)
}
