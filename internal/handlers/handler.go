package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/csg33k/hrms-lite/internal/adapters/hrmsapi"
	"github.com/csg33k/hrms-lite/internal/contextutil"
	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/pages"
	"github.com/csg33k/hrms-lite/internal/ports"
	"github.com/csg33k/hrms-lite/internal/ratelimit"
	"github.com/csg33k/hrms-lite/internal/templates"
	"github.com/csg33k/hrms-lite/internal/validation"
)

// htmx events raised through the HX-Trigger response header.
const (
	eventEmployeesChanged  = "employees-changed"
	eventAttendanceChanged = "attendance-changed"
	eventCloseModal        = "close-modal"
	eventAlert             = "hrms-alert"
)

type Handler struct {
	api      ports.HRMSClient
	sessions ports.SessionStore
	roster   ports.RosterReport
	export   ports.AttendanceExport
	validate *validation.Validator
	limiter  *ratelimit.IPRateLimiter
	proxies  *ratelimit.TrustedProxies
	log      *zap.Logger
	now      func() time.Time
	env      string
}

type Option func(*Handler)

// WithClock replaces time.Now, which decides "today" for forms and filenames.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithRateLimit throttles POST and DELETE to rps per client IP.
func WithRateLimit(rps float64, burst int) Option {
	return func(h *Handler) { h.limiter = ratelimit.New(rate.Limit(rps), burst) }
}

// WithTrustedProxies lets the listed proxies supply the client IP through
// X-Forwarded-For. Without it the peer address is the client.
func WithTrustedProxies(p *ratelimit.TrustedProxies) Option {
	return func(h *Handler) { h.proxies = p }
}

// WithEnvironment is reported by /healthz.
func WithEnvironment(env string) Option {
	return func(h *Handler) { h.env = env }
}

func New(api ports.HRMSClient, sessions ports.SessionStore, roster ports.RosterReport, export ports.AttendanceExport, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		api:      api,
		sessions: sessions,
		roster:   roster,
		export:   export,
		log:      log.Named("handlers"),
		now:      time.Now,
		env:      "development",
	}
	for _, o := range opts {
		o(h)
	}
	h.validate = validation.New(h.now)
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.dashboard)
	mux.HandleFunc("GET /dashboard/stats", h.dashboardStats)
	mux.HandleFunc("GET /employees", h.employeesPage)
	mux.HandleFunc("GET /employees/table", h.employeesTable)
	mux.HandleFunc("GET /employees/report.pdf", h.rosterPDF)
	mux.HandleFunc("GET /employees/{id}", h.employeeDetail)
	mux.HandleFunc("POST /employees", h.createEmployee)
	mux.HandleFunc("DELETE /employees/{id}", h.deleteEmployee)
	mux.HandleFunc("GET /attendance", h.attendancePage)
	mux.HandleFunc("GET /attendance/view", h.attendanceView)
	mux.HandleFunc("GET /attendance/export.xlsx", h.exportAttendance)
	mux.HandleFunc("POST /attendance", h.createAttendance)
	mux.HandleFunc("GET /healthz", h.health)
	return chain(mux, h.recoverer, h.requestID, h.accessLog, h.session, h.rateLimit)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.Dashboard())
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.api.GetDashboard(r.Context())
	v := pages.DashboardView{Stats: stats}
	if err != nil {
		h.apiFailure(r, "get dashboard", err)
		v = pages.DashboardView{Error: hrmsapi.Message(err)}
	}
	h.render(w, r, templates.DashboardStats(v))
}

func (h *Handler) employeesPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.Employees(pages.NewEmployeeFormView()))
}

// employeesTable re-fetches the list. On failure the last good list for this
// session is shown under the error.
func (h *Handler) employeesTable(w http.ResponseWriter, r *http.Request) {
	list, err := h.api.ListEmployeesWithStats(r.Context())
	if err != nil {
		h.apiFailure(r, "list employees", err)
		st, ok := h.loadEmployees(w, r)
		if !ok {
			return
		}
		h.render(w, r, templates.EmployeesTable(pages.EmployeesView{
			Employees: st.Employees,
			Error:     hrmsapi.Message(err),
		}))
		return
	}
	h.saveEmployees(r, &domain.EmployeesPageState{Employees: list})
	h.render(w, r, templates.EmployeesTable(pages.EmployeesView{Employees: list}))
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := validation.EmployeeForm{
		EmployeeID: r.PostFormValue("employee_id"),
		FullName:   r.PostFormValue("full_name"),
		Email:      r.PostFormValue("email"),
		Department: r.PostFormValue("department"),
	}
	if errs := h.validate.Employee(form); errs != nil {
		h.render(w, r, templates.EmployeeForm(pages.EmployeeFormView{Form: form, Errors: errs}))
		return
	}
	if _, err := h.api.CreateEmployee(r.Context(), form.ToNewEmployee()); err != nil {
		h.apiFailure(r, "create employee", err)
		h.render(w, r, templates.EmployeeForm(pages.EmployeeFormView{
			Form:   form,
			Errors: validation.FieldErrors{validation.SubmitKey: hrmsapi.Message(err)},
		}))
		return
	}
	w.Header().Set("HX-Trigger", eventEmployeesChanged+", "+eventCloseModal)
	h.render(w, r, templates.EmployeeForm(pages.NewEmployeeFormView()))
}

// deleteEmployee swaps nothing. Success asks the table to re-fetch; failure
// raises a blocking alert.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.api.DeleteEmployee(r.Context(), id); err != nil {
		h.apiFailure(r, "delete employee", err, zap.String("employee", id))
		h.alert(w, pages.DeleteFailure(hrmsapi.Message(err)))
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("HX-Trigger", eventEmployeesChanged)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) employeeDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, err := pages.FetchEmployeeDetail(r.Context(), h.api, id)
	if err != nil {
		h.apiFailure(r, "get employee detail", err, zap.String("employee", id))
		v = pages.EmployeeDetailView{Error: hrmsapi.Message(err)}
	}
	h.render(w, r, templates.EmployeeDetail(v))
}

func (h *Handler) rosterPDF(w http.ResponseWriter, r *http.Request) {
	list, err := h.api.ListEmployeesWithStats(r.Context())
	if err != nil {
		h.apiFailure(r, "list employees", err)
		http.Error(w, hrmsapi.Message(err), http.StatusBadGateway)
		return
	}
	var buf bytes.Buffer
	if err := h.roster.Generate(r.Context(), list, &buf); err != nil {
		h.log.Error("generate roster", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("employee_roster_%s.pdf", h.now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) attendancePage(w http.ResponseWriter, r *http.Request) {
	st, ok := h.loadAttendance(w, r)
	if !ok {
		return
	}
	h.render(w, r, templates.Attendance(pages.NewAttendanceFormView(st.Employees, h.now())))
}

// attendanceView fetches records and employees together. On failure the
// last good records stay on screen under the error, with the requested
// filter kept in the date input.
func (h *Handler) attendanceView(w http.ResponseWriter, r *http.Request) {
	filter := domain.AttendanceFilter{Date: r.URL.Query().Get("date_filter")}
	today := h.validate.Today()

	fetched, err := pages.FetchAttendance(r.Context(), h.api, filter)
	if err != nil {
		h.apiFailure(r, "list attendance", err, zap.String("date_filter", filter.Date))
		st, ok := h.loadAttendance(w, r)
		if !ok {
			return
		}
		v := pages.NewAttendanceView(*st, today)
		v.DateFilter = filter.Date
		v.Error = hrmsapi.Message(err)
		h.render(w, r, templates.AttendanceView(v))
		return
	}
	h.saveAttendance(r, &fetched)
	h.render(w, r, templates.AttendanceView(pages.NewAttendanceView(fetched, today)))
}

func (h *Handler) createAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st, ok := h.loadAttendance(w, r)
	if !ok {
		return
	}
	form := validation.AttendanceForm{
		EmployeeID: r.PostFormValue("employee_id"),
		Date:       r.PostFormValue("date"),
		Status:     domain.AttendanceStatus(r.PostFormValue("status")),
	}
	view := pages.AttendanceFormView{
		Form:      form,
		Employees: st.Employees,
		Today:     h.validate.Today(),
	}
	if errs := h.validate.Attendance(&view.Form); errs != nil {
		view.Errors = errs
		h.render(w, r, templates.AttendanceForm(view))
		return
	}
	if _, err := h.api.CreateAttendance(r.Context(), view.Form.ToNewAttendance()); err != nil {
		h.apiFailure(r, "create attendance", err)
		view.Errors = validation.FieldErrors{validation.SubmitKey: hrmsapi.Message(err)}
		h.render(w, r, templates.AttendanceForm(view))
		return
	}
	w.Header().Set("HX-Trigger", eventAttendanceChanged+", "+eventCloseModal)
	h.render(w, r, templates.AttendanceForm(pages.NewAttendanceFormView(st.Employees, h.now())))
}

func (h *Handler) exportAttendance(w http.ResponseWriter, r *http.Request) {
	filter := domain.AttendanceFilter{Date: r.URL.Query().Get("date_filter")}
	fetched, err := pages.FetchAttendance(r.Context(), h.api, filter)
	if err != nil {
		h.apiFailure(r, "list attendance", err, zap.String("date_filter", filter.Date))
		http.Error(w, hrmsapi.Message(err), http.StatusBadGateway)
		return
	}
	var buf bytes.Buffer
	if err := h.export.Generate(r.Context(), fetched.Records, fetched.Employees, &buf); err != nil {
		h.log.Error("generate attendance export", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	suffix := "all"
	if filter.Date != "" {
		suffix = filter.Date
	}
	w.Header().Set("Content-Type", h.export.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%s.xlsx"`, suffix))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":      "healthy",
		"environment": h.env,
	})
}

// render writes a templ component to the response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("render", zap.Error(err), zap.String("path", r.URL.Path))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// alert raises a blocking browser alert through the hrms-alert event.
func (h *Handler) alert(w http.ResponseWriter, msg string) {
	b, err := json.Marshal(map[string]string{eventAlert: msg})
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}

// Each page loads and saves only its own section of the session, so
// concurrent requests from different pages cannot overwrite each other.

func (h *Handler) loadEmployees(w http.ResponseWriter, r *http.Request) (*domain.EmployeesPageState, bool) {
	st, err := h.sessions.LoadEmployees(r.Context(), contextutil.GetSessionID(r.Context()))
	return st, h.sessionLoaded(w, err)
}

func (h *Handler) loadAttendance(w http.ResponseWriter, r *http.Request) (*domain.AttendancePageState, bool) {
	st, err := h.sessions.LoadAttendance(r.Context(), contextutil.GetSessionID(r.Context()))
	return st, h.sessionLoaded(w, err)
}

func (h *Handler) sessionLoaded(w http.ResponseWriter, err error) bool {
	if err != nil {
		h.log.Error("load session", zap.Error(err))
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return false
	}
	return true
}

// Save failures are logged only; the response already has fresh data.

func (h *Handler) saveEmployees(r *http.Request, st *domain.EmployeesPageState) {
	if err := h.sessions.SaveEmployees(r.Context(), contextutil.GetSessionID(r.Context()), st); err != nil {
		h.log.Error("save session", zap.Error(err))
	}
}

func (h *Handler) saveAttendance(r *http.Request, st *domain.AttendancePageState) {
	if err := h.sessions.SaveAttendance(r.Context(), contextutil.GetSessionID(r.Context()), st); err != nil {
		h.log.Error("save session", zap.Error(err))
	}
}

func (h *Handler) apiFailure(r *http.Request, op string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("op", op),
		zap.Error(err),
		zap.String("request_id", contextutil.GetRequestID(r.Context())),
	)
	h.log.Warn("backend call failed", fields...)
}
