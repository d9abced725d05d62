package devapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csg33k/hrms-lite/internal/devapi/apperror"
	"github.com/csg33k/hrms-lite/internal/domain"
)

type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, page Page) ([]domain.Employee, error)
	ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error)
	DeleteEmployee(ctx context.Context, id string) error

	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, q AttendanceQuery) ([]domain.AttendanceRecord, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID string, page Page) ([]domain.AttendanceRecord, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

type ServiceOption func(*service)

// WithClock fixes "today" for the future-date rule and dashboard counts.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *service) { s.newID = gen }
}

func WithServiceLogger(l *zap.Logger) ServiceOption {
	return func(s *service) { s.logger = l.Named("devapi.service") }
}

func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		logger: zap.L().Named("devapi.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) today() string {
	return s.now().Format(domain.DateLayout)
}

const blankMessage = "Field cannot be empty or whitespace"

func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	e := &domain.Employee{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
	}

	var blank []apperror.FieldError
	for _, f := range []struct{ name, value string }{
		{"employee_id", e.EmployeeID},
		{"full_name", e.FullName},
		{"department", e.Department},
	} {
		if f.value == "" {
			blank = append(blank, apperror.ValueError(f.name, blankMessage))
		}
	}
	if len(blank) > 0 {
		return nil, apperror.Validation(blank...)
	}

	exists, err := s.repo.EmployeeCodeExists(ctx, e.EmployeeID)
	if err != nil {
		return nil, apperror.Database(err)
	}
	if exists {
		return nil, apperror.DuplicateEmployeeCode(e.EmployeeID)
	}
	exists, err = s.repo.EmailExists(ctx, e.Email)
	if err != nil {
		return nil, apperror.Database(err)
	}
	if exists {
		return nil, apperror.DuplicateEmail(e.Email)
	}

	e.ID = s.newID()
	if err := s.repo.CreateEmployee(ctx, e); err != nil {
		return nil, apperror.Database(err)
	}
	s.logger.Info("employee created", zap.String("id", e.ID), zap.String("employee_id", e.EmployeeID))
	return e, nil
}

func (s *service) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.EmployeeNotFound()
	}
	if err != nil {
		return nil, apperror.Database(err)
	}
	return e, nil
}

func (s *service) ListEmployees(ctx context.Context, page Page) ([]domain.Employee, error) {
	out, err := s.repo.ListEmployees(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, apperror.Database(err)
	}
	return out, nil
}

func (s *service) ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error) {
	out, err := s.repo.ListEmployeesWithStats(ctx)
	if err != nil {
		return nil, apperror.Database(err)
	}
	return out, nil
}

func (s *service) DeleteEmployee(ctx context.Context, id string) error {
	err := s.repo.DeleteEmployee(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperror.EmployeeNotFound()
	}
	if err != nil {
		return apperror.Database(err)
	}
	s.logger.Info("employee deleted", zap.String("id", id))
	return nil
}

func (s *service) CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*domain.AttendanceRecord, error) {
	// both are YYYY-MM-DD so lexical order is date order
	if req.Date > s.today() {
		return nil, apperror.Validation(apperror.ValueError("date", "Attendance date cannot be in the future"))
	}

	if _, err := s.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	exists, err := s.repo.AttendanceExists(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return nil, apperror.Database(err)
	}
	if exists {
		return nil, apperror.DuplicateAttendance(req.Date)
	}

	a := &domain.AttendanceRecord{
		ID:         s.newID(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}
	if err := s.repo.CreateAttendance(ctx, a); err != nil {
		return nil, apperror.Database(err)
	}
	return a, nil
}

func (s *service) ListAttendance(ctx context.Context, q AttendanceQuery) ([]domain.AttendanceRecord, error) {
	q.EmployeeID = ""
	out, err := s.repo.ListAttendance(ctx, q)
	if err != nil {
		return nil, apperror.Database(err)
	}
	return out, nil
}

// ListAttendanceByEmployee does not check that the employee exists; an
// unknown id yields an empty list.
func (s *service) ListAttendanceByEmployee(ctx context.Context, employeeID string, page Page) ([]domain.AttendanceRecord, error) {
	out, err := s.repo.ListAttendance(ctx, AttendanceQuery{EmployeeID: employeeID, Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		return nil, apperror.Database(err)
	}
	return out, nil
}

func (s *service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.DashboardStats(ctx, s.today())
	if err != nil {
		return domain.DashboardStats{}, apperror.Database(err)
	}
	return stats, nil
}
