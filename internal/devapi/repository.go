package devapi

import (
	"context"
	"errors"

	"github.com/csg33k/hrms-lite/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

// AttendanceQuery selects attendance rows. Date wins over From/To; a range
// needs both ends. Skip and Limit apply only to the unfiltered and
// per-employee listings.
type AttendanceQuery struct {
	EmployeeID string
	Date       string
	From       string
	To         string
	Skip       int
	Limit      int
}

type Repository interface {
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	EmployeeCodeExists(ctx context.Context, code string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListEmployees(ctx context.Context, skip, limit int) ([]domain.Employee, error)
	ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error)
	DeleteEmployee(ctx context.Context, id string) error

	CreateAttendance(ctx context.Context, a *domain.AttendanceRecord) error
	AttendanceExists(ctx context.Context, employeeID, date string) (bool, error)
	ListAttendance(ctx context.Context, q AttendanceQuery) ([]domain.AttendanceRecord, error)
	DashboardStats(ctx context.Context, today string) (domain.DashboardStats, error)
}
