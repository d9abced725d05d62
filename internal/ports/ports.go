package ports

//go:generate mockgen -destination=mock/ports_mock.go -package=mock . HRMSClient,SessionStore,RosterReport,AttendanceExport

import (
	"context"
	"io"

	"github.com/csg33k/hrms-lite/internal/domain"
)

// EmployeeAPI defines the employee operations of the HRMS backend.
type EmployeeAPI interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, in domain.NewEmployee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// AttendanceAPI defines the attendance operations of the HRMS backend.
type AttendanceAPI interface {
	ListAttendance(ctx context.Context, f domain.AttendanceFilter) ([]domain.AttendanceRecord, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error)
	CreateAttendance(ctx context.Context, in domain.NewAttendance) (*domain.AttendanceRecord, error)
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// HRMSClient is everything the pages need from the backend.
type HRMSClient interface {
	EmployeeAPI
	AttendanceAPI
}

// SessionStore keeps each page's state for a browser session. Pages are
// stored under separate keys; saving one page never rewrites another.
// Loads return an empty state (not an error) for unknown sessions.
type SessionStore interface {
	LoadEmployees(ctx context.Context, sessionID string) (*domain.EmployeesPageState, error)
	SaveEmployees(ctx context.Context, sessionID string, s *domain.EmployeesPageState) error
	LoadAttendance(ctx context.Context, sessionID string) (*domain.AttendancePageState, error)
	SaveAttendance(ctx context.Context, sessionID string, s *domain.AttendancePageState) error
}

// RosterReport renders the employee roster document.
type RosterReport interface {
	Generate(ctx context.Context, employees []domain.EmployeeWithStats, w io.Writer) error
}

// AttendanceExport renders attendance records as a downloadable sheet.
// employees is the list used to resolve record names.
type AttendanceExport interface {
	Generate(ctx context.Context, records []domain.AttendanceRecord, employees []domain.Employee, w io.Writer) error
	// ContentType is the MIME type of the generated document.
	ContentType() string
}
