package pages

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/ports"
	"github.com/csg33k/hrms-lite/internal/validation"
)

const (
	AttendanceEmptyMessage         = "No attendance records found. Mark attendance to get started."
	AttendanceFilteredEmptyMessage = "No attendance records for this date"
)

// AttendanceRow is one table row with the employee reference resolved.
type AttendanceRow struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string
	Status       domain.AttendanceStatus
}

func (r AttendanceRow) Present() bool { return r.Status == domain.StatusPresent }

// BuildAttendanceRows resolves every record against the given employee
// list. Records whose employee is missing get domain.UnknownEmployee.
func BuildAttendanceRows(records []domain.AttendanceRecord, employees []domain.Employee) []AttendanceRow {
	rows := make([]AttendanceRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, AttendanceRow{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeName: domain.EmployeeName(employees, rec.EmployeeID),
			Date:         rec.Date,
			Status:       rec.Status,
		})
	}
	return rows
}

// AttendanceView is the filter bar plus the attendance table. Employees
// refresh the create form's select alongside the table.
type AttendanceView struct {
	Rows       []AttendanceRow
	Employees  []domain.Employee
	DateFilter string
	Error      string
	Today      string
}

func (v AttendanceView) Empty() bool { return len(v.Rows) == 0 }

func (v AttendanceView) Filtered() bool { return v.DateFilter != "" }

// EmptyMessage differs between a filtered and an unfiltered empty result.
func (v AttendanceView) EmptyMessage() string {
	if v.Filtered() {
		return AttendanceFilteredEmptyMessage
	}
	return AttendanceEmptyMessage
}

// NewAttendanceView builds the view from page state.
func NewAttendanceView(st domain.AttendancePageState, today string) AttendanceView {
	return AttendanceView{
		Rows:       BuildAttendanceRows(st.Records, st.Employees),
		Employees:  st.Employees,
		DateFilter: st.DateFilter,
		Today:      today,
	}
}

// AttendanceFormView is the mark-attendance modal body. Employees fill the
// select and come from the page's last fetch.
type AttendanceFormView struct {
	Form      validation.AttendanceForm
	Errors    validation.FieldErrors
	Employees []domain.Employee
	Today     string
}

func (v AttendanceFormView) SubmitError() string {
	return v.Errors.Get(validation.SubmitKey)
}

// NewAttendanceFormView is the reset form: no employee, today, Present.
func NewAttendanceFormView(employees []domain.Employee, now time.Time) AttendanceFormView {
	return AttendanceFormView{
		Form:      validation.NewAttendanceForm(now),
		Employees: employees,
		Today:     now.Format(domain.DateLayout),
	}
}

// FetchAttendance issues the attendance list and employee list calls
// concurrently and waits for both. The first failure wins and the other
// result is discarded.
func FetchAttendance(ctx context.Context, api ports.HRMSClient, filter domain.AttendanceFilter) (domain.AttendancePageState, error) {
	var (
		records   []domain.AttendanceRecord
		employees []domain.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = api.ListAttendance(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = api.ListEmployees(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.AttendancePageState{}, err
	}
	return domain.AttendancePageState{
		Records:    records,
		Employees:  employees,
		DateFilter: filter.Date,
	}, nil
}
