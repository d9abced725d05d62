package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/ports"
)

// EmployeeDetailView is a single employee with their attendance history.
type EmployeeDetailView struct {
	Employee *domain.Employee
	Rows     []AttendanceRow
	Present  int
	Absent   int
	Error    string
}

func (v EmployeeDetailView) Empty() bool { return len(v.Rows) == 0 }

func (v EmployeeDetailView) EmptyMessage() string {
	return "No attendance records for this employee yet."
}

// FetchEmployeeDetail loads the employee and their attendance concurrently.
func FetchEmployeeDetail(ctx context.Context, api ports.HRMSClient, id string) (EmployeeDetailView, error) {
	var (
		emp     *domain.Employee
		records []domain.AttendanceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = api.GetEmployee(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = api.ListAttendanceByEmployee(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return EmployeeDetailView{}, err
	}
	return EmployeeDetailView{
		Employee: emp,
		Rows:     BuildAttendanceRows(records, []domain.Employee{*emp}),
		Present:  domain.CountStatus(records, domain.StatusPresent),
		Absent:   domain.CountStatus(records, domain.StatusAbsent),
	}, nil
}
