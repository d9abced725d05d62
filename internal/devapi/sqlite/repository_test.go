package sqlite_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/hrms-lite/internal/devapi"
	"github.com/csg33k/hrms-lite/internal/devapi/sqlite"
	"github.com/csg33k/hrms-lite/internal/domain"
)

const empUUID = "7f1c5c7e-1d7a-4b53-9a57-2f3b7f0b9a11"

func newRepo(t *testing.T) (*sqlite.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlite.NewWithDB(db), mock
}

func TestRepository_Migrate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS employees").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.Migrate(context.Background()))
}

func TestRepository_CreateEmployee(t *testing.T) {
	repo, mock := newRepo(t)
	e := &domain.Employee{ID: empUUID, EmployeeID: "EMP-1", FullName: "Ada", Email: "ada@example.com", Department: "Eng"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees (id, employee_id, full_name, email, department)")).
		WithArgs(empUUID, "EMP-1", "Ada", "ada@example.com", "Eng").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateEmployee(context.Background(), e))
}

func TestRepository_GetEmployee(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("FROM employees WHERE id=?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(query).WithArgs(empUUID).WillReturnRows(
			sqlmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department"}).
				AddRow(empUUID, "EMP-1", "Ada", "ada@example.com", "Eng"),
		)
		e, err := repo.GetEmployee(ctx, empUUID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", e.FullName)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(query).WithArgs(empUUID).WillReturnRows(
			sqlmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department"}),
		)
		_, err := repo.GetEmployee(ctx, empUUID)
		assert.ErrorIs(t, err, devapi.ErrNotFound)
	})
}

func TestRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id=?)")).
		WithArgs("EMP-1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM employees WHERE email=?)")).
		WithArgs("ada@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id=? AND date=?)")).
		WithArgs(empUUID, "2024-03-15").WillReturnError(errors.New("database is locked"))

	found, err := repo.EmployeeCodeExists(ctx, "EMP-1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.AttendanceExists(ctx, empUUID, "2024-03-15")
	assert.EqualError(t, err, "database is locked")
}

func TestRepository_ListEmployees(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees ORDER BY created_at, rowid LIMIT ? OFFSET ?")).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department"}).
			AddRow("u1", "EMP-1", "Ada", "ada@example.com", "Eng").
			AddRow("u2", "EMP-2", "Grace", "grace@example.com", "Ops"))

	list, err := repo.ListEmployees(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Grace", list[1].FullName)
}

func TestRepository_ListEmployeesWithStats(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN attendance a ON a.employee_id = e.id AND a.status = 'Present'")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department", "count"}).
			AddRow("u1", "EMP-1", "Ada", "ada@example.com", "Eng", 3).
			AddRow("u2", "EMP-2", "Grace", "grace@example.com", "Ops", 0))

	list, err := repo.ListEmployeesWithStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, list[0].TotalPresentDays)
	assert.Equal(t, 0, list[1].TotalPresentDays)
}

func TestRepository_DeleteEmployee(t *testing.T) {
	ctx := context.Background()
	del := regexp.QuoteMeta("DELETE FROM employees WHERE id=?")

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(empUUID).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.DeleteEmployee(ctx, empUUID))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(empUUID).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.DeleteEmployee(ctx, empUUID), devapi.ErrNotFound)
	})
}

func TestRepository_CreateAttendance(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance (id, employee_id, date, status)")).
		WithArgs("a1", empUUID, "2024-03-15", "Present").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateAttendance(context.Background(), &domain.AttendanceRecord{
		ID: "a1", EmployeeID: empUUID, Date: "2024-03-15", Status: domain.StatusPresent,
	}))
}

func TestRepository_ListAttendance(t *testing.T) {
	cols := []string{"id", "employee_id", "date", "status"}
	base := "SELECT id, employee_id, date, status FROM attendance"

	tests := []struct {
		name  string
		q     devapi.AttendanceQuery
		query string
		args  []driver.Value
	}{
		{
			name:  "single date",
			q:     devapi.AttendanceQuery{Date: "2024-03-15", From: "2024-03-01", To: "2024-03-31", Limit: 100},
			query: base + " WHERE date=? ORDER BY rowid",
			args:  []driver.Value{"2024-03-15"},
		},
		{
			name:  "range",
			q:     devapi.AttendanceQuery{From: "2024-03-01", To: "2024-03-31", Limit: 100},
			query: base + " WHERE date >= ? AND date <= ? ORDER BY date DESC",
			args:  []driver.Value{"2024-03-01", "2024-03-31"},
		},
		{
			name:  "half range lists everything",
			q:     devapi.AttendanceQuery{From: "2024-03-01", Skip: 10, Limit: 100},
			query: base + " ORDER BY date DESC LIMIT ? OFFSET ?",
			args:  []driver.Value{100, 10},
		},
		{
			name:  "by employee",
			q:     devapi.AttendanceQuery{EmployeeID: empUUID, Limit: 50},
			query: base + " WHERE employee_id=? ORDER BY date DESC LIMIT ? OFFSET ?",
			args:  []driver.Value{empUUID, 50, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("^"+regexp.QuoteMeta(tt.query)+"$").
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(cols).AddRow("a1", empUUID, "2024-03-15", "Absent"))

			list, err := repo.ListAttendance(context.Background(), tt.q)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, domain.StatusAbsent, list[0].Status)
		})
	}
}

func TestRepository_DashboardStats(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM employees)")).
		WithArgs("2024-03-15", "2024-03-15").
		WillReturnRows(sqlmock.NewRows([]string{"employees", "records", "present", "absent"}).AddRow(4, 12, 3, 1))

	stats, err := repo.DashboardStats(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{TotalEmployees: 4, TotalAttendanceRecords: 12, PresentToday: 3, AbsentToday: 1}, stats)
}
