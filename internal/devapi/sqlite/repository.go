package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/hrms-lite/internal/devapi"
	"github.com/csg33k/hrms-lite/internal/domain"
)

//go:embed schema.sql
var schema string

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database with foreign keys enforced so deleting an
// employee cascades to their attendance. Call Migrate before serving.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates any missing tables and indexes.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// ── Employees ─────────────────────────────────────────────────────────────────

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, employee_id, full_name, email, department)
		VALUES (?,?,?,?,?)`,
		e.ID, e.EmployeeID, e.FullName, e.Email, e.Department,
	)
	return err
}

func (r *Repository) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, employee_id, full_name, email, department
		FROM employees WHERE id=?`, id).Scan(
		&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, devapi.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) EmployeeCodeExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id=?)`, code)
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email=?)`, email)
}

func (r *Repository) ListEmployees(ctx context.Context, skip, limit int) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, full_name, email, department
		FROM employees ORDER BY created_at, rowid LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListEmployeesWithStats returns every employee with their Present count.
func (r *Repository) ListEmployeesWithStats(ctx context.Context) ([]domain.EmployeeWithStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.employee_id, e.full_name, e.email, e.department, COUNT(a.id)
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id AND a.status = 'Present'
		GROUP BY e.id
		ORDER BY e.created_at, e.rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.EmployeeWithStats
	for rows.Next() {
		var e domain.EmployeeWithStats
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.TotalPresentDays); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *Repository) DeleteEmployee(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return devapi.ErrNotFound
	}
	return nil
}

// ── Attendance ────────────────────────────────────────────────────────────────

func (r *Repository) CreateAttendance(ctx context.Context, a *domain.AttendanceRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (id, employee_id, date, status)
		VALUES (?,?,?,?)`,
		a.ID, a.EmployeeID, a.Date, string(a.Status),
	)
	return err
}

func (r *Repository) AttendanceExists(ctx context.Context, employeeID, date string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id=? AND date=?)`, employeeID, date)
}

// ListAttendance honours q in priority order: a single date (unpaged, in
// insertion order), a complete range, one employee, then everything. All but
// the single date are newest first.
func (r *Repository) ListAttendance(ctx context.Context, q devapi.AttendanceQuery) ([]domain.AttendanceRecord, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT id, employee_id, date, status FROM attendance`)
	switch {
	case q.Date != "":
		sb.WriteString(` WHERE date=? ORDER BY rowid`)
		args = append(args, q.Date)
	case q.From != "" && q.To != "":
		sb.WriteString(` WHERE date >= ? AND date <= ? ORDER BY date DESC`)
		args = append(args, q.From, q.To)
	case q.EmployeeID != "":
		sb.WriteString(` WHERE employee_id=? ORDER BY date DESC LIMIT ? OFFSET ?`)
		args = append(args, q.EmployeeID, q.Limit, q.Skip)
	default:
		sb.WriteString(` ORDER BY date DESC LIMIT ? OFFSET ?`)
		args = append(args, q.Limit, q.Skip)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.AttendanceRecord
	for rows.Next() {
		var a domain.AttendanceRecord
		var status string
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &status); err != nil {
			return nil, err
		}
		a.Status = domain.AttendanceStatus(status)
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *Repository) DashboardStats(ctx context.Context, today string) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM attendance),
			(SELECT COUNT(*) FROM attendance WHERE date=? AND status='Present'),
			(SELECT COUNT(*) FROM attendance WHERE date=? AND status='Absent')`,
		today, today).Scan(
		&s.TotalEmployees, &s.TotalAttendanceRecords, &s.PresentToday, &s.AbsentToday,
	)
	return s, err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (r *Repository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

var _ devapi.Repository = (*Repository)(nil)
