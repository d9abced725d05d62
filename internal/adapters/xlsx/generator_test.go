package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/csg33k/hrms-lite/internal/adapters/xlsx"
	"github.com/csg33k/hrms-lite/internal/adapters/xlsx/layout"
	"github.com/csg33k/hrms-lite/internal/domain"
)

var (
	employees = []domain.Employee{
		{ID: "u1", EmployeeID: "EMP-1", FullName: "Ada Lovelace"},
		{ID: "u2", EmployeeID: "EMP-2", FullName: "Grace Hopper"},
	}
	records = []domain.AttendanceRecord{
		{ID: "a1", EmployeeID: "u1", Date: "2024-03-15", Status: domain.StatusPresent},
		{ID: "a2", EmployeeID: "u2", Date: "2024-03-15", Status: domain.StatusAbsent},
		{ID: "a3", EmployeeID: "u1", Date: "2024-03-14", Status: domain.StatusAbsent},
		{ID: "a4", EmployeeID: "gone", Date: "2024-03-14", Status: domain.StatusPresent},
	}
)

func open(t *testing.T, recs []domain.AttendanceRecord, emps []domain.Employee) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, xlsx.New().Generate(context.Background(), recs, emps, &buf))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestGenerate_AttendanceSheet(t *testing.T) {
	f := open(t, records, employees)

	rows, err := f.GetRows(layout.AttendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Employee ID", "Employee Name", "Date", "Status"}, rows[0])
	assert.Equal(t, []string{"EMP-1", "Ada Lovelace", "2024-03-15", "Present"}, rows[1])
	assert.Equal(t, []string{"EMP-2", "Grace Hopper", "2024-03-15", "Absent"}, rows[2])
	assert.Equal(t, []string{"", domain.UnknownEmployee, "2024-03-14", "Present"}, rows[4])
}

func TestGenerate_SummarySheet(t *testing.T) {
	f := open(t, records, employees)

	rows, err := f.GetRows(layout.SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee ID", "Employee Name", "Present", "Absent"},
		{"EMP-1", "Ada Lovelace", "1", "1"},
		{"EMP-2", "Grace Hopper", "0", "1"},
		{"", domain.UnknownEmployee, "1", "0"},
	}, rows)
}

func cellStyle(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	idx, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	st, err := f.GetStyle(idx)
	require.NoError(t, err)
	return st
}

func TestGenerate_StylesFollowColumnKind(t *testing.T) {
	f := open(t, records, employees)

	t.Run("status cells are filled by value", func(t *testing.T) {
		assert.Equal(t, []string{"DCFCE7"}, cellStyle(t, f, layout.AttendanceSheet, "D2").Fill.Color)
		assert.Equal(t, []string{"FEE2E2"}, cellStyle(t, f, layout.AttendanceSheet, "D3").Fill.Color)
	})

	t.Run("text cells keep the default style", func(t *testing.T) {
		idx, err := f.GetCellStyle(layout.AttendanceSheet, "B2")
		require.NoError(t, err)
		assert.Zero(t, idx)
	})

	t.Run("count cells are right-aligned integers", func(t *testing.T) {
		for _, cell := range []string{"C2", "D2"} {
			st := cellStyle(t, f, layout.SummarySheet, cell)
			require.NotNil(t, st.Alignment, cell)
			assert.Equal(t, "right", st.Alignment.Horizontal, cell)
			assert.Equal(t, 1, st.NumFmt, cell)
		}
		idx, err := f.GetCellStyle(layout.SummarySheet, "A2")
		require.NoError(t, err)
		assert.Zero(t, idx)
	})
}

func TestGenerate_Empty(t *testing.T) {
	f := open(t, nil, nil)

	rows, err := f.GetRows(layout.AttendanceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{layout.AttendanceSheet, layout.SummarySheet}, f.GetSheetList())
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := xlsx.New().Generate(ctx, records, employees, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestSummarize(t *testing.T) {
	got := xlsx.Summarize(records, employees)
	assert.Equal(t, []xlsx.SummaryRow{
		{EmployeeID: "EMP-1", Name: "Ada Lovelace", Present: 1, Absent: 1},
		{EmployeeID: "EMP-2", Name: "Grace Hopper", Present: 0, Absent: 1},
		{Name: domain.UnknownEmployee, Present: 1, Absent: 0},
	}, got)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, xlsx.ContentType, xlsx.New().ContentType())
}
