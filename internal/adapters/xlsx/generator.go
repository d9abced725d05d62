// Package xlsx exports attendance records as an Excel workbook with a
// record sheet and a per-employee summary sheet.
package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/csg33k/hrms-lite/internal/adapters/xlsx/layout"
	"github.com/csg33k/hrms-lite/internal/domain"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) ContentType() string { return ContentType }

type styles struct {
	header, count, present, absent int
}

// cell picks the style for a value in column c. Text cells keep the
// default style.
func (st styles) cell(c layout.Column, v any) int {
	switch c.Kind {
	case layout.Count:
		return st.count
	case layout.Status:
		if v == string(domain.StatusPresent) {
			return st.present
		}
		return st.absent
	default:
		return 0
	}
}

// Generate writes the workbook to w. Records are resolved against employees
// the same way the attendance table is.
func (g *Generator) Generate(ctx context.Context, records []domain.AttendanceRecord, employees []domain.Employee, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}
	if err := f.SetSheetName("Sheet1", layout.AttendanceSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeAttendance(f, st, records, employees); err != nil {
		return err
	}
	if _, err := f.NewSheet(layout.SummarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	if err := writeSummary(f, st, records, employees); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1E1E1E"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}
	st.count, err = f.NewStyle(&excelize.Style{
		NumFmt:    1,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return st, fmt.Errorf("count style: %w", err)
	}
	st.present, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "166534"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DCFCE7"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("present style: %w", err)
	}
	st.absent, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "991B1B"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FEE2E2"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("absent style: %w", err)
	}
	return st, nil
}

// writeHeader writes the header row, column widths, a frozen first row and
// an autofilter over rows rows of data.
func writeHeader(f *excelize.File, sheet string, cols []layout.Column, headerStyle, rows int) error {
	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(len(cols), rows+1)
	return f.AutoFilter(sheet, "A1:"+end, nil)
}

func writeAttendance(f *excelize.File, st styles, records []domain.AttendanceRecord, employees []domain.Employee) error {
	sheet := layout.AttendanceSheet
	if err := writeHeader(f, sheet, layout.Attendance, st.header, len(records)); err != nil {
		return fmt.Errorf("attendance header: %w", err)
	}
	codes := employeeCodes(employees)
	for i, rec := range records {
		row := i + 2
		values := []any{
			codes[rec.EmployeeID],
			domain.EmployeeName(employees, rec.EmployeeID),
			rec.Date,
			string(rec.Status),
		}
		if err := writeRow(f, sheet, layout.Attendance, st, row, values); err != nil {
			return fmt.Errorf("attendance row %d: %w", row, err)
		}
	}
	return nil
}

// SummaryRow is one employee's totals in the export.
type SummaryRow struct {
	EmployeeID string
	Name       string
	Present    int
	Absent     int
}

// Summarize totals records per employee, in employee list order. Records for
// employees missing from the list are grouped under domain.UnknownEmployee.
func Summarize(records []domain.AttendanceRecord, employees []domain.Employee) []SummaryRow {
	index := make(map[string]int, len(employees))
	rows := make([]SummaryRow, 0, len(employees)+1)
	for _, e := range employees {
		index[e.ID] = len(rows)
		rows = append(rows, SummaryRow{EmployeeID: e.EmployeeID, Name: e.FullName})
	}
	unknown := -1
	for _, rec := range records {
		i, ok := index[rec.EmployeeID]
		if !ok {
			if unknown < 0 {
				unknown = len(rows)
				rows = append(rows, SummaryRow{Name: domain.UnknownEmployee})
			}
			i = unknown
		}
		if rec.Status == domain.StatusPresent {
			rows[i].Present++
		} else {
			rows[i].Absent++
		}
	}
	return rows
}

func writeSummary(f *excelize.File, st styles, records []domain.AttendanceRecord, employees []domain.Employee) error {
	sheet := layout.SummarySheet
	rows := Summarize(records, employees)
	if err := writeHeader(f, sheet, layout.Summary, st.header, len(rows)); err != nil {
		return fmt.Errorf("summary header: %w", err)
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, layout.Summary, st, i+2, []any{r.EmployeeID, r.Name, r.Present, r.Absent}); err != nil {
			return fmt.Errorf("summary row %d: %w", i+2, err)
		}
	}
	return nil
}

// writeRow writes values into row and styles each cell by its column kind.
func writeRow(f *excelize.File, sheet string, cols []layout.Column, st styles, row int, values []any) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, first, &values); err != nil {
		return err
	}
	for i, c := range cols {
		style := st.cell(c, values[i])
		if style == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func employeeCodes(employees []domain.Employee) map[string]string {
	m := make(map[string]string, len(employees))
	for _, e := range employees {
		m[e.ID] = e.EmployeeID
	}
	return m
}
