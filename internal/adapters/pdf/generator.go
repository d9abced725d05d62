// Package pdf renders the employee roster as a printable PDF report. The
// report opens with a per-department summary followed by the full roster
// table, which continues across pages with its header repeated.
package pdf

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/hrms-lite/internal/domain"
)

type Generator struct {
	now      func() time.Time
	compress bool
}

func New() *Generator {
	return &Generator{now: time.Now, compress: true}
}

// column is one roster table column; width is a share of the content width.
type column struct {
	title string
	width float64
	align string
	value func(e *domain.EmployeeWithStats) string
}

var columns = []column{
	{"Employee ID", 0.16, "L", func(e *domain.EmployeeWithStats) string { return e.EmployeeID }},
	{"Full Name", 0.24, "L", func(e *domain.EmployeeWithStats) string { return e.FullName }},
	{"Email", 0.30, "L", func(e *domain.EmployeeWithStats) string { return e.Email }},
	{"Department", 0.18, "L", func(e *domain.EmployeeWithStats) string { return e.Department }},
	{"Present", 0.12, "R", func(e *domain.EmployeeWithStats) string { return fmt.Sprint(e.TotalPresentDays) }},
}

// report tracks the write position while the roster is laid out.
type report struct {
	pdf *fpdf.Fpdf
	// tr converts UTF-8 to the cp1252 encoding of the core fonts.
	tr func(string) string
	y  float64
	// lowest is the largest y any row has reached.
	lowest float64
}

// Generate writes the roster to w.
func (g *Generator) Generate(_ context.Context, employees []domain.EmployeeWithStats, w io.Writer) error {
	r := newReport()
	r.pdf.SetCompression(g.compress)

	generated := g.now().Format("Jan 02, 2006 15:04")
	r.pdf.SetFooterFunc(func() { r.drawFooter(generated) })

	r.pdf.AddPage()
	r.drawHeader()
	r.drawSummary(employees)
	r.y += 5
	r.drawRoster(employees)

	return r.pdf.Output(w)
}

func newReport() *report {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(false, 18)
	pdf.AliasNbPages("{nb}")
	return &report{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (r *report) contentWidth() float64 {
	pageW, _ := r.pdf.GetPageSize()
	marginL, _, marginR, _ := r.pdf.GetMargins()
	return pageW - marginL - marginR
}

// limit is the lowest y a row may reach, leaving room for the footer.
func (r *report) limit() float64 {
	_, pageH := r.pdf.GetPageSize()
	_, _, _, marginB := r.pdf.GetMargins()
	return pageH - marginB - 8
}

// fits reports whether a row of height h still fits on the current page.
func (r *report) fits(h float64) bool {
	return r.y+h <= r.limit()
}

// newPage starts a page and moves y to its top margin.
func (r *report) newPage() {
	_, marginT, _, _ := r.pdf.GetMargins()
	r.pdf.AddPage()
	r.y = marginT
}

func (r *report) advance(h float64) {
	r.y += h
	if r.y > r.lowest {
		r.lowest = r.y
	}
}

func (r *report) cell(w, h float64, text, border string, ln int, align string, fill bool) {
	r.pdf.CellFormat(w, h, r.tr(text), border, ln, align, fill, 0, "")
}

// drawHeader draws the title bar.
func (r *report) drawHeader() {
	marginL, marginT, _, _ := r.pdf.GetMargins()
	contentW := r.contentWidth()

	r.pdf.SetFillColor(30, 30, 30)
	r.pdf.Rect(marginL, marginT, contentW, 10, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Helvetica", "B", 11)
	r.pdf.SetXY(marginL+2, marginT+1.5)
	r.cell(contentW-4, 7, "HRMS LITE  EMPLOYEE ROSTER", "", 0, "L", false)
	r.pdf.SetTextColor(0, 0, 0)

	r.y = marginT + 13
}

func (r *report) drawSummary(employees []domain.EmployeeWithStats) {
	marginL, _, _, _ := r.pdf.GetMargins()
	contentW := r.contentWidth()
	const rowH = 5.5

	r.pdf.SetFillColor(240, 240, 240)
	r.pdf.SetFont("Helvetica", "B", 8)
	r.pdf.SetXY(marginL, r.y)
	r.cell(contentW, rowH, "SUMMARY", "LRT", 1, "L", true)
	r.advance(rowH)

	totalPresent := 0
	for _, e := range employees {
		totalPresent += e.TotalPresentDays
	}
	colHalf := contentW / 2
	r.pdf.SetFont("Helvetica", "", 9)
	r.pdf.SetXY(marginL, r.y)
	r.cell(colHalf, 6, fmt.Sprintf("Employees: %d", len(employees)), "L", 0, "L", false)
	r.cell(colHalf, 6, fmt.Sprintf("Present days recorded: %d", totalPresent), "R", 1, "L", false)
	r.advance(6)

	for _, d := range DepartmentCounts(employees) {
		if !r.fits(rowH) {
			r.closeBox()
			r.newPage()
			r.pdf.SetFont("Helvetica", "", 9)
		}
		r.pdf.SetXY(marginL, r.y)
		r.cell(colHalf, rowH, "  "+d.Name, "L", 0, "L", false)
		r.cell(colHalf, rowH, fmt.Sprint(d.Count), "R", 1, "L", false)
		r.advance(rowH)
	}
	r.closeBox()
}

// closeBox draws the bottom edge of the summary box at y.
func (r *report) closeBox() {
	marginL, _, _, _ := r.pdf.GetMargins()
	r.pdf.SetXY(marginL, r.y)
	r.cell(r.contentWidth(), 0, "", "LB", 1, "L", false)
}

func (r *report) drawTableHeader() {
	marginL, _, _, _ := r.pdf.GetMargins()
	contentW := r.contentWidth()

	r.pdf.SetFillColor(30, 30, 30)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Helvetica", "B", 8.5)
	r.pdf.SetXY(marginL, r.y)
	for _, c := range columns {
		r.cell(contentW*c.width, 7, c.title, "1", 0, c.align, true)
	}
	r.pdf.Ln(-1)
	r.pdf.SetTextColor(0, 0, 0)
	r.advance(7)
}

func (r *report) drawRoster(employees []domain.EmployeeWithStats) {
	marginL, _, _, _ := r.pdf.GetMargins()
	contentW := r.contentWidth()
	const rowH = 6.5

	if len(employees) == 0 {
		if !r.fits(rowH) {
			r.newPage()
		}
		r.pdf.SetFont("Helvetica", "I", 9)
		r.pdf.SetXY(marginL, r.y)
		r.cell(contentW, rowH, "No employees found.", "", 1, "L", false)
		r.advance(rowH)
		return
	}

	if !r.fits(7 + rowH) {
		r.newPage()
	}
	r.drawTableHeader()
	for i := range employees {
		if !r.fits(rowH) {
			r.newPage()
			r.drawTableHeader()
		}
		if i%2 == 0 {
			r.pdf.SetFillColor(250, 250, 250)
		} else {
			r.pdf.SetFillColor(255, 255, 255)
		}
		r.pdf.SetFont("Helvetica", "", 8.5)
		r.pdf.SetXY(marginL, r.y)
		for _, c := range columns {
			r.cell(contentW*c.width, rowH, c.value(&employees[i]), "1", 0, c.align, true)
		}
		r.advance(rowH)
	}
}

func (r *report) drawFooter(generated string) {
	marginL, _, _, marginB := r.pdf.GetMargins()
	_, pageH := r.pdf.GetPageSize()
	contentW := r.contentWidth()

	r.pdf.SetXY(marginL, pageH-marginB-6)
	r.pdf.SetFont("Helvetica", "I", 7.5)
	r.pdf.SetTextColor(130, 130, 130)
	r.cell(contentW/2, 5, "Generated "+generated, "", 0, "L", false)
	r.cell(contentW/2, 5, "Page "+fmt.Sprint(r.pdf.PageNo())+" of {nb}", "", 0, "R", false)
	r.pdf.SetTextColor(0, 0, 0)
}

type DepartmentCount struct {
	Name  string
	Count int
}

// DepartmentCounts tallies employees per department, largest first and then
// by name.
func DepartmentCounts(employees []domain.EmployeeWithStats) []DepartmentCount {
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.Department]++
	}
	out := make([]DepartmentCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, DepartmentCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
