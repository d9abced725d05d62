// Package layout defines the sheets and columns of the attendance workbook.
package layout

const (
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

type Column struct {
	Header string
	Width  float64
	Kind   Kind
}

type Kind int

const (
	Text   Kind = iota // left-aligned string
	Count              // integer, right-aligned
	Status             // Present/Absent, filled green or red
)

// Attendance lists one row per record, newest first as returned by the
// backend.
var Attendance = []Column{
	{Header: "Employee ID", Width: 16, Kind: Text},
	{Header: "Employee Name", Width: 28, Kind: Text},
	{Header: "Date", Width: 14, Kind: Text},
	{Header: "Status", Width: 12, Kind: Status},
}

// Summary lists one row per employee with their totals in the export.
var Summary = []Column{
	{Header: "Employee ID", Width: 16, Kind: Text},
	{Header: "Employee Name", Width: 28, Kind: Text},
	{Header: "Present", Width: 10, Kind: Count},
	{Header: "Absent", Width: 10, Kind: Count},
}
