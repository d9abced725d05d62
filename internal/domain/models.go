package domain

// AttendanceStatus is the single status recorded for an employee on a date.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// DateLayout is the wire and form format for attendance dates.
const DateLayout = "2006-01-02"

// UnknownEmployee is shown when an attendance record references an employee
// that is not in the last-fetched list (e.g. deleted since).
const UnknownEmployee = "Unknown"

// Employee is the backend's employee record. ID is the internal identifier
// assigned by the backend; EmployeeID is the human-assigned employee code.
type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// EmployeeWithStats carries the server-derived present-day count.
type EmployeeWithStats struct {
	Employee
	TotalPresentDays int `json:"total_present_days"`
}

// NewEmployee is the create payload for POST /employees.
type NewEmployee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AttendanceRecord struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Status     AttendanceStatus `json:"status"`
}

// NewAttendance is the create payload for POST /attendance.
type NewAttendance struct {
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// AttendanceFilter narrows GET /attendance. A zero value lists everything.
type AttendanceFilter struct {
	Date string
}

// DashboardStats is a server-computed snapshot; it has no identity of its own.
type DashboardStats struct {
	TotalEmployees         int `json:"total_employees"`
	TotalAttendanceRecords int `json:"total_attendance_records"`
	PresentToday           int `json:"present_today"`
	AbsentToday            int `json:"absent_today"`
}

// EmployeesPageState holds the last successfully fetched employee table.
type EmployeesPageState struct {
	Employees []EmployeeWithStats `json:"employees"`
}

// AttendancePageState holds the last successful attendance fetch together
// with the employee list used to resolve names and fill the create form.
type AttendancePageState struct {
	Records    []AttendanceRecord `json:"records"`
	Employees  []Employee         `json:"employees"`
	DateFilter string             `json:"date_filter"`
}
