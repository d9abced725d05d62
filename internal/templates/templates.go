// Package templates holds the HTML for every page and htmx fragment. Each
// exported function returns a templ.Component ready to render.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	"github.com/csg33k/hrms-lite/internal/pages"
)

//go:embed html/*.html
var files embed.FS

var base = template.Must(template.New("hrms").Funcs(funcs).ParseFS(files,
	"html/layout.html",
	"html/components.html",
	"html/employees.html",
	"html/attendance.html",
	"html/dashboard.html",
))

var (
	dashboardPage      = page("page_dashboard.html")
	employeesPage      = page("page_employees.html")
	attendancePage     = page("page_attendance.html")
	employeeDetailPage = page("page_employee_detail.html")
)

// page clones the shared set and adds the file defining "content".
func page(file string) *template.Template {
	return template.Must(template.Must(base.Clone()).ParseFS(files, "html/"+file))
}

type layoutData struct {
	Title  string
	Active string
	Body   any
}

func layout(t *template.Template, title, active string, body any) templ.Component {
	return templ.FromGoHTML(t.Lookup("layout"), layoutData{Title: title, Active: active, Body: body})
}

func fragment(name string, data any) templ.Component {
	return templ.FromGoHTML(base.Lookup(name), data)
}

func Dashboard() templ.Component {
	return layout(dashboardPage, "Dashboard", "dashboard", nil)
}

func DashboardStats(v pages.DashboardView) templ.Component {
	return fragment("dashboard-stats", v)
}

// Employees is the employees page with the create form in its modal.
func Employees(form pages.EmployeeFormView) templ.Component {
	return layout(employeesPage, "Employees", "employees", form)
}

func EmployeesTable(v pages.EmployeesView) templ.Component {
	return fragment("employees-table", v)
}

func EmployeeForm(v pages.EmployeeFormView) templ.Component {
	return fragment("employee-form", v)
}

func EmployeeDetail(v pages.EmployeeDetailView) templ.Component {
	title := "Employee"
	if v.Employee != nil {
		title = v.Employee.FullName
	}
	return layout(employeeDetailPage, title, "employees", v)
}

// Attendance is the attendance page with the mark-attendance form in its
// modal.
func Attendance(form pages.AttendanceFormView) templ.Component {
	return layout(attendancePage, "Attendance", "attendance", form)
}

// AttendanceView is the filter bar and table, plus an out-of-band refresh of
// the form's employee select.
func AttendanceView(v pages.AttendanceView) templ.Component {
	return fragment("attendance-view", v)
}

func AttendanceForm(v pages.AttendanceFormView) templ.Component {
	return fragment("attendance-form", v)
}
