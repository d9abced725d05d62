package pages

import "github.com/csg33k/hrms-lite/internal/domain"

// StatCard is one summary tile on the dashboard.
type StatCard struct {
	Title string
	Value int
	Icon  string // icon key understood by the stat-card template
	Color string // tailwind background class
}

// DashboardView either holds stats or an error; an error replaces the whole
// dashboard body.
type DashboardView struct {
	Stats *domain.DashboardStats
	Error string
}

// Cards returns the four summary tiles in display order. Missing stats
// render as zeros.
func (v DashboardView) Cards() []StatCard {
	var s domain.DashboardStats
	if v.Stats != nil {
		s = *v.Stats
	}
	return []StatCard{
		{Title: "Total Employees", Value: s.TotalEmployees, Icon: "users", Color: "bg-blue-500"},
		{Title: "Attendance Records", Value: s.TotalAttendanceRecords, Icon: "calendar", Color: "bg-purple-500"},
		{Title: "Present Today", Value: s.PresentToday, Icon: "check", Color: "bg-green-500"},
		{Title: "Absent Today", Value: s.AbsentToday, Icon: "x", Color: "bg-red-500"},
	}
}
