package devapi

import "github.com/csg33k/hrms-lite/internal/domain"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	FullName   string `json:"full_name" binding:"required,max=200"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,max=100"`
}

type CreateAttendanceRequest struct {
	EmployeeID string                  `json:"employee_id" binding:"required,uuid"`
	Date       string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Status     domain.AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
}

// Page is a skip/limit window.
type Page struct {
	Skip  int
	Limit int
}

const DefaultLimit = 100

type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
