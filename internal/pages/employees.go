package pages

import (
	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/validation"
)

const EmployeesEmptyMessage = "No employees found. Add your first employee to get started."

// EmployeesView is the employees table fragment. Error, when set, is shown
// above the table, which then holds the last successful (possibly empty)
// list.
type EmployeesView struct {
	Employees []domain.EmployeeWithStats
	Error     string
}

func (v EmployeesView) Empty() bool { return len(v.Employees) == 0 }

func (v EmployeesView) EmptyMessage() string { return EmployeesEmptyMessage }

// EmployeeFormView is the create-employee modal body.
type EmployeeFormView struct {
	Form   validation.EmployeeForm
	Errors validation.FieldErrors
}

// SubmitError is the create call's failure, if any.
func (v EmployeeFormView) SubmitError() string {
	return v.Errors.Get(validation.SubmitKey)
}

// NewEmployeeFormView is the reset form shown when the modal opens and after
// a successful create.
func NewEmployeeFormView() EmployeeFormView {
	return EmployeeFormView{}
}

// DeleteConfirmation is the prompt shown before an employee is deleted.
func DeleteConfirmation(fullName string) string {
	return "Are you sure you want to delete " + fullName + "?"
}

// DeleteFailure is the blocking alert raised when a delete fails.
func DeleteFailure(message string) string {
	return "Error deleting employee: " + message
}
