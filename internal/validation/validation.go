// Package validation checks the create forms before anything is sent to the
// backend. Failures are reported per field, keyed by the form field name.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/csg33k/hrms-lite/internal/domain"
)

// emailPattern is deliberately loose: local@domain.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a form field name to its message. SubmitKey holds the
// error of the create call itself.
type FieldErrors map[string]string

const SubmitKey = "submit"

func (fe FieldErrors) Has(field string) bool {
	return fe[field] != ""
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// EmployeeForm is the create-employee form as posted by the browser.
type EmployeeForm struct {
	EmployeeID string `form:"employee_id" validate:"notblank"`
	FullName   string `form:"full_name" validate:"notblank"`
	Email      string `form:"email" validate:"notblank,simple_email"`
	Department string `form:"department" validate:"notblank"`
}

// ToNewEmployee returns the trimmed create payload.
func (f EmployeeForm) ToNewEmployee() domain.NewEmployee {
	return domain.NewEmployee{
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		FullName:   strings.TrimSpace(f.FullName),
		Email:      strings.TrimSpace(f.Email),
		Department: strings.TrimSpace(f.Department),
	}
}

// AttendanceForm is the mark-attendance form as posted by the browser.
type AttendanceForm struct {
	EmployeeID string                  `form:"employee_id" validate:"required"`
	Date       string                  `form:"date" validate:"required,datetime=2006-01-02,not_future"`
	Status     domain.AttendanceStatus `form:"status" validate:"oneof=Present Absent"`
}

// NewAttendanceForm returns the form in its reset state: no employee,
// today's date, status Present.
func NewAttendanceForm(now time.Time) AttendanceForm {
	return AttendanceForm{
		Date:   now.Format(domain.DateLayout),
		Status: domain.StatusPresent,
	}
}

func (f AttendanceForm) ToNewAttendance() domain.NewAttendance {
	return domain.NewAttendance{
		EmployeeID: f.EmployeeID,
		Date:       f.Date,
		Status:     f.Status,
	}
}

// messages holds the text shown for each field/tag failure.
var messages = map[string]map[string]string{
	"employee_id": {
		"notblank": "Employee ID is required",
	},
	"full_name": {
		"notblank": "Full name is required",
	},
	"email": {
		"notblank":     "Email is required",
		"simple_email": "Invalid email format",
	},
	"department": {
		"notblank": "Department is required",
	},
	"date": {
		"required":   "Date is required",
		"datetime":   "Invalid date",
		"not_future": "Date cannot be in the future",
	},
	"status": {
		"oneof": "Status must be Present or Absent",
	},
}

// attendanceMessages overrides the shared field names where the attendance
// form words things differently.
var attendanceMessages = map[string]map[string]string{
	"employee_id": {
		"required": "Please select an employee",
	},
}

type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New builds a validator. now supplies "today" for the future-date check.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = val.v.RegisterValidation("notblank", validators.NotBlank)
	_ = val.v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("not_future", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(domain.DateLayout, fl.Field().String())
		if err != nil {
			// datetime reports malformed dates
			return true
		}
		return !d.After(today(val.now()))
	})
	return val
}

// Today returns the picker maximum for attendance dates.
func (val *Validator) Today() string {
	return val.now().Format(domain.DateLayout)
}

// Employee validates the create-employee form. A nil result means the form
// may be submitted.
func (val *Validator) Employee(f EmployeeForm) FieldErrors {
	return val.check(f, nil)
}

// Attendance validates the mark-attendance form. An empty status is treated
// as Present.
func (val *Validator) Attendance(f *AttendanceForm) FieldErrors {
	if f.Status == "" {
		f.Status = domain.StatusPresent
	}
	return val.check(*f, attendanceMessages)
}

func (val *Validator) check(form any, overrides map[string]map[string]string) FieldErrors {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{SubmitKey: err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe.Tag(), overrides)
	}
	return out
}

func message(field, tag string, overrides map[string]map[string]string) string {
	if m, ok := overrides[field][tag]; ok {
		return m
	}
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return "Invalid value"
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
