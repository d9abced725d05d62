package domain

import "time"

// EmployeeName resolves an attendance record's employee reference against
// the most recently fetched employee list. The lookup is a linear scan; a
// missing employee yields UnknownEmployee rather than an error.
func EmployeeName(employees []Employee, id string) string {
	for _, e := range employees {
		if e.ID == id {
			return e.FullName
		}
	}
	return UnknownEmployee
}

// CountStatus returns how many records carry the given status.
func CountStatus(records []AttendanceRecord, status AttendanceStatus) int {
	n := 0
	for _, r := range records {
		if r.Status == status {
			n++
		}
	}
	return n
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
