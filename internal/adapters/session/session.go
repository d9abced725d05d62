// Package session keeps per-browser page state between requests.
package session

const keyPrefix = "hrms:session:"

// Page names. Each page's state lives under its own key so that saving one
// page never overwrites another.
const (
	PageEmployees  = "employees"
	PageAttendance = "attendance"
)

// Key returns the storage key for one page of a session:
// hrms:session:{id}:{page}.
func Key(sessionID, page string) string {
	return keyPrefix + sessionID + ":" + page
}
