package templates

import (
	"errors"
	"html/template"
	"time"

	"github.com/csg33k/hrms-lite/internal/domain"
	"github.com/csg33k/hrms-lite/internal/pages"
)

const displayDateLayout = "Jan 02, 2006"

var funcs = template.FuncMap{
	"dict":          dict,
	"formatDate":    formatDate,
	"statusClass":   statusClass,
	"icon":          icon,
	"deleteConfirm": pages.DeleteConfirmation,
}

// formatDate renders a YYYY-MM-DD date as "Jan 02, 2006". Unparseable values
// are shown as received.
func formatDate(s string) string {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format(displayDateLayout)
}

// statusClass is green for Present and red for anything else.
func statusClass(s domain.AttendanceStatus) string {
	if s == domain.StatusPresent {
		return "bg-green-100 text-green-800"
	}
	return "bg-red-100 text-red-800"
}

func icon(key string) string {
	switch key {
	case "users":
		return "\U0001F465"
	case "calendar":
		return "\U0001F4C5"
	case "check":
		return "✓"
	case "x":
		return "✕"
	}
	return "•"
}

// dict builds a map from alternating keys and values so a define can take
// several named arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}
