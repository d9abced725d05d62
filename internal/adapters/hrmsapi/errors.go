package hrmsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// DefaultMessage is used when neither the server nor the transport offer
// anything better.
const DefaultMessage = "An error occurred"

// Error is the single normalized failure returned by every client call.
type Error struct {
	Message    string // human-readable, safe to show in the UI
	StatusCode int    // 0 for transport failures
	Err        error  // underlying cause (optional)
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message extracts the display message from any error. Errors that did not
// come from the client fall back to their own text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultMessage
}

// errorBody is the backend's structured error payload. detail is usually a
// string but validation failures may report a list of entries.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type detailEntry struct {
	Msg string `json:"msg"`
}

// detailMessage pulls a human-readable message out of an error response
// body. It returns "" when the body carries no usable detail.
func detailMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var entries []detailEntry
	if err := json.Unmarshal(eb.Detail, &entries); err == nil {
		msgs := make([]string, 0, len(entries))
		for _, e := range entries {
			if m := strings.TrimSpace(e.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// statusError builds the error for a non-2xx response.
func statusError(status int, body []byte) *Error {
	msg := detailMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status code %d", status)
	}
	return &Error{Message: msg, StatusCode: status}
}

// transportError builds the error for a request that never produced a
// response.
func transportError(err error, timeout time.Duration) *Error {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Message: fmt.Sprintf("timeout of %dms exceeded", timeout.Milliseconds()), Err: err}
	case err != nil:
		return &Error{Message: "Network Error", Err: err}
	default:
		return &Error{Message: DefaultMessage}
	}
}
