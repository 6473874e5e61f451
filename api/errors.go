package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNetwork marks failures where the API could not be reached at all.
var ErrNetwork = errors.New("api: network error")

// Error is a non-2xx response from the catalog API.
type Error struct {
	Status  int
	Message string
	Reason  string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// ServerMessage returns the message field, falling back to the error field.
func (e *Error) ServerMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the server-provided message carried by err, or "".
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: body}

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}
	e.Reason = payload.Error

	// Validation failures come back with a list of messages.
	var single string
	var many []string
	switch {
	case json.Unmarshal(payload.Message, &single) == nil:
		e.Message = single
	case json.Unmarshal(payload.Message, &many) == nil:
		e.Message = strings.Join(many, "; ")
	}
	return e
}
