// Package handlers exposes the console's store and session over HTTP. Handlers
// only translate requests into store operations and render the results.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/auth"
	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/andrewpaige1/questionbank-console/store"
	"github.com/andrewpaige1/questionbank-console/validation"
	"github.com/sirupsen/logrus"
)

// TokenVerifier asks the API whether a token is still accepted.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) bool
}

// ChildLister lists the direct children of a subtopic.
type ChildLister interface {
	ListChildren(ctx context.Context, parentID string) ([]models.Subtopic, error)
}

// CookiePolicy scopes the mirrored token cookie. An empty Domain leaves the
// cookie host-only.
type CookiePolicy struct {
	Domain string
	Secure bool
}

type ConsoleHandler struct {
	Store     *store.Store
	Session   *auth.Manager
	Validator *validation.Validator
	Verifier  TokenVerifier
	Children  ChildLister
	Log       *logrus.Entry
	LoginPath string
	Cookies   CookiePolicy
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields validation.Errors `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// orEmpty keeps list responses as JSON arrays even when the API sent null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError renders a store, validation or API failure as JSON with the
// closest HTTP status.
func (h *ConsoleHandler) writeError(w http.ResponseWriter, op string, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	status := http.StatusBadGateway
	msg := err.Error()
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		msg = storeErr.Message
	}

	switch {
	case errors.Is(err, store.ErrSuperseded):
		status = http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case api.IsNetwork(err):
		status = http.StatusBadGateway
	case api.StatusOf(err) >= 400:
		status = api.StatusOf(err)
	}

	h.Log.WithError(err).WithField("status", status).Warnf("%s: request failed", op)
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *ConsoleHandler) badRequest(w http.ResponseWriter, op string, err error) {
	h.Log.WithError(err).Debugf("%s: invalid request body", op)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}
