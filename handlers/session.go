package handlers

import (
	"net/http"
	"time"

	"github.com/andrewpaige1/questionbank-console/auth"
	"github.com/andrewpaige1/questionbank-console/models"
)

type sessionResponse struct {
	auth.State
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (h *ConsoleHandler) sessionBody() sessionResponse {
	state := h.Session.State()
	resp := sessionResponse{State: state}
	if exp, ok := auth.TokenExpiry(state.Token); ok {
		resp.ExpiresAt = &exp
	}
	return resp
}

func (h *ConsoleHandler) mirrorCookie(w http.ResponseWriter) {
	c := h.Session.Cookie()
	if c == nil {
		return
	}
	c.Domain = h.Cookies.Domain
	c.Secure = h.Cookies.Secure
	http.SetCookie(w, c)
}

// POST /login
func (h *ConsoleHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "Login", err)
		return
	}

	if !h.Session.Login(r.Context(), req.Email, req.Password) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: h.Session.State().Error})
		return
	}

	h.mirrorCookie(w)
	writeJSON(w, http.StatusOK, h.sessionBody())
}

// POST /register
func (h *ConsoleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "Register", err)
		return
	}

	if !h.Session.Register(r.Context(), req.Name, req.Email, req.Password) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: h.Session.State().Error})
		return
	}

	h.mirrorCookie(w)
	writeJSON(w, http.StatusCreated, h.sessionBody())
}

// POST /logout
func (h *ConsoleHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	h.Store.Reset()

	h.mirrorCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// GET /session
func (h *ConsoleHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessionBody())
}

// GET /session/verify asks the API about the current token and ends the
// session when it is rejected.
func (h *ConsoleHandler) VerifySession(w http.ResponseWriter, r *http.Request) {
	token := h.Session.Token()
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]bool{"valid": false})
		return
	}

	if !h.Verifier.VerifyToken(r.Context(), token) {
		h.Log.Info("VerifySession: token rejected, ending session")
		h.Session.Logout(r.Context())
		h.mirrorCookie(w)
		writeJSON(w, http.StatusOK, map[string]bool{"valid": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}
