package handlers

import (
	"net/http"

	"github.com/andrewpaige1/questionbank-console/auth"
	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/andrewpaige1/questionbank-console/tree"
)

type dashboardResponse struct {
	User      *models.User          `json:"user"`
	Subjects  int                   `json:"subjects"`
	Subtopics int                   `json:"subtopics"`
	Questions map[models.Status]int `json:"questions"`
	Errors    []string              `json:"errors,omitempty"`
}

// GET /
// Nothing is decided until the persisted session has been read.
func (h *ConsoleHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := h.Session.State()
	switch state.Decide() {
	case auth.Wait:
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "session is still loading"})
		return
	case auth.RedirectLogin:
		http.Redirect(w, r, h.LoginPath, http.StatusSeeOther)
		return
	}

	if err := h.Store.LoadCatalog(r.Context()); err != nil {
		h.Log.WithError(err).Warn("Dashboard: catalog load incomplete")
	}

	resp := dashboardResponse{
		User:      state.User,
		Questions: h.Store.Questions.CountByStatus(),
	}
	resp.Subjects, resp.Subtopics = tree.Count(h.Store.Tree())
	for _, msg := range []string{h.Store.Subjects.State().Error, h.Store.Questions.State().Error} {
		if msg != "" {
			resp.Errors = append(resp.Errors, msg)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /tree
func (h *ConsoleHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" || len(h.Store.Subjects.State().Items) == 0 {
		if _, err := h.Store.Subjects.List(r.Context()); err != nil {
			h.writeError(w, "GetTree", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.Store.Tree())
}
