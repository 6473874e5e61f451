package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/questionbank-console/models"
)

// GET /subjects
func (h *ConsoleHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.Store.Subjects.List(r.Context())
	if err != nil {
		h.writeError(w, "ListSubjects", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(subjects))
}

// POST /subjects
func (h *ConsoleHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubjectRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "CreateSubject", err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := h.Validator.ValidateName(req.Name); err != nil {
		h.writeError(w, "CreateSubject", err)
		return
	}

	subject, err := h.Store.Subjects.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, "CreateSubject", err)
		return
	}
	h.Log.WithField("subject_id", subject.ID).Info("CreateSubject: created")
	writeJSON(w, http.StatusCreated, subject)
}

// GET /subjects/{id}
func (h *ConsoleHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subject, err := h.Store.Subjects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "GetSubject", err)
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

// PATCH /subjects/{id}
func (h *ConsoleHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSubjectRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "UpdateSubject", err)
		return
	}
	req.ID = r.PathValue("id")
	req.Name = strings.TrimSpace(req.Name)
	if err := h.Validator.ValidateName(req.Name); err != nil {
		h.writeError(w, "UpdateSubject", err)
		return
	}

	subject, err := h.Store.Subjects.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, "UpdateSubject", err)
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

// DELETE /subjects/{id}
func (h *ConsoleHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Store.Subjects.Delete(r.Context(), id); err != nil {
		h.writeError(w, "DeleteSubject", err)
		return
	}
	h.Store.Subtopics.DropSubject(id)
	w.WriteHeader(http.StatusNoContent)
}

// GET /subjects/{id}/subtopics serves the cached bucket unless it is missing
// or ?refresh=true is given.
func (h *ConsoleHandler) ListSubjectSubtopics(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if r.URL.Query().Get("refresh") != "true" {
		if cached, ok := h.Store.Subtopics.Cached(id); ok {
			writeJSON(w, http.StatusOK, orEmpty(cached))
			return
		}
	}

	subtopics, err := h.Store.Subtopics.ListBySubject(r.Context(), id)
	if err != nil {
		h.writeError(w, "ListSubjectSubtopics", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(subtopics))
}
