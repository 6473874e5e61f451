package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/andrewpaige1/questionbank-console/tree"
	"github.com/andrewpaige1/questionbank-console/validation"
)

// GET /subtopics
func (h *ConsoleHandler) ListSubtopics(w http.ResponseWriter, r *http.Request) {
	subtopics, err := h.Store.Subtopics.List(r.Context())
	if err != nil {
		h.writeError(w, "ListSubtopics", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(subtopics))
}

// POST /subtopics
// A subtopic created under a parent inherits the parent's subject when the
// request does not name one.
func (h *ConsoleHandler) CreateSubtopic(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubtopicRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "CreateSubtopic", err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.SubjectID = strings.TrimSpace(req.SubjectID)
	req.ParentID = strings.TrimSpace(req.ParentID)
	if err := h.Validator.ValidateName(req.Name); err != nil {
		h.writeError(w, "CreateSubtopic", err)
		return
	}

	if req.SubjectID == "" && req.ParentID != "" {
		if subjectID, ok := tree.ParentSubjectID(h.Store.Subjects.State().Items, req.ParentID, models.NodeSubtopic); ok {
			req.SubjectID = subjectID
		}
	}
	if req.SubjectID == "" {
		h.writeError(w, "CreateSubtopic", validation.Errors{"subjectId": "subjectId is required"})
		return
	}

	subtopic, err := h.Store.Subtopics.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, "CreateSubtopic", err)
		return
	}
	h.Log.WithField("subtopic_id", subtopic.ID).Info("CreateSubtopic: created")
	writeJSON(w, http.StatusCreated, subtopic)
}

// GET /subtopics/{id}
func (h *ConsoleHandler) GetSubtopic(w http.ResponseWriter, r *http.Request) {
	subtopic, err := h.Store.Subtopics.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "GetSubtopic", err)
		return
	}
	writeJSON(w, http.StatusOK, subtopic)
}

// PATCH /subtopics/{id}
func (h *ConsoleHandler) UpdateSubtopic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSubtopicRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "UpdateSubtopic", err)
		return
	}
	req.ID = r.PathValue("id")
	req.Name = strings.TrimSpace(req.Name)
	if err := h.Validator.ValidateName(req.Name); err != nil {
		h.writeError(w, "UpdateSubtopic", err)
		return
	}

	subtopic, err := h.Store.Subtopics.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, "UpdateSubtopic", err)
		return
	}
	writeJSON(w, http.StatusOK, subtopic)
}

// DELETE /subtopics/{id}
func (h *ConsoleHandler) DeleteSubtopic(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Subtopics.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, "DeleteSubtopic", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /subtopics/{id}/children
func (h *ConsoleHandler) ListSubtopicChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.Children.ListChildren(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "ListSubtopicChildren", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(children))
}
