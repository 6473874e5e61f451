package handlers

import (
	"net/http"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/andrewpaige1/questionbank-console/validation"
)

// GET /questions, optionally filtered by ?subjectId= or ?subtopicId=.
func (h *ConsoleHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	var (
		questions []models.Question
		err       error
	)
	q := r.URL.Query()
	switch {
	case q.Get("subtopicId") != "":
		questions, err = h.Store.Questions.ListBySubtopic(r.Context(), q.Get("subtopicId"))
	case q.Get("subjectId") != "":
		questions, err = h.Store.Questions.ListBySubject(r.Context(), q.Get("subjectId"))
	default:
		questions, err = h.Store.Questions.List(r.Context())
	}
	if err != nil {
		h.writeError(w, "ListQuestions", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(questions))
}

// POST /questions
func (h *ConsoleHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "CreateQuestion", err)
		return
	}
	req = validation.Normalize(req)
	if err := h.Validator.ValidateQuestion(req); err != nil {
		h.writeError(w, "CreateQuestion", err)
		return
	}

	question, err := h.Store.Questions.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, "CreateQuestion", err)
		return
	}
	h.Log.WithField("question_id", question.ID).Info("CreateQuestion: created")
	writeJSON(w, http.StatusCreated, question)
}

// GET /questions/{id}
func (h *ConsoleHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.Store.Questions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "GetQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// PATCH /questions/{id}
// The patch is validated merged over the current question, fetched first
// when the store does not hold it.
func (h *ConsoleHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, "UpdateQuestion", err)
		return
	}
	req.ID = r.PathValue("id")
	req = validation.NormalizeUpdate(req)

	base, ok := h.cachedQuestion(req.ID)
	if !ok {
		var err error
		if base, err = h.Store.Questions.Get(r.Context(), req.ID); err != nil {
			h.writeError(w, "UpdateQuestion", err)
			return
		}
	}
	if err := h.Validator.ValidateUpdate(base, req); err != nil {
		h.writeError(w, "UpdateQuestion", err)
		return
	}

	question, err := h.Store.Questions.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, "UpdateQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// DELETE /questions/{id}
func (h *ConsoleHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Questions.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, "DeleteQuestion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConsoleHandler) cachedQuestion(id string) (models.Question, bool) {
	state := h.Store.Questions.State()
	if state.Selected != nil && state.Selected.ID == id {
		return *state.Selected, true
	}
	for _, q := range state.Items {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
