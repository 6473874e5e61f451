package handlers

import "net/http"

// Routes registers every console endpoint on a new mux. Health and metrics
// are mounted by the caller outside the route guard.
func (h *ConsoleHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Session
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /session", h.GetSession)
	mux.HandleFunc("GET /session/verify", h.VerifySession)

	// Dashboard
	mux.HandleFunc("GET /{$}", h.Dashboard)
	mux.HandleFunc("GET /tree", h.GetTree)

	// Subjects
	mux.HandleFunc("GET /subjects", h.ListSubjects)
	mux.HandleFunc("POST /subjects", h.CreateSubject)
	mux.HandleFunc("GET /subjects/{id}", h.GetSubject)
	mux.HandleFunc("PATCH /subjects/{id}", h.UpdateSubject)
	mux.HandleFunc("DELETE /subjects/{id}", h.DeleteSubject)
	mux.HandleFunc("GET /subjects/{id}/subtopics", h.ListSubjectSubtopics)

	// Subtopics
	mux.HandleFunc("GET /subtopics", h.ListSubtopics)
	mux.HandleFunc("POST /subtopics", h.CreateSubtopic)
	mux.HandleFunc("GET /subtopics/{id}", h.GetSubtopic)
	mux.HandleFunc("PATCH /subtopics/{id}", h.UpdateSubtopic)
	mux.HandleFunc("DELETE /subtopics/{id}", h.DeleteSubtopic)
	mux.HandleFunc("GET /subtopics/{id}/children", h.ListSubtopicChildren)

	// Questions
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateQuestion)
	mux.HandleFunc("GET /questions/{id}", h.GetQuestion)
	mux.HandleFunc("PATCH /questions/{id}", h.UpdateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)

	return mux
}
