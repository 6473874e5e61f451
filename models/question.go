package models

type Alternative string

const (
	AlternativeA Alternative = "A"
	AlternativeB Alternative = "B"
	AlternativeC Alternative = "C"
	AlternativeD Alternative = "D"
	AlternativeE Alternative = "E"
)

type Status string

const (
	StatusDraft    Status = "rascunho"
	StatusApproved Status = "aprovado"
	StatusRejected Status = "reprovado"
)

// Difficulty labels are the values the catalog API stores.
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Média"
	DifficultyHard   = "Difícil"
)

// Question is a multiple-choice question tagged against the subject hierarchy.
type Question struct {
	ID                 string      `json:"id"`
	Statement          string      `json:"statement"`
	AlternativeA       string      `json:"alternativeA"`
	AlternativeB       string      `json:"alternativeB"`
	AlternativeC       string      `json:"alternativeC"`
	AlternativeD       string      `json:"alternativeD"`
	AlternativeE       string      `json:"alternativeE"`
	CorrectAlternative Alternative `json:"correctAlternative"`
	SubjectID          string      `json:"subjectId"`
	SubtopicID         string      `json:"subtopicId,omitempty"`
	Difficulty         string      `json:"difficulty"`
	Status             Status      `json:"status"`
	CreatedAt          string      `json:"createdAt,omitempty"`
	UpdatedAt          string      `json:"updatedAt,omitempty"`
}

func (q Question) EntityID() string { return q.ID }

// Alternatives returns the five alternative texts in A..E order.
func (q Question) Alternatives() [5]string {
	return [5]string{q.AlternativeA, q.AlternativeB, q.AlternativeC, q.AlternativeD, q.AlternativeE}
}

type CreateQuestionRequest struct {
	Statement          string      `json:"statement"`
	AlternativeA       string      `json:"alternativeA"`
	AlternativeB       string      `json:"alternativeB"`
	AlternativeC       string      `json:"alternativeC"`
	AlternativeD       string      `json:"alternativeD"`
	AlternativeE       string      `json:"alternativeE"`
	CorrectAlternative Alternative `json:"correctAlternative"`
	SubjectID          string      `json:"subjectId"`
	SubtopicID         string      `json:"subtopicId,omitempty"`
	Difficulty         string      `json:"difficulty"`
	Status             Status      `json:"status"`
}

// UpdateQuestionRequest is a partial update; nil fields are not sent.
type UpdateQuestionRequest struct {
	ID                 string       `json:"-"`
	Statement          *string      `json:"statement,omitempty"`
	AlternativeA       *string      `json:"alternativeA,omitempty"`
	AlternativeB       *string      `json:"alternativeB,omitempty"`
	AlternativeC       *string      `json:"alternativeC,omitempty"`
	AlternativeD       *string      `json:"alternativeD,omitempty"`
	AlternativeE       *string      `json:"alternativeE,omitempty"`
	CorrectAlternative *Alternative `json:"correctAlternative,omitempty"`
	SubjectID          *string      `json:"subjectId,omitempty"`
	SubtopicID         *string      `json:"subtopicId,omitempty"`
	Difficulty         *string      `json:"difficulty,omitempty"`
	Status             *Status      `json:"status,omitempty"`
}
