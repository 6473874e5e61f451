package models

// Subject is a root-level taxonomy node. Nested subtopics are present when the
// server returns the full hierarchy.
type Subject struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subtopics []Subtopic `json:"subtopics,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

func (s Subject) EntityID() string { return s.ID }

type CreateSubjectRequest struct {
	Name string `json:"name"`
}

type UpdateSubjectRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

// Clone returns a copy that shares no nested subtopics with s.
func (s Subject) Clone() Subject {
	s.Subtopics = cloneSubtopics(s.Subtopics)
	return s
}
