package models

// Subtopic belongs to exactly one subject and optionally nests under another
// subtopic of the same subject.
type Subtopic struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	SubjectID string     `json:"subjectId,omitempty"`
	ParentID  string     `json:"parentId,omitempty"`
	Subtopics []Subtopic `json:"subtopics,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

func (s Subtopic) EntityID() string { return s.ID }

type CreateSubtopicRequest struct {
	Name      string `json:"name"`
	SubjectID string `json:"subjectId,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
}

type UpdateSubtopicRequest struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	SubjectID string `json:"subjectId,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
}

// MoveSubtopicRequest re-parents a subtopic. Only the service exposes it.
type MoveSubtopicRequest struct {
	ParentID  string `json:"parentId,omitempty"`
	SubjectID string `json:"subjectId,omitempty"`
}

// Clone returns a copy that shares no nested subtopics with s.
func (s Subtopic) Clone() Subtopic {
	s.Subtopics = cloneSubtopics(s.Subtopics)
	return s
}

func cloneSubtopics(in []Subtopic) []Subtopic {
	if in == nil {
		return nil
	}
	out := make([]Subtopic, len(in))
	for i, st := range in {
		out[i] = st.Clone()
	}
	return out
}
