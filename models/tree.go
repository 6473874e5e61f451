package models

type NodeType string

const (
	NodeSubject  NodeType = "subject"
	NodeSubtopic NodeType = "subtopic"
)

// TreeNode is the view model of the subject/subtopic hierarchy.
type TreeNode struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      NodeType   `json:"type"`
	Children  []TreeNode `json:"children"`
	SubjectID string     `json:"subjectId,omitempty"`
	ParentID  string     `json:"parentId,omitempty"`
}
