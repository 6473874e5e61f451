// Package tree derives the subject/subtopic hierarchy view model from the
// nested subject list returned by the catalog API.
package tree

import "github.com/andrewpaige1/questionbank-console/models"

// Build emits one subject node per subject with its subtopics converted
// recursively. Every subtopic node carries the id of its top-level subject,
// whatever its depth.
func Build(subjects []models.Subject) []models.TreeNode {
	nodes := make([]models.TreeNode, 0, len(subjects))
	for _, subject := range subjects {
		nodes = append(nodes, models.TreeNode{
			ID:       subject.ID,
			Name:     subject.Name,
			Type:     models.NodeSubject,
			Children: subtopicNodes(subject.ID, subject.Subtopics),
		})
	}
	return nodes
}

func subtopicNodes(subjectID string, subtopics []models.Subtopic) []models.TreeNode {
	nodes := make([]models.TreeNode, 0, len(subtopics))
	for _, subtopic := range subtopics {
		nodes = append(nodes, models.TreeNode{
			ID:        subtopic.ID,
			Name:      subtopic.Name,
			Type:      models.NodeSubtopic,
			SubjectID: subjectID,
			ParentID:  subtopic.ParentID,
			Children:  subtopicNodes(subjectID, subtopic.Subtopics),
		})
	}
	return nodes
}

// FindSubtopic searches the forest depth-first for id.
func FindSubtopic(subtopics []models.Subtopic, id string) (*models.Subtopic, bool) {
	for i := range subtopics {
		if subtopics[i].ID == id {
			return &subtopics[i], true
		}
		if found, ok := FindSubtopic(subtopics[i].Subtopics, id); ok {
			return found, true
		}
	}
	return nil, false
}

// SubjectIDFor returns the subject that owns subtopicID anywhere in its tree.
func SubjectIDFor(subjects []models.Subject, subtopicID string) (string, bool) {
	for _, subject := range subjects {
		if _, ok := FindSubtopic(subject.Subtopics, subtopicID); ok {
			return subject.ID, true
		}
	}
	return "", false
}

// ParentSubjectID resolves the subject a new child of parentID belongs to.
func ParentSubjectID(subjects []models.Subject, parentID string, parentType models.NodeType) (string, bool) {
	if parentType == models.NodeSubject {
		return parentID, parentID != ""
	}
	return SubjectIDFor(subjects, parentID)
}

// Count returns the number of subject and subtopic nodes in the tree.
func Count(nodes []models.TreeNode) (subjects, subtopics int) {
	for _, node := range nodes {
		if node.Type == models.NodeSubject {
			subjects++
		} else {
			subtopics++
		}
		s, st := Count(node.Children)
		subjects += s
		subtopics += st
	}
	return subjects, subtopics
}
