package store

import (
	"context"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/andrewpaige1/questionbank-console/tree"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Store is the console's domain store. It is built once at startup and handed
// to whatever needs it; there is no package-level instance.
type Store struct {
	Subjects  *Subjects
	Subtopics *Subtopics
	Questions *Questions
}

func New(subjects SubjectService, subtopics SubtopicService, questions QuestionService, log *logrus.Entry) *Store {
	return &Store{
		Subjects:  NewSubjects(subjects, log),
		Subtopics: NewSubtopics(subtopics, log),
		Questions: NewQuestions(questions, log),
	}
}

// LoadCatalog refreshes the subject and question lists concurrently. A
// failure in one list does not cancel the other.
func (s *Store) LoadCatalog(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := s.Subjects.List(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Questions.List(ctx)
		return err
	})
	return g.Wait()
}

// Reset empties every slice, as on sign-out.
func (s *Store) Reset() {
	s.Subjects.Reset()
	s.Subtopics.Reset()
	s.Questions.Reset()
}

// Tree assembles the hierarchy from the current subject list.
func (s *Store) Tree() []models.TreeNode {
	return tree.Build(s.Subjects.State().Items)
}
