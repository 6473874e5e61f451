package store

import (
	"context"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/sirupsen/logrus"
)

type SubjectService interface {
	List(ctx context.Context) ([]models.Subject, error)
	Get(ctx context.Context, id string) (models.Subject, error)
	Create(ctx context.Context, req models.CreateSubjectRequest) (models.Subject, error)
	Update(ctx context.Context, req models.UpdateSubjectRequest) (models.Subject, error)
	Delete(ctx context.Context, id string) error
}

type SubjectState = State[models.Subject]

// Subjects is the subject slice.
type Subjects struct {
	svc SubjectService
	s   *slice[models.Subject]
}

func NewSubjects(svc SubjectService, log *logrus.Entry) *Subjects {
	return &Subjects{svc: svc, s: newSlice[models.Subject]("subjects", log)}
}

func (st *Subjects) State() SubjectState {
	return st.s.snapshot()
}

func (st *Subjects) List(ctx context.Context) ([]models.Subject, error) {
	token := st.s.begin()
	subjects, err := st.svc.List(ctx)
	err = st.s.settle(ctx, token, "fetchSubjects", read, err, "Failed to fetch subjects", func() {
		st.s.replaceItems(subjects)
	})
	return subjects, err
}

// Get fetches one subject into Selected.
func (st *Subjects) Get(ctx context.Context, id string) (models.Subject, error) {
	token := st.s.begin()
	subject, err := st.svc.Get(ctx, id)
	err = st.s.settle(ctx, token, "fetchSubjectById", read, err, "Failed to fetch subject", func() {
		st.s.selectItem(subject)
	})
	return subject, err
}

func (st *Subjects) Create(ctx context.Context, req models.CreateSubjectRequest) (models.Subject, error) {
	token := st.s.begin()
	subject, err := st.svc.Create(ctx, req)
	err = st.s.settle(ctx, token, "createSubject", write, err, "Failed to create subject", func() {
		st.s.appendItem(subject)
	})
	return subject, err
}

func (st *Subjects) Update(ctx context.Context, req models.UpdateSubjectRequest) (models.Subject, error) {
	token := st.s.begin()
	subject, err := st.svc.Update(ctx, req)
	err = st.s.settle(ctx, token, "updateSubject", write, err, "Failed to update subject", func() {
		st.s.replaceItem(subject)
	})
	return subject, err
}

func (st *Subjects) Delete(ctx context.Context, id string) error {
	token := st.s.begin()
	err := st.svc.Delete(ctx, id)
	return st.s.settle(ctx, token, "deleteSubject", write, err, "Failed to delete subject", func() {
		st.s.removeItem(id)
	})
}

// Select points the UI cursor at subject; nil clears it.
func (st *Subjects) Select(subject *models.Subject) { st.s.setSelected(subject) }

func (st *Subjects) ClearSelection() { st.s.setSelected(nil) }

func (st *Subjects) ClearError() { st.s.clearError() }

// Reset returns the slice to its initial state. Reads still in flight
// resolve as superseded.
func (st *Subjects) Reset() {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.reset()
}
