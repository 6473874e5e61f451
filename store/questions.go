package store

import (
	"context"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/sirupsen/logrus"
)

type QuestionService interface {
	List(ctx context.Context) ([]models.Question, error)
	ListBySubject(ctx context.Context, subjectID string) ([]models.Question, error)
	ListBySubtopic(ctx context.Context, subtopicID string) ([]models.Question, error)
	Get(ctx context.Context, id string) (models.Question, error)
	Create(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error)
	Update(ctx context.Context, req models.UpdateQuestionRequest) (models.Question, error)
	Delete(ctx context.Context, id string) error
}

type QuestionState = State[models.Question]

// Questions is the question slice. The filtered lists replace Items just like
// the full list does.
type Questions struct {
	svc QuestionService
	s   *slice[models.Question]
}

func NewQuestions(svc QuestionService, log *logrus.Entry) *Questions {
	return &Questions{svc: svc, s: newSlice[models.Question]("questions", log)}
}

func (st *Questions) State() QuestionState {
	return st.s.snapshot()
}

func (st *Questions) List(ctx context.Context) ([]models.Question, error) {
	token := st.s.begin()
	questions, err := st.svc.List(ctx)
	return questions, st.settleList(ctx, token, "fetchQuestions", err, "Failed to fetch questions", questions)
}

func (st *Questions) ListBySubject(ctx context.Context, subjectID string) ([]models.Question, error) {
	token := st.s.begin()
	questions, err := st.svc.ListBySubject(ctx, subjectID)
	return questions, st.settleList(ctx, token, "fetchQuestionsBySubject", err, "Failed to fetch questions by subject", questions)
}

func (st *Questions) ListBySubtopic(ctx context.Context, subtopicID string) ([]models.Question, error) {
	token := st.s.begin()
	questions, err := st.svc.ListBySubtopic(ctx, subtopicID)
	return questions, st.settleList(ctx, token, "fetchQuestionsBySubtopic", err, "Failed to fetch questions by subtopic", questions)
}

func (st *Questions) settleList(ctx context.Context, token uint64, op string, err error, fallback string, questions []models.Question) error {
	return st.s.settle(ctx, token, op, read, err, fallback, func() {
		st.s.replaceItems(questions)
	})
}

func (st *Questions) Get(ctx context.Context, id string) (models.Question, error) {
	token := st.s.begin()
	question, err := st.svc.Get(ctx, id)
	err = st.s.settle(ctx, token, "fetchQuestionById", read, err, "Failed to fetch question", func() {
		st.s.selectItem(question)
	})
	return question, err
}

func (st *Questions) Create(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error) {
	token := st.s.begin()
	question, err := st.svc.Create(ctx, req)
	err = st.s.settle(ctx, token, "createQuestion", write, err, "Failed to create question", func() {
		st.s.appendItem(question)
	})
	return question, err
}

func (st *Questions) Update(ctx context.Context, req models.UpdateQuestionRequest) (models.Question, error) {
	token := st.s.begin()
	question, err := st.svc.Update(ctx, req)
	err = st.s.settle(ctx, token, "updateQuestion", write, err, "Failed to update question", func() {
		st.s.replaceItem(question)
	})
	return question, err
}

func (st *Questions) Delete(ctx context.Context, id string) error {
	token := st.s.begin()
	err := st.svc.Delete(ctx, id)
	return st.s.settle(ctx, token, "deleteQuestion", write, err, "Failed to delete question", func() {
		st.s.removeItem(id)
	})
}

func (st *Questions) Select(question *models.Question) { st.s.setSelected(question) }

func (st *Questions) ClearSelection() { st.s.setSelected(nil) }

func (st *Questions) ClearError() { st.s.clearError() }

// Reset returns the slice to its initial state. Reads still in flight
// resolve as superseded.
func (st *Questions) Reset() {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.reset()
}

// CountByStatus tallies the loaded questions per review status.
func (st *Questions) CountByStatus() map[models.Status]int {
	counts := map[models.Status]int{
		models.StatusDraft:    0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for _, q := range st.State().Items {
		counts[q.Status]++
	}
	return counts
}
