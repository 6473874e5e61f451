package store

import (
	"context"
	"errors"

	"github.com/andrewpaige1/questionbank-console/models"
)

var errNotImplemented = errors.New("not implemented")

type fakeSubjects struct {
	listFunc   func(ctx context.Context) ([]models.Subject, error)
	getFunc    func(ctx context.Context, id string) (models.Subject, error)
	createFunc func(ctx context.Context, req models.CreateSubjectRequest) (models.Subject, error)
	updateFunc func(ctx context.Context, req models.UpdateSubjectRequest) (models.Subject, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeSubjects) List(ctx context.Context) ([]models.Subject, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (f *fakeSubjects) Get(ctx context.Context, id string) (models.Subject, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return models.Subject{}, errNotImplemented
}

func (f *fakeSubjects) Create(ctx context.Context, req models.CreateSubjectRequest) (models.Subject, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, req)
	}
	return models.Subject{}, errNotImplemented
}

func (f *fakeSubjects) Update(ctx context.Context, req models.UpdateSubjectRequest) (models.Subject, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, req)
	}
	return models.Subject{}, errNotImplemented
}

func (f *fakeSubjects) Delete(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

type fakeSubtopics struct {
	listFunc          func(ctx context.Context) ([]models.Subtopic, error)
	listBySubjectFunc func(ctx context.Context, subjectID string) ([]models.Subtopic, error)
	getFunc           func(ctx context.Context, id string) (models.Subtopic, error)
	createFunc        func(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error)
	updateFunc        func(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error)
	deleteFunc        func(ctx context.Context, id string) error
}

func (f *fakeSubtopics) List(ctx context.Context) ([]models.Subtopic, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (f *fakeSubtopics) ListBySubject(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
	if f.listBySubjectFunc != nil {
		return f.listBySubjectFunc(ctx, subjectID)
	}
	return nil, errNotImplemented
}

func (f *fakeSubtopics) Get(ctx context.Context, id string) (models.Subtopic, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return models.Subtopic{}, errNotImplemented
}

func (f *fakeSubtopics) Create(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, req)
	}
	return models.Subtopic{}, errNotImplemented
}

func (f *fakeSubtopics) Update(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, req)
	}
	return models.Subtopic{}, errNotImplemented
}

func (f *fakeSubtopics) Delete(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

type fakeQuestions struct {
	listFunc           func(ctx context.Context) ([]models.Question, error)
	listBySubjectFunc  func(ctx context.Context, subjectID string) ([]models.Question, error)
	listBySubtopicFunc func(ctx context.Context, subtopicID string) ([]models.Question, error)
	getFunc            func(ctx context.Context, id string) (models.Question, error)
	createFunc         func(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error)
	updateFunc         func(ctx context.Context, req models.UpdateQuestionRequest) (models.Question, error)
	deleteFunc         func(ctx context.Context, id string) error
}

func (f *fakeQuestions) List(ctx context.Context) ([]models.Question, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (f *fakeQuestions) ListBySubject(ctx context.Context, subjectID string) ([]models.Question, error) {
	if f.listBySubjectFunc != nil {
		return f.listBySubjectFunc(ctx, subjectID)
	}
	return nil, errNotImplemented
}

func (f *fakeQuestions) ListBySubtopic(ctx context.Context, subtopicID string) ([]models.Question, error) {
	if f.listBySubtopicFunc != nil {
		return f.listBySubtopicFunc(ctx, subtopicID)
	}
	return nil, errNotImplemented
}

func (f *fakeQuestions) Get(ctx context.Context, id string) (models.Question, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return models.Question{}, errNotImplemented
}

func (f *fakeQuestions) Create(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, req)
	}
	return models.Question{}, errNotImplemented
}

func (f *fakeQuestions) Update(ctx context.Context, req models.UpdateQuestionRequest) (models.Question, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, req)
	}
	return models.Question{}, errNotImplemented
}

func (f *fakeQuestions) Delete(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return errNotImplemented
}
