package services

import (
	"context"
	"net/url"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/models"
)

type Questions struct {
	client *api.Client
}

func NewQuestions(client *api.Client) *Questions {
	return &Questions{client: client}
}

func (s *Questions) List(ctx context.Context) ([]models.Question, error) {
	return s.list(ctx, "/questions")
}

func (s *Questions) ListBySubject(ctx context.Context, subjectID string) ([]models.Question, error) {
	return s.list(ctx, "/questions/subject/"+url.PathEscape(subjectID))
}

func (s *Questions) ListBySubtopic(ctx context.Context, subtopicID string) ([]models.Question, error) {
	return s.list(ctx, "/questions/subtopic/"+url.PathEscape(subtopicID))
}

func (s *Questions) Get(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	err := s.client.Get(ctx, "/questions/"+url.PathEscape(id), &question)
	return question, err
}

func (s *Questions) Create(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error) {
	var question models.Question
	err := s.client.Post(ctx, "/questions", req, &question)
	return question, err
}

func (s *Questions) Update(ctx context.Context, req models.UpdateQuestionRequest) (models.Question, error) {
	var question models.Question
	err := s.client.Patch(ctx, "/questions/"+url.PathEscape(req.ID), req, &question)
	return question, err
}

func (s *Questions) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/questions/"+url.PathEscape(id))
}

func (s *Questions) list(ctx context.Context, path string) ([]models.Question, error) {
	var questions []models.Question
	if err := s.client.Get(ctx, path, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
