package services

import (
	"context"
	"net/url"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/models"
)

type Subjects struct {
	client *api.Client
}

func NewSubjects(client *api.Client) *Subjects {
	return &Subjects{client: client}
}

func (s *Subjects) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.client.Get(ctx, "/subjects", &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *Subjects) Get(ctx context.Context, id string) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Get(ctx, "/subjects/"+url.PathEscape(id), &subject)
	return subject, err
}

func (s *Subjects) Create(ctx context.Context, req models.CreateSubjectRequest) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Post(ctx, "/subjects", req, &subject)
	return subject, err
}

func (s *Subjects) Update(ctx context.Context, req models.UpdateSubjectRequest) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Patch(ctx, "/subjects/"+url.PathEscape(req.ID), req, &subject)
	return subject, err
}

func (s *Subjects) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/subjects/"+url.PathEscape(id))
}
