package services

import (
	"context"
	"net/url"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/models"
)

type Subtopics struct {
	client *api.Client
}

func NewSubtopics(client *api.Client) *Subtopics {
	return &Subtopics{client: client}
}

func (s *Subtopics) List(ctx context.Context) ([]models.Subtopic, error) {
	return s.list(ctx, "/subtopics")
}

func (s *Subtopics) ListBySubject(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
	return s.list(ctx, "/subtopics/subject/"+url.PathEscape(subjectID))
}

func (s *Subtopics) ListChildren(ctx context.Context, parentID string) ([]models.Subtopic, error) {
	return s.list(ctx, "/subtopics/"+url.PathEscape(parentID)+"/children")
}

func (s *Subtopics) Get(ctx context.Context, id string) (models.Subtopic, error) {
	var subtopic models.Subtopic
	err := s.client.Get(ctx, "/subtopics/"+url.PathEscape(id), &subtopic)
	return subtopic, err
}

func (s *Subtopics) Create(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error) {
	var subtopic models.Subtopic
	err := s.client.Post(ctx, "/subtopics", req, &subtopic)
	return subtopic, err
}

func (s *Subtopics) Update(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
	var subtopic models.Subtopic
	err := s.client.Patch(ctx, "/subtopics/"+url.PathEscape(req.ID), req, &subtopic)
	return subtopic, err
}

// Move re-parents a subtopic (drag and drop). No store action uses it yet.
func (s *Subtopics) Move(ctx context.Context, id string, req models.MoveSubtopicRequest) (models.Subtopic, error) {
	var subtopic models.Subtopic
	err := s.client.Put(ctx, "/subtopics/"+url.PathEscape(id)+"/move", req, &subtopic)
	return subtopic, err
}

func (s *Subtopics) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/subtopics/"+url.PathEscape(id))
}

func (s *Subtopics) list(ctx context.Context, path string) ([]models.Subtopic, error) {
	var subtopics []models.Subtopic
	if err := s.client.Get(ctx, path, &subtopics); err != nil {
		return nil, err
	}
	return subtopics, nil
}
