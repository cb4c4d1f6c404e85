package services

import (
	"context"

	"github.com/sohagbhuiyan/portfolio-api/internal/content"
	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
)

// ContentService serves read-only views of the profile document
type ContentService struct {
	store *content.Store
}

// NewContentService creates a new content service instance
func NewContentService(store *content.Store) *ContentService {
	return &ContentService{store: store}
}

func (s *ContentService) IsReady() bool {
	return s.store.IsReady()
}

func (s *ContentService) profile(section string) (*models.Profile, error) {
	p := s.store.Profile()
	if p == nil {
		return nil, apperrors.InternalError("profile content not loaded")
	}
	metrics.ContentRequests.WithLabelValues(section).Inc()
	return p, nil
}

func (s *ContentService) GetProfile(_ context.Context) (*models.Profile, error) {
	return s.profile("profile")
}

func (s *ContentService) GetExperiences(_ context.Context) ([]models.Experience, error) {
	p, err := s.profile("experiences")
	if err != nil {
		return nil, err
	}
	return p.Experiences, nil
}

func (s *ContentService) GetProjects(_ context.Context) ([]models.Project, error) {
	p, err := s.profile("projects")
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}

// GetProjectByID returns ErrNotFound for unknown ids
func (s *ContentService) GetProjectByID(_ context.Context, id string) (*models.Project, error) {
	p, err := s.profile("project")
	if err != nil {
		return nil, err
	}
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, apperrors.NotFoundError("project")
}

func (s *ContentService) GetSkills(_ context.Context) ([]models.Skill, error) {
	p, err := s.profile("skills")
	if err != nil {
		return nil, err
	}
	return p.Skills, nil
}

func (s *ContentService) GetEducation(_ context.Context) ([]models.Education, error) {
	p, err := s.profile("education")
	if err != nil {
		return nil, err
	}
	return p.Education, nil
}
