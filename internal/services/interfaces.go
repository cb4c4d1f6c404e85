package services

import (
	"context"

	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
)

// ContactServiceInterface defines the interface for contact service operations
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}

// ContentServiceInterface defines the read-only profile content operations
type ContentServiceInterface interface {
	IsReady() bool
	GetProfile(ctx context.Context) (*models.Profile, error)
	GetExperiences(ctx context.Context) ([]models.Experience, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetSkills(ctx context.Context) ([]models.Skill, error)
	GetEducation(ctx context.Context) ([]models.Education, error)
}

// EmailRelay delivers one contact message to the email provider
type EmailRelay interface {
	Submit(ctx context.Context, msg web3forms.Message) (*web3forms.Response, error)
}

// CaptchaVerifier checks a browser captcha token
type CaptchaVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) error
}

// Compile-time checks
var (
	_ ContactServiceInterface = (*ContactService)(nil)
	_ ContentServiceInterface = (*ContentService)(nil)
)
