package users

import (
	"context"
	"errors"
	"strings"

	tpl "resume-builder/resume/template"
)

var ErrUnknownTemplate = errors.New("unknown template")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the OAuth identity so resumes and export history
// have a stable owner across logins.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// SetDefaultTemplate saves the template the editor preselects for new
// resumes. The identifier must name a registered template; this is a saved
// preference, so unknown values are rejected rather than silently mapped to
// the fallback.
func (s *Service) SetDefaultTemplate(ctx context.Context, userID, template string) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if tpl.Lookup(template).ID != template {
		return ErrUnknownTemplate
	}
	return s.Repo.SetDefaultTemplate(ctx, userID, template)
}
