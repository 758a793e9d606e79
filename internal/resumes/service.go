package resumes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-builder/resume/model"
	tpl "resume-builder/resume/template"
)

// Service contains business logic for stored resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create stores a new resume for a user.
func (s *Service) Create(ctx context.Context, userID string, data model.Resume) (Record, error) {
	if userID == "" {
		return Record{}, errors.New("user id required")
	}

	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     data.Title,
		Template:  tpl.Lookup(data.Template).ID,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userID, id string) (Record, error) {
	if userID == "" || id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns resumes for a user, most recently updated first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Update replaces the content of a stored resume.
func (s *Service) Update(ctx context.Context, userID, id string, data model.Resume) (Record, error) {
	if userID == "" || id == "" {
		return Record{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Record{}, err
	}

	existing.Title = data.Title
	existing.Template = tpl.Lookup(data.Template).ID
	existing.Data = data
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Record{}, err
	}
	return existing, nil
}

// Delete removes a resume for a user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}
