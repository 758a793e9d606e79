package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Record // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Record),
	}
}

// Create stores a new resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = append(r.data[rec.UserID], rec)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			return recs[i], nil
		}
	}
	return Record{}, ErrNotFound
}

// ListByUser returns resumes for a user, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userRecs := r.data[userID]
	r.mu.RUnlock()

	if len(userRecs) == 0 || offset >= len(userRecs) {
		return []Record{}, nil
	}

	recs := make([]Record, len(userRecs))
	copy(recs, userRecs)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})

	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return recs[offset:end], nil
}

// Update replaces a stored resume.
func (r *MemoryRepo) Update(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.data[rec.UserID]
	for i := range recs {
		if recs[i].ID == rec.ID {
			recs[i] = rec
			r.data[rec.UserID] = recs
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a resume for a user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			r.data[userID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
