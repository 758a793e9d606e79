package resumes

import "context"

// Repo defines persistence operations for stored resumes.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, userID, id string) (Record, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, userID, id string) error
}
