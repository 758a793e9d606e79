package export

import (
	"context"
	"sort"
	"sync"
)

// MemoryHistoryRepo is an in-memory implementation of HistoryRepo.
type MemoryHistoryRepo struct {
	mu   sync.RWMutex
	data map[string][]HistoryRecord // userID -> records
}

// NewMemoryHistoryRepo constructs a MemoryHistoryRepo.
func NewMemoryHistoryRepo() *MemoryHistoryRepo {
	return &MemoryHistoryRepo{data: make(map[string][]HistoryRecord)}
}

// Create appends an export record for a user.
func (r *MemoryHistoryRepo) Create(ctx context.Context, rec HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = append(r.data[rec.UserID], rec)
	return nil
}

// ListByUser returns export records for a user, newest first.
func (r *MemoryHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error) {
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
		return []HistoryRecord{}, nil
	}

	recs := make([]HistoryRecord, len(userRecs))
	copy(recs, userRecs)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return recs[offset:end], nil
}
