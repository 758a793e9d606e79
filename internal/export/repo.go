package export

import "context"

// HistoryRepo defines persistence operations for export history.
type HistoryRepo interface {
	Create(ctx context.Context, rec HistoryRecord) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error)
}
