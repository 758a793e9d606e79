package export

import "time"

// HistoryRecord is one completed PDF export owned by a user.
type HistoryRecord struct {
	ID         string
	UserID     string
	ResumeID   string
	Template   string
	FileName   string
	SizeBytes  int64
	Pages      int
	Attempts   int
	DurationMS float64
	StorageKey string
	CreatedAt  time.Time
}
