package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// Record is a stored resume owned by a user. Data holds the resume content
// as supplied by the client; normalization happens at render time so edits
// round-trip without loss.
type Record struct {
	ID        string       `json:"id"`
	UserID    string       `json:"-"`
	Title     string       `json:"title"`
	Template  string       `json:"template"`
	Data      model.Resume `json:"data"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
