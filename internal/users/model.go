package users

import "time"

// User is a signed-in account. Guests never get a row here; their identity
// lives only in the request context.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	PictureURL      string    `json:"pictureUrl"`
	DefaultTemplate string    `json:"defaultTemplate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
