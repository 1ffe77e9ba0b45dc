package api

import (
	"net/http"
	"time"
)

// ShortURL is a link shortened by the backend.
type ShortURL struct {
	ID          string    `json:"id" validate:"required"`
	UserID      string    `json:"userId,omitempty"`
	OriginalURL string    `json:"originalUrl" validate:"required"`
	Redirects   int       `json:"redirects" validate:"gte=0"`
	Deactivated bool      `json:"deactivated"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	ID         string     `json:"id"`
	Username   string     `json:"username" validate:"required"`
	Email      string     `json:"email"`
	RegisterAt time.Time  `json:"registerAt"`
	DeleteAt   *time.Time `json:"deleteAt,omitempty"`
}

// Authentication is the result of a successful login or registration. Cookies
// hold the backend session and must be sent back with authenticated calls.
type Authentication struct {
	User    *User
	Cookies []*http.Cookie
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AfterLayout is the date layout (DD-MM-YYYY) of the "after" history filter.
const AfterLayout = "02-01-2006"

type ListQuery struct {
	Page     int
	PageSize int
	Query    string
	// After restricts the results to links created after the given day
	After *time.Time
}

type ListMeta struct {
	HasNext bool `json:"hasNext"`
}

type ListResult struct {
	Data []ShortURL `json:"data" validate:"dive"`
	Meta ListMeta   `json:"meta"`
}

type shortenRequest struct {
	OriginalURL string `json:"originalUrl"`
}
