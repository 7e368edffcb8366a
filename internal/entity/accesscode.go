package entity

import "time"

// AccessCode is a one-time login code, kept in Redis under the requesting
// email with a TTL matching ExpiresAt.
type AccessCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c AccessCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
