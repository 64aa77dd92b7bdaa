package models

import "time"

type User struct {
	ID          int       `json:"id"`
	ExternalID  string    `json:"external_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Identity is the caller as resolved by the auth layer. Elevated identities
// may hold several brackets per season and manage outcomes.
type Identity struct {
	Subject     string
	DisplayName string
	Elevated    bool
}
