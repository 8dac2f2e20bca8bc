package models

// Identity is the authenticated caller as resolved from the bearer token.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
