package domain

import "time"

// User is an account record. PasswordHash is empty for federated-login
// accounts, in which case Provider names the identity provider.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	IsSeller     bool      `json:"isSeller"`
	CreatedAt    time.Time `json:"createdAt"`
}
