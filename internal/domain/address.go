package domain

import "time"

// Address is a shipping address captured at checkout. Addresses are
// insert-only: every order stores a fresh row and no row is mutated
// after creation.
type Address struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	ZipCode      string    `json:"zipCode"`
	PhoneNumber  string    `json:"phoneNumber"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}
