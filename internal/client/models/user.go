// Package models defines the client-side records of recipebox: users,
// catalog recipes, ingredients and shopping list items.
package models

import "time"

// User is the public view of a registered account. Users are never mutated
// after registration.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredUser is the persisted form of a User. Salt and Verifier are only
// filled when the account was registered under the verify password policy.
type StoredUser struct {
	User
	Salt     []byte `json:"salt,omitempty"`
	Verifier []byte `json:"verifier,omitempty"`
}

// Theme is the UI colour preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
