package entity

import "github.com/google/uuid"

// User is a registered planner account. Accounts are identified by email.
type User struct {
	ID          string `json:"id" db:"id"`
	Email       string `json:"email" db:"email"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	Name        string `json:"name" db:"name"`
	LoggedIn    bool   `json:"logged_in" db:"logged_in"`
}

// NewUser creates a logged-in user with a fresh id
func NewUser(email, phoneNumber, name string) User {
	return User{
		ID:          uuid.New().String(),
		Email:       email,
		PhoneNumber: phoneNumber,
		Name:        name,
		LoggedIn:    true,
	}
}
