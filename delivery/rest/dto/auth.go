package dto

// RegisterRequest creates an account. Field rules are enforced by the auth
// service so that the messages match the login form.
type RegisterRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
}

// LoginRequest opens a session for a registered email
type LoginRequest struct {
	Email string `json:"email"`
}
