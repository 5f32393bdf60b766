package models

// User is the authenticated dashboard operator, carried in session tokens.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
