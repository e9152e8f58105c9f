package models

// User is ephemeral session state carried in the auth token. Accounts are
// not persisted; orders denormalize the fields they need at checkout time.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
