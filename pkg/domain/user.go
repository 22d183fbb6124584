package domain

// User is the identity returned by the auth layer.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
