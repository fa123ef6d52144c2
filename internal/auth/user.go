package auth

// User is the identity asserted by the external provider's token. ID is the
// provider's subject id and is the only stable key the rest of the system
// relies on.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Photo     string `json:"photo,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type contextKey string

const UserContextKey contextKey = "user"
