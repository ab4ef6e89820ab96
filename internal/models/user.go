package models

// User is a dealership staff login. Accounts are provisioned by an admin;
// there is no self-service registration.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose in JSON responses
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
}

// LoginRequest contains the credentials for authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that login credentials are present.
func (r *LoginRequest) Validate() map[string]string {
	errors := map[string]string{}

	if r.Username == "" {
		errors["username"] = "Username is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}
