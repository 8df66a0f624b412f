package models

// AuthRequest is the request body of POST /auth/token.
type AuthRequest struct {
	// Username identifies the caller in the configured credential map.
	Username string `json:"username"`

	// Secret is the shared secret expected for Username.
	// Compared byte-for-byte; it is never stored.
	Secret string `json:"secret"`
}

// AuthResponse is the success body of POST /auth/token.
type AuthResponse struct {
	// Token is an opaque bearer token accepted by the token store for the
	// lifetime of the process.
	Token string `json:"token"`
}

// CreateUserRequest is the request body of POST /users.
// Fields are validated and normalized before they reach the repository.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is the request body of PUT /users/{id}.
// Updates replace the stored name and email wholesale.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
