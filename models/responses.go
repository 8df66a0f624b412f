package models

// ErrorResponse is the body written by the outermost fault boundary when an
// unexpected error escapes the request pipeline.
type ErrorResponse struct {
	// Error is a generic, non-revealing description of the failure.
	Error string `json:"error"`

	// Detail carries the underlying error message. It is populated only
	// when the application runs in development mode and is omitted from
	// the JSON output otherwise.
	Detail string `json:"detail,omitempty"`
}

// MessageResponse is a minimal body used for expected, human-readable
// failures such as duplicate-email conflicts.
type MessageResponse struct {
	Message string `json:"message"`
}
