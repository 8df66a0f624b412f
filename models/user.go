package models

// User represents a managed user account record.
// Instances are owned by the user repository; callers receive copies and
// must treat them as immutable values.
type User struct {
	// ID is the unique identifier of the user. IDs are assigned
	// sequentially starting at 1 and are never reused, even after the
	// user has been deleted.
	ID int `json:"id"`

	// Name is the display name of the user. Stored trimmed and never empty.
	Name string `json:"name"`

	// Email is the contact address of the user. Stored trimmed and unique
	// across all users when compared case-insensitively.
	Email string `json:"email"`
}
