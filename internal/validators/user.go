package validators

import (
	"net/mail"
	"strings"
)

// UserValidator implements [Validator] for the user create and update
// request shapes. It holds no state and is safe for concurrent use.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks the raw name and email fields.
//
// Rules:
//   - Name must be non-empty after trimming.
//   - Email must be non-empty after trimming and must pass a standard
//     mailbox-syntax check.
//
// Multiple field errors may coexist in one result. Returns nil when both
// fields are acceptable.
func (v *UserValidator) Validate(name, email string) FieldErrors {
	errs := make(FieldErrors)

	trimmedName := strings.TrimSpace(name)
	trimmedEmail := strings.TrimSpace(email)

	if trimmedName == "" {
		errs.add(FieldName, MsgNameRequired)
	}

	if trimmedEmail == "" {
		errs.add(FieldEmail, MsgEmailRequired)
	} else if !isValidEmail(trimmedEmail) {
		errs.add(FieldEmail, MsgEmailInvalid)
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// NormalizeInputs trims both fields for storage.
func (v *UserValidator) NormalizeInputs(name, email string) (string, string) {
	return strings.TrimSpace(name), strings.TrimSpace(email)
}

// isValidEmail reports whether email satisfies the RFC 5322 mailbox syntax.
// Expected-invalid input is a boolean outcome here, not an error path.
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
