// Package validators implements pure, side-effect-free validation of raw
// request fields. Validation failures are reported as [FieldErrors], a
// structured field→messages mapping that the transport layer serializes
// into 400 response bodies as is.
package validators

// Validator checks raw user input and normalizes it for storage.
type Validator interface {
	// Validate checks the raw name and email fields. It returns nil when
	// both are acceptable, otherwise a [FieldErrors] describing every
	// failing field at once.
	Validate(name, email string) FieldErrors

	// NormalizeInputs trims both fields. It must be applied only after
	// Validate has passed, immediately before repository access.
	NormalizeInputs(name, email string) (trimmedName, trimmedEmail string)
}
