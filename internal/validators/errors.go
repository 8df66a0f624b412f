// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"sort"
	"strings"
)

// Field name constants used as keys of [FieldErrors]. They match the JSON
// field casing of the public API contract.
const (
	// FieldName targets the user's display name field.
	FieldName = "Name"

	// FieldEmail targets the user's email address field.
	FieldEmail = "Email"
)

// Validation messages returned to API clients.
const (
	MsgNameRequired  = "Name is required."
	MsgEmailRequired = "Email is required."
	MsgEmailInvalid  = "Email must be a valid email address."
)

// FieldErrors maps a field name to the ordered list of problems found in
// it. A nil map means validation passed. FieldErrors implements error so
// it can travel through the service layer like any other failure and be
// recovered at the transport layer with [errors.As].
type FieldErrors map[string][]string

// Error renders all field problems in deterministic (sorted-field) order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], " ")))
	}

	return strings.Join(parts, "; ")
}

// add appends a message to the given field's list.
func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}
