package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_Validate_TableTest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name     string
		inName   string
		inEmail  string
		expected FieldErrors
	}{
		{
			name:    "valid input",
			inName:  "Ann",
			inEmail: "ann@x.com",
		},
		{
			name:    "valid input with surrounding whitespace",
			inName:  "  Ann  ",
			inEmail: " ann@x.com ",
		},
		{
			name:    "empty name",
			inName:  "",
			inEmail: "ann@x.com",
			expected: FieldErrors{
				FieldName: {MsgNameRequired},
			},
		},
		{
			name:    "whitespace-only name",
			inName:  "   ",
			inEmail: "ann@x.com",
			expected: FieldErrors{
				FieldName: {MsgNameRequired},
			},
		},
		{
			name:    "empty email",
			inName:  "Ann",
			inEmail: "",
			expected: FieldErrors{
				FieldEmail: {MsgEmailRequired},
			},
		},
		{
			name:    "malformed email",
			inName:  "Ann",
			inEmail: "not-an-email",
			expected: FieldErrors{
				FieldEmail: {MsgEmailInvalid},
			},
		},
		{
			name:    "both fields invalid",
			inName:  "",
			inEmail: "not-an-email",
			expected: FieldErrors{
				FieldName:  {MsgNameRequired},
				FieldEmail: {MsgEmailInvalid},
			},
		},
		{
			name:    "empty name and empty email",
			inName:  " ",
			inEmail: " ",
			expected: FieldErrors{
				FieldName:  {MsgNameRequired},
				FieldEmail: {MsgEmailRequired},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.inName, tt.inEmail)
			if tt.expected == nil {
				assert.Nil(t, errs)
			} else {
				assert.Equal(t, tt.expected, errs)
			}
		})
	}
}

func TestUserValidator_NormalizeInputs(t *testing.T) {
	v := NewUserValidator()

	name, email := v.NormalizeInputs("  Ann ", "\tann@x.com\n")
	assert.Equal(t, "Ann", name)
	assert.Equal(t, "ann@x.com", email)
}

func TestFieldErrors_Error_DeterministicOrder(t *testing.T) {
	errs := FieldErrors{
		FieldName:  {MsgNameRequired},
		FieldEmail: {MsgEmailRequired},
	}

	require.Implements(t, (*error)(nil), errs)
	assert.Equal(t, "Email: Email is required.; Name: Name is required.", errs.Error())
}
