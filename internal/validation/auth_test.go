package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		input   LoginInput
		field   string
		message string
	}{
		{
			name:  "valid",
			input: LoginInput{Email: "alice@example.com", Password: "Abcdef1"},
		},
		{
			name:    "missing email",
			input:   LoginInput{Password: "Abcdef1"},
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			input:   LoginInput{Email: "not-an-email", Password: "Abcdef1"},
			field:   "email",
			message: "Please enter a valid email address",
		},
		{
			name:    "missing password",
			input:   LoginInput{Email: "alice@example.com"},
			field:   "password",
			message: "Password is required",
		},
		{
			name:    "short password",
			input:   LoginInput{Email: "alice@example.com", Password: "Ab1"},
			field:   "password",
			message: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.input)
			if tt.message == "" {
				require.NoError(t, err)
				return
			}
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.message, fieldErrs.Message(tt.field))
		})
	}
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "Abcdef1",
		ConfirmPassword: "Abcdef1",
	}
	require.NoError(t, ValidateRegister(valid))

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(in *RegisterInput) { in.Name = "" },
			field:   "name",
			message: "Name is required",
		},
		{
			name:    "short name",
			mutate:  func(in *RegisterInput) { in.Name = "A" },
			field:   "name",
			message: "Name must be at least 2 characters",
		},
		{
			name: "long name",
			mutate: func(in *RegisterInput) {
				in.Name = "Aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
			},
			field:   "name",
			message: "Name must be less than 50 characters",
		},
		{
			name:    "weak password",
			mutate:  func(in *RegisterInput) { in.Password = "abcdefg"; in.ConfirmPassword = "abcdefg" },
			field:   "password",
			message: "Password must contain uppercase, lowercase, and number",
		},
		{
			name:    "missing confirmation",
			mutate:  func(in *RegisterInput) { in.ConfirmPassword = "" },
			field:   "confirmPassword",
			message: "Please confirm your password",
		},
		{
			name:    "mismatched confirmation",
			mutate:  func(in *RegisterInput) { in.ConfirmPassword = "Abcdef2" },
			field:   "confirmPassword",
			message: "Passwords don't match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := ValidateRegister(input)
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.message, fieldErrs.Message(tt.field))
		})
	}
}

// A mismatch must blame the confirmation field, not the password field.
func TestValidateRegisterMismatchAttachesToConfirmation(t *testing.T) {
	err := ValidateRegister(RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "Abcdef1",
		ConfirmPassword: "Ghijkl2",
	})
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Empty(t, fieldErrs.Message("password"))
	assert.Equal(t, "Passwords don't match", fieldErrs.Message("confirmPassword"))
}

func TestValidatorsAreDeterministic(t *testing.T) {
	input := LoginInput{Email: "bad", Password: ""}
	first := ValidateLogin(input)
	second := ValidateLogin(input)
	assert.Equal(t, first, second)
}
