// Package validation checks candidate input before it reaches a store
// action. Validators are pure: same input, same verdict, no side effects.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldError attaches a human-readable message to the field that failed.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the structured rejection a validator returns. It implements
// error so callers can thread it through ordinary error handling.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Message returns the message recorded for field, or "" when the field passed.
func (e FieldErrors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// asError collapses an empty rejection list to nil.
func (e FieldErrors) asError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

func validEmail(email string) bool {
	return emailRE.MatchString(email)
}

// strongPassword requires at least one lowercase letter, one uppercase
// letter, and one digit.
func strongPassword(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
