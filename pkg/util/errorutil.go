package util

import (
	"errors"
	"fmt"
)

// DomainError standardizes application errors. Message is user-facing; Err
// carries the underlying cause, if any.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

// NewInvalidCredentials rejects a login whose email/password pair matched no
// registry record.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", nil)
}

// NewEmailExists rejects a registration for an email already in the registry.
func NewEmailExists() error {
	return NewDomainError("EMAIL_EXISTS", "An account with this email already exists", nil)
}

// NewStorageFailure wraps a persistence fault behind a user-facing message.
func NewStorageFailure(message string, err error) error {
	return &DomainError{Code: "STORAGE_FAILURE", Message: message, Err: err}
}

// NewInternalError hides an unexpected fault behind the generic retry message.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "An error occurred. Please try again.",
		Err:     err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{Code: "INTERNAL_ERROR", Message: "An error occurred. Please try again.", Err: err}
}

// UserMessage extracts the user-facing message from an error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return ToDomainError(err).Message
}
