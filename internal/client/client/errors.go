package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError is returned when the server answered with a non-2xx status or
// with a JSON body carrying an "error" field.
type DomainError struct {
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is lets callers match authorization failures with errors.Is(err, ErrUnauthorized).
func (e *DomainError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

func newDomainError(status int, message string) *DomainError {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &DomainError{Status: status, Message: message}
}

// Message extracts the text that should be shown to the user for err.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "Network error. Please check your connection and try again."
	}
	return err.Error()
}
