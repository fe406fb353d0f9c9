package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("current password is incorrect")

	ErrTrackingNumberTaken = errors.New("tracking number already in use")
)

// ValidationError names every rejected field together with the rule it failed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name, rule := range e.Fields {
		names = append(names, fmt.Sprintf("%s (%s)", name, rule))
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// UpstreamError wraps a failure of an external collaborator such as the text generator.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
