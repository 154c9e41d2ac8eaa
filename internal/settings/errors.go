package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSetting is returned for a setting name outside the declared enumeration.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrUnknownGroup is returned for a group outside the declared enumeration.
	ErrUnknownGroup = errors.New("unknown setting group")

	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("setting validation failed")
)

// ValidationError describes a single value that failed its field constraint.
type ValidationError struct {
	// Name is the setting the value was submitted for.
	Name Name
	// Tag is the failed constraint (required, max, email, http_url, phone, type or group).
	Tag string
	// Param is the constraint parameter, e.g. the max length or the expected group.
	Param string
	// Value is the rejected payload.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("setting %q failed constraint %s=%s", e.Name, e.Tag, e.Param)
	}

	return fmt.Sprintf("setting %q failed constraint %s", e.Name, e.Tag)
}

// Unwrap makes errors.Is(err, ErrValidation) report true.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Message returns a human readable message for form feedback.
func (e *ValidationError) Message() string {
	switch e.Tag {
	case "required":
		return "This field is required."
	case "max":
		return "This field may not be longer than " + e.Param + " characters."
	case "email":
		return "Please enter a valid email address."
	case "http_url":
		return "Please enter a valid http or https URL."
	case "phone":
		return "Only digits, spaces and the characters - + ( ) are allowed."
	case "type":
		return "This value has the wrong type."
	case "group":
		return "This setting does not belong to the " + e.Param + " group."
	default:
		return "This value is invalid."
	}
}

// ValidationErrors collects the failures of a group submission.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	out := make([]error, len(ve))
	for i, e := range ve {
		out[i] = e
	}

	return out
}

// ByName indexes the failures by setting name.
func (ve ValidationErrors) ByName() map[Name]*ValidationError {
	out := make(map[Name]*ValidationError, len(ve))
	for _, e := range ve {
		if _, exists := out[e.Name]; !exists {
			out[e.Name] = e
		}
	}

	return out
}
