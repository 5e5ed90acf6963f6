package validator

import (
	"errors"
	"strings"
)

// FieldError describes one failed constraint
type FieldError struct {
	Field     string `json:"field"`
	Namespace string `json:"namespace"`
	Tag       string `json:"tag"`
	Message   string `json:"message"`
}

// ValidationErrors is returned by Struct when constraints fail
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field (by its tag name) failed validation
func (e *ValidationErrors) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err came from a failed validation
func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}
