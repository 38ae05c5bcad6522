package service

import (
	"errors"
	"strings"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrMessageNotFound    = errors.New("contact message not found")
)

// ValidationError carries field-keyed validation messages for a 422 response.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Message returns a human-readable summary for the response body.
func (e *ValidationError) Message() string {
	for _, messages := range e.Fields {
		if len(messages) > 0 {
			return messages[0]
		}
	}
	return "The given data was invalid."
}

type validationBuilder struct {
	fields map[string][]string
}

func (b *validationBuilder) add(field, message string) {
	if b.fields == nil {
		b.fields = make(map[string][]string)
	}
	b.fields[field] = append(b.fields[field], message)
}

func (b *validationBuilder) err() error {
	if len(b.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: b.fields}
}
