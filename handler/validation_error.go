package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/seaboard/dashkit/pkg/validator"
)

// ValidationError holds field validation messages keyed by field name.
// It is based on url.Values for its string slice handling.
type ValidationError url.Values

// Error lists the first message of every field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom converts validator failures. It returns nil when err
// carries no validator.ValidationErrors.
func ValidationErrorFrom(err error) ValidationError {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return nil
	}
	out := NewValidationError()
	for _, e := range verrs {
		out.Add(e.Field, e.Message)
	}
	return out
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
