package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaboard/dashkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "company", Message: "must be a valid number"})
		assert.Equal(t, "validation failed: email: is required; company: must be a valid number", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()
	errs := validator.ValidationErrors{
		{Field: "email", Message: "first"},
		{Field: "name", Message: "required"},
		{Field: "email", Message: "second"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("company"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("email"))
	assert.Equal(t, "first", errs.First("email"))
	assert.Empty(t, errs.First("company"))
	assert.Equal(t, []string{"email", "name"}, errs.Fields())
	assert.Equal(t, map[string]string{"email": "first", "name": "required"}, errs.Map())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Jane"),
			validator.ValidEmail("email", "jane@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
		)
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		assert.Len(t, verrs, 2)
	})
}

func TestApplyFirst(t *testing.T) {
	t.Parallel()
	t.Run("reports only the first failure per field", func(t *testing.T) {
		err := validator.ApplyFirst(
			validator.Required("email", "").WithMessage("Email is required"),
			validator.ValidEmail("email", ""),
			validator.Required("name", ""),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"Email is required"}, verrs.Get("email"))
		assert.Equal(t, []string{"field is required"}, verrs.Get("name"))
	})

	t.Run("later rules run when earlier ones pass", func(t *testing.T) {
		err := validator.ApplyFirst(
			validator.Required("email", "nope"),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)
		assert.Equal(t, "must be a valid email address", validator.ExtractValidationErrors(err).First("email"))
	})

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.ApplyFirst(validator.Required("email", "a@b.com")))
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()
	base := validator.Required("firstname", "")
	custom := base.WithMessage("First name is required")

	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "First name is required", custom.Error.Message)
	assert.Equal(t, "validation.required", custom.Error.TranslationKey)
	assert.Equal(t, "firstname", custom.Error.Field)
}

func TestOptional(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "blank passes", value: "", want: true},
		{name: "whitespace passes", value: "   ", want: true},
		{name: "valid value passes", value: "42", want: true},
		{name: "invalid value fails", value: "forty-two", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Optional(tt.value, validator.ValidNumber("company", tt.value))
			assert.Equal(t, tt.want, rule.Check())
		})
	}
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("save user: %w", validator.ValidationErrors{{Field: "email", Message: "bad"}})
	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("email"))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestValidationErrors_IsValidationFailed(t *testing.T) {
	t.Parallel()
	err := validator.Apply(validator.Required("name", ""))
	require.Error(t, err)
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", err), validator.ErrValidationFailed)
	assert.NotErrorIs(t, errors.New("other"), validator.ErrValidationFailed)
}
