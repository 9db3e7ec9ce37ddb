package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidator_SameDayIsValid(t *testing.T) {
	v := NewFormValidator()
	assert.NoError(t, v.Validate(form("Rush", "in-progress", "2026-01-05", "2026-01-05")))
}

func TestFormValidator_TranslatesMessages(t *testing.T) {
	v := NewFormValidator()
	f := form("", "paused", "2026-01-05", "2026-01-04")

	err := v.Validate(f)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)

	assert.Equal(t, ValidationError{Field: "name", Message: "name is required"}, verrs[0])
	assert.Equal(t, "status", verrs[1].Field)
	assert.Contains(t, verrs[1].Message, "must be one of: open planned in-progress complete blocked")
	assert.Equal(t, ValidationError{Field: "end_date", Message: "end_date must not be before start_date"}, verrs[2])
	assert.Contains(t, err.Error(), "validation failed: 3 error(s)")
}

func TestFormValidator_NameTooLong(t *testing.T) {
	v := NewFormValidator()
	f := form("x", "open", "2026-01-05", "2026-01-06")
	for len(f.Name) <= 120 {
		f.Name += "x"
	}

	var verrs ValidationErrors
	require.ErrorAs(t, v.Validate(f), &verrs)
	assert.Equal(t, "name must be at most 120 characters", verrs[0].Message)
}

func TestValidationErrors_Empty(t *testing.T) {
	assert.Empty(t, ValidationErrors{}.Error())
}
