package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestStruct struct {
	Name   string   `validate:"required"`
	Level  string   `validate:"oneof=debug info warn error"`
	Port   int      `validate:"gte=1,lte=65535"`
	Origin []string `validate:"min=1"`
}

func validTestStruct() TestStruct {
	return TestStruct{
		Name:   "authgate",
		Level:  "info",
		Port:   8080,
		Origin: []string{"http://localhost:*"},
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		s := validTestStruct()

		err := ValidateStruct(&s)
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		s := validTestStruct()
		s.Name = ""

		err := ValidateStruct(&s)
		assert.Error(t, err)
		assert.True(t, IsValidationError(err))

		fields := GetValidationFields(err)
		assert.Contains(t, fields, "TestStruct.Name")
		assert.Equal(t, "TestStruct.Name is required", fields["TestStruct.Name"])
	})

	t.Run("value not in oneof", func(t *testing.T) {
		s := validTestStruct()
		s.Level = "loud"

		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Equal(t, "TestStruct.Level must be one of: debug info warn error", fields["TestStruct.Level"])
	})

	t.Run("port out of range", func(t *testing.T) {
		s := validTestStruct()
		s.Port = 70000

		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Contains(t, fields, "TestStruct.Port")
	})

	t.Run("empty slice below min", func(t *testing.T) {
		s := validTestStruct()
		s.Origin = nil

		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Equal(t, "TestStruct.Origin must be at least 1", fields["TestStruct.Origin"])
	})
}

func TestNewValidationError(t *testing.T) {
	t.Run("creates validation error with field details", func(t *testing.T) {
		s := TestStruct{Level: "loud", Port: 0}

		err := ValidateStruct(&s)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)

		assert.Equal(t, "Validation failed", validationErr.Message)
		assert.Contains(t, validationErr.Fields, "TestStruct.Name")
		assert.Contains(t, validationErr.Fields, "TestStruct.Level")
		assert.Contains(t, validationErr.Fields, "TestStruct.Port")
		assert.Contains(t, validationErr.Fields, "TestStruct.Origin")
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := &ValidationError{Message: "Test validation error"}
		assert.Equal(t, "Test validation error", err.Error())
	})

	t.Run("fields are listed in sorted order", func(t *testing.T) {
		err := &ValidationError{
			Message: "Validation failed",
			Fields: map[string]string{
				"b": "b is required",
				"a": "a is required",
			},
		}
		assert.Equal(t, "Validation failed: a is required; b is required", err.Error())
	})
}

func TestIsValidationError(t *testing.T) {
	t.Run("is validation error", func(t *testing.T) {
		err := &ValidationError{
			Message: "test",
			Fields:  map[string]string{},
		}

		assert.True(t, IsValidationError(err))
	})

	t.Run("is not validation error", func(t *testing.T) {
		err := assert.AnError

		assert.False(t, IsValidationError(err))
	})
}

func TestGetValidationFields(t *testing.T) {
	t.Run("gets fields from validation error", func(t *testing.T) {
		fields := map[string]string{
			"field1": "error1",
			"field2": "error2",
		}
		err := &ValidationError{
			Message: "test",
			Fields:  fields,
		}

		extracted := GetValidationFields(err)
		assert.Equal(t, fields, extracted)
	})

	t.Run("returns nil for non-validation error", func(t *testing.T) {
		err := assert.AnError

		extracted := GetValidationFields(err)
		assert.Nil(t, extracted)
	})
}
