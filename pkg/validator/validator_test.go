package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedock/gamedock/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "alice"),
			validator.MaxLen("name", "alice", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("failures are collected per field", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.MinLen("password", "abc", 8),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 2)
		assert.True(t, ve.Has("name"))
		assert.True(t, ve.Has("password"))
	})

	t.Run("non validation error yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(assert.AnError))
	})
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultPasswordStrength()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets all requirements", "Str0ng!pass", true},
		{"too short", "Ab1", false},
		{"missing uppercase", "str0ngpass", false},
		{"missing lowercase", "STR0NGPASS", false},
		{"missing digit", "Strongpass", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.StrongPassword("password", tc.password, cfg))
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
