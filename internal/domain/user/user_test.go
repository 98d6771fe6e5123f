//go:build unit

package user_test

import (
	"testing"

	"rentacar/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		first string
		last  string
	}{
		{name: "first and last", full: "Jane Doe", first: "Jane", last: "Doe"},
		{name: "multi-word last name", full: "Jane van der Berg", first: "Jane", last: "van der Berg"},
		{name: "single word", full: "Jane", first: "Jane", last: ""},
		{name: "empty", full: "", first: "", last: ""},
		{name: "surrounding whitespace", full: "  Jane  Doe  ", first: "Jane", last: "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := user.SplitName(tt.full)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", user.FullName("Jane", "Doe", "jdoe"))
	assert.Equal(t, "Jane", user.FullName("Jane", "", "jdoe"))
	assert.Equal(t, "Doe", user.FullName("", "Doe", "jdoe"))
	assert.Equal(t, "jdoe", user.FullName("", "", "jdoe"))
}

func TestCredentialsValidate(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		errs := user.Credentials{Identifier: "jane", Password: "password123"}.Validate()
		assert.Empty(t, errs)
	})

	t.Run("missing identifier", func(t *testing.T) {
		errs := user.Credentials{Password: "password123"}.Validate()
		assert.Equal(t, "Username or email is required", errs["identifier"])
	})

	t.Run("short password", func(t *testing.T) {
		errs := user.Credentials{Identifier: "jane", Password: "short"}.Validate()
		assert.Equal(t, "Password must be at least 8 characters", errs["password"])
	})
}

func TestRegistrationValidate(t *testing.T) {
	valid := user.Registration{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, valid.Validate())
	})

	t.Run("short names", func(t *testing.T) {
		form := valid
		form.FirstName = "J"
		form.LastName = "D"
		errs := form.Validate()
		assert.Equal(t, "First name must be at least 2 characters", errs["firstName"])
		assert.Equal(t, "Last name must be at least 2 characters", errs["lastName"])
	})

	t.Run("missing email beats format check", func(t *testing.T) {
		form := valid
		form.Email = ""
		assert.Equal(t, "Email is required", form.Validate()["email"])
	})

	t.Run("malformed email", func(t *testing.T) {
		form := valid
		form.Email = "not-an-email"
		assert.Equal(t, "Please enter a valid email", form.Validate()["email"])
	})

	t.Run("missing confirmation", func(t *testing.T) {
		form := valid
		form.ConfirmPassword = ""
		assert.Equal(t, "Please confirm your password", form.Validate()["confirmPassword"])
	})

	t.Run("mismatched passwords", func(t *testing.T) {
		form := valid
		form.ConfirmPassword = "password456"
		assert.Equal(t, "Passwords do not match", form.Validate()["confirmPassword"])
	})
}
