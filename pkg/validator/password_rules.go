package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// PasswordStrengthConfig describes the character requirements a
// password must meet.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
}

// DefaultPasswordStrength requires 8-128 characters with mixed case
// and at least one digit.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
	}
}

// StrongPassword fails when the value does not meet the configured
// length and character-class requirements.
func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < config.MinLength || len(value) > config.MaxLength {
				return false
			}
			if config.RequireUppercase && !uppercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireLowercase && !lowercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireDigits && !digitRegex.MatchString(value) {
				return false
			}
			return true
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("password must be %d-%d characters with required character types",
				config.MinLength, config.MaxLength),
		},
	}
}
