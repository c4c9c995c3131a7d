package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern is the email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// NationalNoPattern matches the 14-digit national identity number
	NationalNoPattern = `^\d{14}$`

	// PhonePattern matches an 11-digit local phone number
	PhonePattern = `^\d{11}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	NationalNo *regexp.Regexp
	Phone      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	NationalNo: regexp.MustCompile(NationalNoPattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidNationalNo reports whether the value is a 14-digit national number.
func IsValidNationalNo(value string) bool {
	return CompiledPatterns.NationalNo.MatchString(value)
}

// IsValidPhone reports whether the value is an 11-digit phone number.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
