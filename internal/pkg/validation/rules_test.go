package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"student@university.edu", true},
		{"first.last+tag@sub.domain.org", true},
		{"UPPER@university.edu", false},
		{"no-at-sign.edu", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidEmail(c.email); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"01012345678", true},
		{"0101234567", false},
		{"010123456789", false},
		{"0101234567a", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidPhone(c.phone); got != c.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", c.phone, got, c.want)
		}
	}
}

func TestIsValidNationalNo(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"29801011234567", true},
		{"2980101123456", false},
		{"298010112345678", false},
		{"2980101123456x", false},
	}

	for _, c := range cases {
		if got := IsValidNationalNo(c.value); got != c.want {
			t.Errorf("IsValidNationalNo(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestStringValidation(t *testing.T) {
	if NewStringValidation("").Validate() {
		t.Error("required empty string should fail")
	}
	if !NewStringValidation("").WithRequired(false).Validate() {
		t.Error("optional empty string should pass")
	}
	if NewStringValidation("a").WithMinLength(2).Validate() {
		t.Error("string below min length should fail")
	}
	if NewStringValidation("abcdef").WithMaxLength(3).Validate() {
		t.Error("string above max length should fail")
	}
	if !NewStringValidation("abc").WithMinLength(2).WithMaxLength(5).Validate() {
		t.Error("string within bounds should pass")
	}
	if NewStringValidation("not-a-phone").WithPattern(CompiledPatterns.Phone).Validate() {
		t.Error("string not matching pattern should fail")
	}
}
