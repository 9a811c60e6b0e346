package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"patient@example.com", "a.b+c@praxis-amara.de"}
	invalid := []string{"", "patient", "patient@", "@example.com", "a@b"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "040 576061", want: "+4940576061"},
		{in: "0176 1234567", want: "+491761234567"},
		{in: "+49 40 576061", want: "+4940576061"},
		{in: "0049 40 576061", want: "+4940576061"},
		{in: "40576061", want: "+40576061"},
	}

	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"neue-oeffnungszeiten", "impfung-2025", "a"}
	invalid := []string{"", "Neue-Zeiten", "zeiten--doppelt", "-start", "ende-", "mit space"}

	for _, slug := range valid {
		if !ValidateSlug(slug) {
			t.Errorf("ValidateSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if ValidateSlug(slug) {
			t.Errorf("ValidateSlug(%q) = true, want false", slug)
		}
	}
}
