package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name+tag@example.co.uk", "a_b-c%d@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "not-an-email", "@x.com", "a@", "a@x", "a b@x.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}
