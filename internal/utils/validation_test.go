package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"user.name@example.com", true},
		{"user_name-1@sub.example.org", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"user@", false},
		{"user@example", false},
		{"user@example.c", false},         // TLD too short
		{"user@example.toolong", false},   // TLD too long
		{"user name@example.com", false},  // space in local part
		{"user@exam ple.com", false},      // space in domain
	}

	for _, c := range cases {
		if got := IsValidEmail(c.email); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsE164(t *testing.T) {
	cases := []struct {
		number string
		want   bool
	}{
		{"+12345678900", true},
		{"+442071838750", true},
		{"12345678900", false},
		{"+0123456789", false},
		{"+1", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsE164(c.number); got != c.want {
			t.Errorf("IsE164(%q) = %v, want %v", c.number, got, c.want)
		}
	}
}

func TestValidatePhoneNumberWithoutTwilio(t *testing.T) {
	ok, err := ValidatePhoneNumber("+12345678900", false, nil)
	if err != nil {
		t.Fatalf("ValidatePhoneNumber returned error: %v", err)
	}
	if !ok {
		t.Fatal("well-formed E.164 number rejected")
	}

	ok, err = ValidatePhoneNumber("12345", false, nil)
	if err != nil {
		t.Fatalf("ValidatePhoneNumber returned error: %v", err)
	}
	if ok {
		t.Fatal("malformed number accepted")
	}

	// Twilio flag set but no client: only the local check applies.
	ok, err = ValidatePhoneNumber("+12345678900", true, nil)
	if err != nil {
		t.Fatalf("ValidatePhoneNumber returned error: %v", err)
	}
	if !ok {
		t.Fatal("well-formed number rejected when lookup client is absent")
	}
}
