package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidISODate(t *testing.T) {
	valid := []string{"2025-05-01", "2024-02-29", "2025-12-31"}
	invalid := []string{
		"2025-5-01",      // month not zero-padded
		"2025-05-1",      // day not zero-padded
		"2025-02-30",     // not a real date
		"2025-13-01",     // no such month
		"01-05-2025",     // wrong order
		"2025/05/01",     // wrong separator
		"2025-05-01T00:00:00Z", // timestamp, not a date
		"",
	}
	for _, d := range valid {
		if !IsValidISODate(d) {
			t.Errorf("IsValidISODate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidISODate(d) {
			t.Errorf("IsValidISODate(%q) = true, want false", d)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00"}
	invalid := []string{"2024-01-15", "10:30:00", "not-a-time", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "remote", "absent", "leave"}
	if !IsInSlice("remote", statuses) {
		t.Error("IsInSlice(remote) = false, want true")
	}
	if IsInSlice("no-data", statuses) {
		t.Error("IsInSlice(no-data) = true, want false")
	}
}
