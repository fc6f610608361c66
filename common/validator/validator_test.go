package validator

import "testing"

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{name: "Valid date", date: "2024-12-15", valid: true},
		{name: "Leap day", date: "2024-02-29", valid: true},
		{name: "Non-leap February 29", date: "2023-02-29", valid: false},
		{name: "Month out of range", date: "2024-13-01", valid: false},
		{name: "Day out of range", date: "2024-04-31", valid: false},
		{name: "Missing zero padding", date: "2024-1-5", valid: false},
		{name: "Wrong separator", date: "2024/12/15", valid: false},
		{name: "Datetime instead of date", date: "2024-12-15T10:00:00", valid: false},
		{name: "Empty string", date: "", valid: false},
		{name: "Not a date at all", date: "tomorrow", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.date); got != tt.valid {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.valid)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		check     func() string
		wantError bool
	}{
		{name: "Empty title", check: func() string { return GetTitleError("") }, wantError: true},
		{name: "Valid title", check: func() string { return GetTitleError("Tech Conf") }, wantError: false},
		{name: "Empty date", check: func() string { return GetDateError("") }, wantError: true},
		{name: "Malformed date", check: func() string { return GetDateError("15-12-2024") }, wantError: true},
		{name: "Valid date", check: func() string { return GetDateError("2024-12-15") }, wantError: false},
		{name: "Empty location", check: func() string { return GetLocationError("") }, wantError: true},
		{name: "Valid location", check: func() string { return GetLocationError("SF") }, wantError: false},
		{name: "Negative capacity", check: func() string { return GetCapacityError(-1) }, wantError: true},
		{name: "Zero capacity", check: func() string { return GetCapacityError(0) }, wantError: false},
		{name: "Positive capacity", check: func() string { return GetCapacityError(500) }, wantError: false},
		{name: "Empty organizer", check: func() string { return GetOrganizerError("") }, wantError: true},
		{name: "Valid organizer", check: func() string { return GetOrganizerError("Acme") }, wantError: false},
		{name: "Empty status", check: func() string { return GetStatusError("") }, wantError: true},
		{name: "Free-form status", check: func() string { return GetStatusError("anything-goes") }, wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.check()
			if tt.wantError && msg == "" {
				t.Error("expected an error message, got none")
			}
			if !tt.wantError && msg != "" {
				t.Errorf("expected no error, got %q", msg)
			}
		})
	}
}
