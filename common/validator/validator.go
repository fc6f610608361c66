package validator

import (
	"regexp"
	"time"
)

// DatePattern matches the canonical YYYY-MM-DD form. The pattern gates
// the shape; time.Parse confirms it is a real calendar date.
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateLayout = "2006-01-02"

// IsValidDate validates a canonical YYYY-MM-DD calendar date string.
func IsValidDate(date string) bool {
	if !DatePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// GetTitleError returns an error message for an invalid title, empty string when valid.
func GetTitleError(title string) string {
	if title == "" {
		return "title must not be empty"
	}
	return ""
}

// GetDateError returns an error message for an invalid date, empty string when valid.
func GetDateError(date string) string {
	if date == "" {
		return "date must not be empty"
	}
	if !IsValidDate(date) {
		return "date must be a valid calendar date in YYYY-MM-DD format"
	}
	return ""
}

// GetLocationError returns an error message for an invalid location, empty string when valid.
func GetLocationError(location string) string {
	if location == "" {
		return "location must not be empty"
	}
	return ""
}

// GetCapacityError returns an error message for an invalid capacity, empty string when valid.
func GetCapacityError(capacity int) string {
	if capacity < 0 {
		return "capacity must not be negative"
	}
	return ""
}

// GetOrganizerError returns an error message for an invalid organizer, empty string when valid.
func GetOrganizerError(organizer string) string {
	if organizer == "" {
		return "organizer must not be empty"
	}
	return ""
}

// GetStatusError returns an error message for an invalid status, empty string when valid.
// Status is free-form; only the non-empty constraint applies.
func GetStatusError(status string) string {
	if status == "" {
		return "status must not be empty"
	}
	return ""
}
