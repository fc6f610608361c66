package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/evently/event-api/common/errors"
)

func validEvent() Event {
	return Event{
		EventID:     "evt-1",
		Title:       "Tech Conf",
		Description: "Annual tech conference",
		Date:        "2024-12-15",
		Location:    "SF",
		Capacity:    500,
		Organizer:   "Acme",
		Status:      "scheduled",
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Event)
		wantOK  bool
		code    apperrors.ErrorCode
	}{
		{name: "valid", mutate: func(e *Event) {}, wantOK: true},
		{name: "empty description allowed", mutate: func(e *Event) { e.Description = "" }, wantOK: true},
		{name: "zero capacity allowed", mutate: func(e *Event) { e.Capacity = 0 }, wantOK: true},
		{name: "empty title", mutate: func(e *Event) { e.Title = "" }, code: apperrors.ErrCodeMissingField},
		{name: "empty location", mutate: func(e *Event) { e.Location = "" }, code: apperrors.ErrCodeMissingField},
		{name: "empty organizer", mutate: func(e *Event) { e.Organizer = "" }, code: apperrors.ErrCodeMissingField},
		{name: "empty status", mutate: func(e *Event) { e.Status = "" }, code: apperrors.ErrCodeMissingField},
		{name: "negative capacity", mutate: func(e *Event) { e.Capacity = -1 }, code: apperrors.ErrCodeInvalidInput},
		{name: "malformed date", mutate: func(e *Event) { e.Date = "12/15/2024" }, code: apperrors.ErrCodeInvalidFormat},
		{name: "impossible date", mutate: func(e *Event) { e.Date = "2024-02-30" }, code: apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestUpdateApplyToMergesOnlyPresentFields(t *testing.T) {
	existing := validEvent()

	update := UpdateEventRequest{Status: strPtr("cancelled")}
	merged := update.ApplyTo(existing)

	assert.Equal(t, "cancelled", merged.Status)
	assert.Equal(t, existing.EventID, merged.EventID)
	assert.Equal(t, existing.Title, merged.Title)
	assert.Equal(t, existing.Description, merged.Description)
	assert.Equal(t, existing.Date, merged.Date)
	assert.Equal(t, existing.Location, merged.Location)
	assert.Equal(t, existing.Capacity, merged.Capacity)
	assert.Equal(t, existing.Organizer, merged.Organizer)
}

func TestUpdateApplyToExplicitZeroOverwrites(t *testing.T) {
	existing := validEvent()

	// Explicitly cleared description and zeroed capacity must win over
	// the stored values; omission must not.
	update := UpdateEventRequest{
		Description: strPtr(""),
		Capacity:    intPtr(0),
	}
	merged := update.ApplyTo(existing)

	assert.Equal(t, "", merged.Description)
	assert.Equal(t, 0, merged.Capacity)
	assert.Equal(t, existing.Title, merged.Title)
	assert.NoError(t, merged.Validate())
}

func TestUpdateOmittedVsPresentDecoding(t *testing.T) {
	var omitted UpdateEventRequest
	require.True(t, omitted.IsEmpty())

	update := UpdateEventRequest{Title: strPtr("New Title")}
	assert.False(t, update.IsEmpty())
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Capacity)
}

func TestCreateRequestValidate(t *testing.T) {
	req := CreateEventRequest{
		Title:     "Tech Conf",
		Date:      "2024-12-15",
		Location:  "SF",
		Capacity:  500,
		Organizer: "Acme",
		Status:    "scheduled",
	}
	assert.NoError(t, req.Validate())

	req.Capacity = -5
	err := req.Validate()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, appErr.Code)
}

func TestCreateRequestToEvent(t *testing.T) {
	req := CreateEventRequest{
		Title:       "Tech Conf",
		Description: "desc",
		Date:        "2024-12-15",
		Location:    "SF",
		Capacity:    500,
		Organizer:   "Acme",
		Status:      "scheduled",
	}

	event := req.ToEvent("evt-9")
	assert.Equal(t, "evt-9", event.EventID)
	assert.Equal(t, req.Title, event.Title)
	assert.Equal(t, req.Description, event.Description)
	assert.Equal(t, req.Date, event.Date)
	assert.Equal(t, req.Location, event.Location)
	assert.Equal(t, req.Capacity, event.Capacity)
	assert.Equal(t, req.Organizer, event.Organizer)
	assert.Equal(t, req.Status, event.Status)
}
