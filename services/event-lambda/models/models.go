package models

import (
	apperrors "github.com/evently/event-api/common/errors"
	"github.com/evently/event-api/common/validator"
)

// Event represents an event record in the system.
// Maps to the DynamoDB events table, partition key: eventId.
type Event struct {
	EventID     string `json:"eventId" dynamodbav:"eventId"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Date        string `json:"date" dynamodbav:"date"` // YYYY-MM-DD
	Location    string `json:"location" dynamodbav:"location"`
	Capacity    int    `json:"capacity" dynamodbav:"capacity"`
	Organizer   string `json:"organizer" dynamodbav:"organizer"`
	Status      string `json:"status" dynamodbav:"status"`
}

// Validate checks the record invariants: non-empty required strings,
// non-negative capacity, canonical calendar date. Description may be
// empty. The eventId is not checked here; the service assigns it.
func (e *Event) Validate() error {
	if msg := validator.GetTitleError(e.Title); msg != "" {
		return apperrors.MissingField("title")
	}
	if msg := validator.GetDateError(e.Date); msg != "" {
		return apperrors.InvalidFormat("date", msg)
	}
	if msg := validator.GetLocationError(e.Location); msg != "" {
		return apperrors.MissingField("location")
	}
	if msg := validator.GetCapacityError(e.Capacity); msg != "" {
		return apperrors.InvalidInput("capacity", msg)
	}
	if msg := validator.GetOrganizerError(e.Organizer); msg != "" {
		return apperrors.MissingField("organizer")
	}
	if msg := validator.GetStatusError(e.Status); msg != "" {
		return apperrors.MissingField("status")
	}
	return nil
}

// CreateEventRequest is the creation payload. EventID is optional: a
// non-empty value is used verbatim, otherwise the service generates one.
type CreateEventRequest struct {
	EventID     string `json:"eventId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Organizer   string `json:"organizer"`
	Status      string `json:"status"`
}

// Validate checks the creation payload against the record invariants.
func (r *CreateEventRequest) Validate() error {
	e := r.ToEvent(r.EventID)
	return e.Validate()
}

// ToEvent builds a complete Event from the payload and the resolved id.
func (r *CreateEventRequest) ToEvent(eventID string) Event {
	return Event{
		EventID:     eventID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Organizer:   r.Organizer,
		Status:      r.Status,
	}
}

// UpdateEventRequest is a partial payload: every field is optional.
// A nil pointer means the field was omitted and keeps its stored value;
// a non-nil pointer overwrites, including explicit zero values such as
// an empty description.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Organizer   *string `json:"organizer,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// IsEmpty reports whether the payload touches no field at all.
func (r *UpdateEventRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Date == nil &&
		r.Location == nil && r.Capacity == nil && r.Organizer == nil &&
		r.Status == nil
}

// ApplyTo overlays the fields present in the payload onto an existing
// record and returns the merged result. The eventId never changes.
func (r *UpdateEventRequest) ApplyTo(existing Event) Event {
	merged := existing
	if r.Title != nil {
		merged.Title = *r.Title
	}
	if r.Description != nil {
		merged.Description = *r.Description
	}
	if r.Date != nil {
		merged.Date = *r.Date
	}
	if r.Location != nil {
		merged.Location = *r.Location
	}
	if r.Capacity != nil {
		merged.Capacity = *r.Capacity
	}
	if r.Organizer != nil {
		merged.Organizer = *r.Organizer
	}
	if r.Status != nil {
		merged.Status = *r.Status
	}
	return merged
}
