package repository

import (
	"context"

	"github.com/evently/event-api/services/event-lambda/models"
)

// EventRepository is the record-store contract consumed by the usecase
// layer. Absence is a normal outcome at this layer: Get returns
// (nil, nil) when no record exists; translating that into a not-found
// error is the service's job.
type EventRepository interface {
	// Put stores an event with unconditional upsert semantics.
	Put(ctx context.Context, event *models.Event) error

	// Get performs a point lookup by eventId.
	//
	// Returns (nil, nil) when no record exists.
	Get(ctx context.Context, eventID string) (*models.Event, error)

	// Scan reads the whole table, following pagination to exhaustion.
	// A non-empty statusFilter is pushed down to the store as an
	// equality predicate on the status attribute. Result order is the
	// store's scan order.
	Scan(ctx context.Context, statusFilter string) ([]models.Event, error)

	// Delete removes an event by eventId, reporting whether a record
	// was actually present beforehand.
	Delete(ctx context.Context, eventID string) (existed bool, err error)
}
