package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/evently/event-api/common/errors"
	"github.com/evently/event-api/common/logger"
	"github.com/evently/event-api/services/event-lambda/models"
	"github.com/evently/event-api/services/event-lambda/repository"
)

// EventUseCase enforces the event business rules: identifier
// assignment, existence checks, partial-merge semantics, and filter
// pass-through. It holds no state between requests; the repository is
// the sole source of truth.
type EventUseCase struct {
	eventRepo repository.EventRepository
	log       *logger.Logger
}

// NewEventUseCase creates a new event use case over the given repository
func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{
		eventRepo: eventRepo,
		log:       logger.Default().With("component", "event-usecase"),
	}
}

// CreateEvent persists a new event. A non-empty client-supplied
// identifier is used verbatim; otherwise a fresh UUID is generated.
// The write is an unconditional overwrite: no uniqueness check is
// performed against the store, so a client-supplied collision silently
// replaces the existing record.
func (uc *EventUseCase) CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	eventID := req.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	event := req.ToEvent(eventID)
	if err := uc.eventRepo.Put(ctx, &event); err != nil {
		return nil, apperrors.StorageError(err)
	}

	uc.log.With("eventId", eventID).Info("event created")
	return &event, nil
}

// GetEvent retrieves an event by id, translating store-level absence
// into a not-found error carrying the identifier.
func (uc *EventUseCase) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := uc.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if event == nil {
		return nil, apperrors.EventNotFound(eventID)
	}
	return event, nil
}

// ListEvents returns every event, or only those matching the status
// filter when one is given. The equality predicate is delegated to the
// store; no client-side filtering happens here. An empty result is a
// normal outcome, never an error.
func (uc *EventUseCase) ListEvents(ctx context.Context, statusFilter string) ([]models.Event, error) {
	events, err := uc.eventRepo.Scan(ctx, statusFilter)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// UpdateEvent applies a partial payload to an existing event. The merge
// is read-modify-write against the current stored state: only fields
// present in the payload overwrite, everything else keeps its persisted
// value. The merged record is re-validated before any write; update
// never creates.
func (uc *EventUseCase) UpdateEvent(ctx context.Context, eventID string, req *models.UpdateEventRequest) (*models.Event, error) {
	existing, err := uc.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	merged := req.ApplyTo(*existing)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := uc.eventRepo.Put(ctx, &merged); err != nil {
		return nil, apperrors.StorageError(err)
	}

	uc.log.With("eventId", eventID).Info("event updated")
	return &merged, nil
}

// DeleteEvent removes an event after asserting it exists. A second
// delete of the same identifier reports not-found rather than
// succeeding silently.
func (uc *EventUseCase) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := uc.GetEvent(ctx, eventID); err != nil {
		return err
	}

	if _, err := uc.eventRepo.Delete(ctx, eventID); err != nil {
		return apperrors.StorageError(err)
	}

	uc.log.With("eventId", eventID).Info("event deleted")
	return nil
}
