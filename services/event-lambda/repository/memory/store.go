// Package memory provides an in-memory EventRepository used by tests
// and local experimentation. Behavior mirrors the DynamoDB
// implementation: upsert puts, nil on absent gets, scan in insertion
// order, delete reporting prior existence.
package memory

import (
	"context"
	"sync"

	"github.com/evently/event-api/services/event-lambda/models"
	"github.com/evently/event-api/services/event-lambda/repository"
)

type store struct {
	mu     sync.Mutex
	events []*models.Event
}

// New returns a new in-memory repository.EventRepository
func New() repository.EventRepository {
	return &store{}
}

// Put implements EventRepository.Put
func (s *store) Put(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := *event
	if item := s.find(event.EventID); item != nil {
		*item = cloned
		return nil
	}
	s.events = append(s.events, &cloned)
	return nil
}

// Get implements EventRepository.Get
func (s *store) Get(_ context.Context, eventID string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(eventID)
	if item == nil {
		return nil, nil
	}

	cloned := *item
	return &cloned, nil
}

// Scan implements EventRepository.Scan
func (s *store) Scan(_ context.Context, statusFilter string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []models.Event{}
	for _, item := range s.events {
		if statusFilter != "" && item.Status != statusFilter {
			continue
		}
		res = append(res, *item)
	}
	return res, nil
}

// Delete implements EventRepository.Delete
func (s *store) Delete(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.events {
		if item.EventID == eventID {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *store) find(eventID string) *models.Event {
	for _, item := range s.events {
		if item.EventID == eventID {
			return item
		}
	}
	return nil
}
