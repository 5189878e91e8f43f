package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultJournalLimit = 1000
	maxEventsPerPage    = 100
)

const (
	EventProjectCreated = "project_created"
	EventProjectUpdated = "project_updated"
	EventProjectDeleted = "project_deleted"
	EventFileUploaded   = "file_uploaded"
	EventFileDeleted    = "file_deleted"
)

// EventPublisher pushes an encoded event to a user's live connections.
type EventPublisher interface {
	PublishEvent(userID string, eventData []byte)
}

type Event struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload"`
}

// EventJournal keeps the most recent events of every user in memory.
type EventJournal struct {
	mu        sync.RWMutex
	nextID    int64
	limit     int
	events    map[string][]Event
	publisher EventPublisher
}

func NewEventJournal(publisher EventPublisher, limit int) *EventJournal {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	return &EventJournal{
		limit:     limit,
		events:    make(map[string][]Event),
		publisher: publisher,
	}
}

func (j *EventJournal) LogEvent(ctx context.Context, userID string, eventType string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	j.mu.Lock()
	j.nextID++
	event := Event{
		ID:        j.nextID,
		EventType: eventType,
		EventTime: time.Now().UTC(),
		Payload:   payloadBytes,
	}
	userEvents := append(j.events[userID], event)
	if len(userEvents) > j.limit {
		userEvents = userEvents[len(userEvents)-j.limit:]
	}
	j.events[userID] = userEvents
	j.mu.Unlock()

	if j.publisher != nil {
		eventBytes, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		j.publisher.PublishEvent(userID, eventBytes)
	}

	return nil
}

// GetEventsSince returns up to 100 events of userID with an ID above sinceID,
// oldest first.
func (j *EventJournal) GetEventsSince(ctx context.Context, userID string, sinceID int64) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	events := []Event{}
	for _, e := range j.events[userID] {
		if e.ID <= sinceID {
			continue
		}
		events = append(events, e)
		if len(events) == maxEventsPerPage {
			break
		}
	}

	return events, nil
}
