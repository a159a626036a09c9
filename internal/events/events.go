// Package events publishes change notifications for expenses and budgets.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types.
const (
	ExpenseCreated = "expense.created"
	ExpenseUpdated = "expense.updated"
	ExpenseDeleted = "expense.deleted"
	BudgetSaved    = "budget.saved"
	BudgetDeleted  = "budget.deleted"
)

// Event is one change notification.
type Event struct {
	Type       string          `json:"type"`
	ResourceID string          `json:"resource_id"`
	Month      string          `json:"month,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// New builds an event, encoding data as its payload. Data that cannot be
// encoded is dropped.
func New(eventType, resourceID, month string, data any) Event {
	e := Event{Type: eventType, ResourceID: resourceID, Month: month, OccurredAt: time.Now().UTC()}
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			e.Data = raw
		}
	}
	return e
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                        { return nil }
