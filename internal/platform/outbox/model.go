// Package outbox provides a durable side-effect queue backed by the
// service-local Postgres store. Mutations that must eventually reach another
// system enqueue an entry in the same request, and a background dispatcher
// delivers entries with exponential backoff until they succeed or exhaust
// their attempts.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status of an outbox entry.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusFailed     Status = "failed"
)

// Entry is one queued side effect.
type Entry struct {
	ID            uuid.UUID       `json:"id"`
	Topic         string          `json:"topic"`
	Payload       json.RawMessage `json:"payload"`
	Status        Status          `json:"status"`
	Attempts      int             `json:"attempts"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	LastError     string          `json:"last_error,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
