package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists outbox entries.
type Repository interface {
	// Enqueue stores a new pending entry due immediately.
	Enqueue(ctx context.Context, topic string, payload any) (*Entry, error)

	// Due claims pending entries whose next attempt time has passed,
	// oldest first. Claimed entries move to the processing status so a
	// concurrent dispatcher cannot pick them up; delivery must settle each
	// claim via MarkDelivered, Reschedule, or MarkFailed.
	Due(ctx context.Context, limit int) ([]*Entry, error)

	// MarkDelivered finalizes a successfully delivered entry.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// Reschedule records a failed attempt and the time of the next one.
	Reschedule(ctx context.Context, id uuid.UUID, attempts int, nextAttempt time.Time, lastError string) error

	// MarkFailed finalizes an entry whose attempts are exhausted.
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}
