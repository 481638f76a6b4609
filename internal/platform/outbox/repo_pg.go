package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const entryCols = `id, topic, payload, status, attempts, next_attempt_at, last_error, created_at, updated_at`

func (r *repoPG) Enqueue(ctx context.Context, topic string, payload any) (*Entry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	e := &Entry{
		ID:      uuid.New(),
		Topic:   topic,
		Payload: data,
		Status:  StatusPending,
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO outbox (id, topic, payload, status)
		VALUES ($1, $2, $3, $4)`,
		e.ID, e.Topic, e.Payload, e.Status,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// claimGracePeriod is how long a claimed row may sit in processing before
// another dispatcher may reclaim it. Covers a dispatcher that died
// mid-delivery.
const claimGracePeriod = 10 * time.Minute

func (r *repoPG) Due(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE outbox SET status = $3, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM outbox
			WHERE (status = $1 AND next_attempt_at <= NOW())
			   OR (status = $3 AND updated_at < $4)
			ORDER BY created_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+entryCols,
		StatusPending, limit, StatusProcessing, time.Now().Add(-claimGracePeriod),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *repoPG) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox SET status=$2, attempts=attempts+1, last_error='', updated_at=NOW()
		WHERE id = $1`,
		id, StatusDelivered,
	)
	return err
}

func (r *repoPG) Reschedule(ctx context.Context, id uuid.UUID, attempts int, nextAttempt time.Time, lastError string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox SET status=$5, attempts=$2, next_attempt_at=$3, last_error=$4, updated_at=NOW()
		WHERE id = $1`,
		id, attempts, nextAttempt, lastError, StatusPending,
	)
	return err
}

func (r *repoPG) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox SET status=$2, attempts=$3, last_error=$4, updated_at=NOW()
		WHERE id = $1`,
		id, StatusFailed, attempts, lastError,
	)
	return err
}

func collectEntries(rows pgx.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(
			&e.ID, &e.Topic, &e.Payload, &e.Status, &e.Attempts,
			&e.NextAttemptAt, &e.LastError, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
