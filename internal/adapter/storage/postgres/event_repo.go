package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the inbound_events table.
type EventRepo struct {
	pool Pool
	now  func() time.Time
}

// NewEventRepo creates a PostgreSQL-backed inbound event log.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool, now: time.Now}
}

// Insert stores rec unless an event with the same id was already logged.
// Returns false for a duplicate.
func (r *EventRepo) Insert(ctx context.Context, rec *domain.EventRecord) (bool, error) {
	query := `INSERT INTO inbound_events (id, kind, raw_type, payload, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		rec.ID, string(rec.Kind), rec.RawType, rec.Payload, string(rec.Status), rec.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert inbound event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkProcessed records the outcome of dispatching an event.
func (r *EventRepo) MarkProcessed(ctx context.Context, id string, status domain.EventStatus, lastError *string) error {
	query := `UPDATE inbound_events SET status = $1, last_error = $2, processed_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, string(status), lastError, r.now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update inbound event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inbound event %s: not found", id)
	}
	return nil
}

// GetByID fetches a logged event. Returns nil, nil if it does not exist.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	query := `SELECT id, kind, raw_type, payload, status, last_error, received_at, processed_at
		FROM inbound_events WHERE id = $1`

	rec := &domain.EventRecord{}
	var kind, status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &kind, &rec.RawType, &rec.Payload, &status,
		&rec.LastError, &rec.ReceivedAt, &rec.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inbound event: %w", err)
	}
	rec.Kind = domain.EventKind(kind)
	rec.Status = domain.EventStatus(status)
	return rec, nil
}
