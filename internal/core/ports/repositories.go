package ports

import (
	"context"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
)

// TokenCache keeps access tokens between submissions, keyed by client id.
type TokenCache interface {
	Get(ctx context.Context, clientID string) (*domain.AccessToken, error) // nil when missing
	Set(ctx context.Context, clientID string, token *domain.AccessToken, ttl time.Duration) error
}

// SubmissionCache replays accepted submissions by idempotency key.
type SubmissionCache interface {
	Get(ctx context.Context, idempotencyKey string) (*domain.ApplicationResult, error) // nil when missing
	Set(ctx context.Context, idempotencyKey string, result *domain.ApplicationResult, ttl time.Duration) error
}

// EventDeduplicator is the fast-path claim on an event id.
type EventDeduplicator interface {
	// Claim atomically marks the id as seen. Returns true if this caller
	// claimed it, false if it was already claimed.
	Claim(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

// EventRepository is the durable log of received events.
type EventRepository interface {
	// Insert stores the record unless the id exists. Returns false on duplicates.
	Insert(ctx context.Context, record *domain.EventRecord) (bool, error)
	MarkProcessed(ctx context.Context, id string, status domain.EventStatus, lastError *string) error
	GetByID(ctx context.Context, id string) (*domain.EventRecord, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
