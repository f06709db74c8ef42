package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inbound_events (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL,
		raw_type     TEXT NOT NULL DEFAULT '',
		payload      JSONB NOT NULL,
		status       TEXT NOT NULL,
		last_error   TEXT,
		received_at  TIMESTAMPTZ NOT NULL,
		processed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inbound_events_kind ON inbound_events (kind, received_at)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id            UUID PRIMARY KEY,
		request_id    TEXT NOT NULL DEFAULT '',
		action        TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		resource_id   TEXT NOT NULL DEFAULT '',
		details       JSONB,
		ip_address    TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the service's tables if they do not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
