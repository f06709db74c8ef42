package ports

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// OnboardingService runs the submission pipeline: map, authenticate, submit.
type OnboardingService interface {
	Submit(ctx context.Context, record *domain.MerchantIntakeRecord) (*domain.ApplicationResult, error)
}

// ApplicationSubmitter posts a mapped application with a bearer token.
type ApplicationSubmitter interface {
	Submit(ctx context.Context, req *domain.UpstreamApplicationRequest, token *domain.AccessToken) (*domain.ApplicationResult, error)
}

// IdempotencyKeyer derives the Idempotency-Key for a mapped application.
type IdempotencyKeyer interface {
	Key(fields map[string]any, packageID string) (string, error)
}

// GatewayProvisioner creates a gateway account for an approved merchant.
type GatewayProvisioner interface {
	Provision(ctx context.Context, merchant *domain.ApprovedMerchant) (json.RawMessage, error)
}

// EventService ingests provider notifications.
type EventService interface {
	Receive(ctx context.Context, body []byte, headers http.Header) (*EventOutcome, error)
}

// EventOutcome describes what happened to a received event.
type EventOutcome struct {
	EventID    string
	Kind       domain.EventKind
	Duplicate  bool
	Dispatched bool
	HandlerErr error
	// PriorStatus is the logged status of the first delivery, set for
	// duplicates when the event log has it.
	PriorStatus domain.EventStatus
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secret string, payload string) string
	Verify(secret string, payload string, signature string) bool
	BuildCanonicalString(timestamp int64, body []byte) string
}

// AuditService records boundary actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
