package ports

import (
	"context"
	"net/http"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
)

// HTTPClient is the subset of *http.Client used by upstream adapters.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// UpstreamResponse is a raw provider reply. Adapters return it for every
// status; callers decide what counts as failure.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// Success reports a 2xx status.
func (r *UpstreamResponse) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// TokenProvider obtains bearer credentials via the client-credential grant.
type TokenProvider interface {
	Token(ctx context.Context) (*domain.AccessToken, error)
}

// TokenAuthenticatedClient calls provider endpoints that require a bearer
// token from the client-credential grant.
type TokenAuthenticatedClient interface {
	PostJSON(ctx context.Context, url string, token *domain.AccessToken, idempotencyKey string, body any) (*UpstreamResponse, error)
}

// StaticKeyAuthenticatedClient calls provider endpoints authorised by the
// static affiliate key, sent verbatim in the Authorization header.
type StaticKeyAuthenticatedClient interface {
	PostJSON(ctx context.Context, url string, body any) (*UpstreamResponse, error)
}
