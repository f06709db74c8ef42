package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
)

// maxResponseBody caps how much of a provider reply is read.
const maxResponseBody = 1 << 20

// NewHTTPClient returns the client shared by the upstream adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// transport performs one request and records it.
type transport struct {
	http    ports.HTTPClient
	metrics *metrics.Metrics
}

func (t transport) do(req *http.Request, operation string) (*ports.UpstreamResponse, error) {
	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		t.metrics.ObserveUpstream(operation, 0, time.Since(start))
		return nil, apperror.ErrUpstreamUnavailable(fmt.Errorf("%s request: %w", operation, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	t.metrics.ObserveUpstream(operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(fmt.Errorf("%s response: %w", operation, err))
	}

	return &ports.UpstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func newJSONRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding request body: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// BearerClient implements ports.TokenAuthenticatedClient.
type BearerClient struct {
	transport
	operation string
}

// NewBearerClient creates a client that authenticates with an access token.
// operation labels the calls in metrics.
func NewBearerClient(httpClient ports.HTTPClient, m *metrics.Metrics, operation string) *BearerClient {
	return &BearerClient{
		transport: transport{http: httpClient, metrics: m},
		operation: operation,
	}
}

// PostJSON posts body with Authorization: Bearer <token> and, when set,
// the Idempotency-Key header. Any status is returned to the caller.
func (c *BearerClient) PostJSON(ctx context.Context, url string, token *domain.AccessToken, idempotencyKey string, body any) (*ports.UpstreamResponse, error) {
	if token == nil || token.Value == "" {
		return nil, apperror.InternalError(fmt.Errorf("%s: missing access token", c.operation))
	}
	req, err := newJSONRequest(ctx, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.Value)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	return c.do(req, c.operation)
}

// AffiliateKeyClient implements ports.StaticKeyAuthenticatedClient.
type AffiliateKeyClient struct {
	transport
	key       string
	operation string
}

// NewAffiliateKeyClient creates a client that sends key verbatim as the
// Authorization header.
func NewAffiliateKeyClient(httpClient ports.HTTPClient, m *metrics.Metrics, key, operation string) *AffiliateKeyClient {
	return &AffiliateKeyClient{
		transport: transport{http: httpClient, metrics: m},
		key:       key,
		operation: operation,
	}
}

// PostJSON posts body with the raw affiliate key. Without a key it fails
// before any network call.
func (c *AffiliateKeyClient) PostJSON(ctx context.Context, url string, body any) (*ports.UpstreamResponse, error) {
	if c.key == "" {
		return nil, apperror.ErrConfiguration("gateway.affiliate_key")
	}
	req, err := newJSONRequest(ctx, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.key)
	return c.do(req, c.operation)
}
