package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

type applicationSubmitter struct {
	client   ports.TokenAuthenticatedClient
	endpoint string
	log      zerolog.Logger
}

// NewApplicationSubmitter creates a submitter posting to endpoint.
func NewApplicationSubmitter(client ports.TokenAuthenticatedClient, endpoint string, log zerolog.Logger) ports.ApplicationSubmitter {
	return &applicationSubmitter{client: client, endpoint: endpoint, log: log}
}

// Submit posts the application. A 2xx reply without an identifier is still
// a success; the result then carries a nil ApplicationID.
func (s *applicationSubmitter) Submit(ctx context.Context, req *domain.UpstreamApplicationRequest, token *domain.AccessToken) (*domain.ApplicationResult, error) {
	if s.endpoint == "" {
		return nil, apperror.ErrConfiguration("upstream.application_url")
	}

	resp, err := s.client.PostJSON(ctx, s.endpoint, token, req.IdempotencyKey, req.Body())
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		s.log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(resp.Body)).
			Str("idempotency_key", req.IdempotencyKey).
			Msg("upstream rejected application")
		return nil, apperror.ErrUpstreamSubmission(resp.StatusCode, string(resp.Body))
	}

	id, ok := extractApplicationID(resp.Body)
	if !ok {
		s.log.Warn().
			Int("status", resp.StatusCode).
			Str("idempotency_key", req.IdempotencyKey).
			Msg("application accepted without an identifier")
	}
	return &domain.ApplicationResult{ApplicationID: id, IdempotencyKey: req.IdempotencyKey}, nil
}

// extractApplicationID reads application_id, then id. Numbers are rendered
// in decimal.
func extractApplicationID(body []byte) (*string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, false
	}
	for _, key := range []string{"application_id", "id"} {
		if s, ok := idString(obj[key]); ok {
			return &s, true
		}
	}
	return nil, false
}

func idString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s, true
		}
	case json.Number:
		return t.String(), true
	}
	return "", false
}
