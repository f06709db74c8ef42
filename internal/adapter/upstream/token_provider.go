package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/config"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

type tokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   json.RawMessage `json:"expires_in"`
}

// TokenProvider implements ports.TokenProvider with the client-credential
// grant. Without a cache every call is a fresh exchange.
type TokenProvider struct {
	transport
	cfg   config.UpstreamConfig
	cache ports.TokenCache // optional
	log   zerolog.Logger
	now   func() time.Time
}

// NewTokenProvider creates a token provider. cache may be nil.
func NewTokenProvider(cfg config.UpstreamConfig, httpClient ports.HTTPClient, cache ports.TokenCache, m *metrics.Metrics, log zerolog.Logger) *TokenProvider {
	return &TokenProvider{
		transport: transport{http: httpClient, metrics: m},
		cfg:       cfg,
		cache:     cache,
		log:       log,
		now:       time.Now,
	}
}

// Token returns a bearer token for the configured client.
func (p *TokenProvider) Token(ctx context.Context) (*domain.AccessToken, error) {
	if p.cfg.ClientID == "" {
		return nil, apperror.ErrConfiguration("upstream.client_id")
	}
	if p.cfg.ClientSecret == "" {
		return nil, apperror.ErrConfiguration("upstream.client_secret")
	}
	endpoint := p.cfg.TokenEndpoint()
	if endpoint == "" {
		return nil, apperror.ErrConfiguration("upstream.token_url")
	}

	if tok := p.cached(ctx); tok != nil {
		return tok, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building token request: %w", err))
	}
	req.SetBasicAuth(p.cfg.ClientID, p.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.do(req, metrics.OperationToken)
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		p.log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(resp.Body)).
			Msg("upstream token exchange rejected")
		return nil, apperror.ErrUpstreamAuth(resp.StatusCode, string(resp.Body))
	}

	var body tokenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, apperror.ErrMalformedResponse("token response is not JSON")
	}
	if strings.TrimSpace(body.AccessToken) == "" {
		return nil, apperror.ErrMalformedResponse("missing access_token")
	}

	now := p.now()
	tok := &domain.AccessToken{
		Value:     body.AccessToken,
		TokenType: body.TokenType,
		ExpiresAt: expiry(body, now),
	}

	p.store(ctx, tok, now)
	return tok, nil
}

func (p *TokenProvider) cached(ctx context.Context) *domain.AccessToken {
	if p.cache == nil {
		return nil
	}
	tok, err := p.cache.Get(ctx, p.cfg.ClientID)
	if err != nil {
		p.log.Warn().Err(err).Msg("token cache read failed")
		return nil
	}
	if !tok.Usable(p.now(), p.cfg.TokenExpirySkew) {
		return nil
	}
	return tok
}

func (p *TokenProvider) store(ctx context.Context, tok *domain.AccessToken, now time.Time) {
	if p.cache == nil {
		return
	}
	ttl := tok.TTL(now, p.cfg.TokenExpirySkew)
	if ttl <= 0 {
		return
	}
	if err := p.cache.Set(ctx, p.cfg.ClientID, tok, ttl); err != nil {
		p.log.Warn().Err(err).Msg("token cache write failed")
	}
}

// expiry prefers expires_in, then the exp claim of a JWT access token.
// The zero time means unknown.
func expiry(body tokenResponse, now time.Time) time.Time {
	if secs, ok := parseExpiresIn(body.ExpiresIn); ok {
		return now.Add(time.Duration(secs) * time.Second)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(body.AccessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func parseExpiresIn(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		n = json.Number(strings.TrimSpace(s))
	}
	secs, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || secs <= 0 {
		return 0, false
	}
	return int64(secs), true
}
