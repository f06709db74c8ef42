package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/config"
	redisStore "github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/storage/redis"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/upstream"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider stands in for the payment platform. It honours
// Idempotency-Key the way the real platform does: a repeated key returns
// the application created for it.
type fakeProvider struct {
	srv *httptest.Server

	mu             sync.Mutex
	tokenStatus    int
	tokenBody      string
	appStatus      int
	appBody        string // fixed reply; empty means generate app_<n> per key
	gatewayStatus  int
	gatewayBody    string
	tokenCalls     int
	appCalls       int
	gatewayCalls   int
	appIDs         map[string]string
	lastAppAuth    string
	lastAppBody    map[string]interface{}
	lastGatewayKey string
	lastGateway    map[string]interface{}
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		tokenStatus:   http.StatusOK,
		tokenBody:     `{"access_token":"abc","token_type":"Bearer"}`,
		appStatus:     http.StatusCreated,
		gatewayStatus: http.StatusCreated,
		gatewayBody:   `{"id":"gw_1","status":"active"}`,
		appIDs:        make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.tokenCalls++
		w.WriteHeader(p.tokenStatus)
		_, _ = io.WriteString(w, p.tokenBody)
	})
	mux.HandleFunc("/v1/applications", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.appCalls++
		p.lastAppAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&p.lastAppBody)

		w.WriteHeader(p.appStatus)
		if p.appBody != "" {
			_, _ = io.WriteString(w, p.appBody)
			return
		}
		key := r.Header.Get("Idempotency-Key")
		id, ok := p.appIDs[key]
		if !ok {
			id = fmt.Sprintf("app_%d", len(p.appIDs)+1)
			p.appIDs[key] = id
		}
		_, _ = fmt.Fprintf(w, `{"application_id":%q}`, id)
	})
	mux.HandleFunc("/v1/gateways", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.gatewayCalls++
		p.lastGatewayKey = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&p.lastGateway)
		w.WriteHeader(p.gatewayStatus)
		_, _ = io.WriteString(w, p.gatewayBody)
	})

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakeProvider) calls() (token, app, gateway int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tokenCalls, p.appCalls, p.gatewayCalls
}

func testConfig(p *fakeProvider) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxBodySize: 1 << 20},
		Upstream: config.UpstreamConfig{
			BaseURL:         p.srv.URL,
			TokenPath:       "/oauth2/token",
			ApplicationPath: "/v1/applications",
			ClientID:        "cid",
			ClientSecret:    "csecret",
			Timeout:         5 * time.Second,
		},
		Submission: config.SubmissionConfig{
			PackageID:         "pkg_1",
			Mode:              "intake",
			IdempotencyMode:   "content",
			IdempotencyWindow: 24 * time.Hour,
		},
		Gateway: config.GatewayConfig{
			BaseURL:         p.srv.URL,
			Path:            "/v1/gateways",
			AffiliateKey:    "aff_key_123",
			DefaultTimezone: "America/New_York",
		},
		Events: config.EventsConfig{
			SignatureTolerance: 5 * time.Minute,
			DedupTTL:           time.Hour,
		},
	}
}

// newPipeline wires the real services against the fake provider. dedup
// may be nil.
func newPipeline(t *testing.T, cfg *config.Config, dedup ports.EventDeduplicator) *gin.Engine {
	t.Helper()
	log := zerolog.Nop()
	httpClient := upstream.NewHTTPClient(cfg.Upstream.Timeout)

	tokens := upstream.NewTokenProvider(cfg.Upstream, httpClient, nil, nil, log)
	submitter := service.NewApplicationSubmitter(
		upstream.NewBearerClient(httpClient, nil, metrics.OperationApplication),
		cfg.Upstream.ApplicationEndpoint(), log)
	onboarding := service.NewOnboardingService(tokens, submitter, service.NewIdempotencyKeyer(cfg.Submission), nil,
		service.OnboardingConfig{
			PackageID: cfg.Submission.PackageID,
			Mode:      domain.IntakeMode(cfg.Submission.Mode),
		}, log)

	provisioner := service.NewGatewayProvisioner(
		upstream.NewAffiliateKeyClient(httpClient, nil, cfg.Gateway.AffiliateKey, metrics.OperationGateway),
		service.GatewayDefaults{
			Endpoint:      cfg.Gateway.Endpoint(),
			Timezone:      cfg.Gateway.DefaultTimezone,
			FeeScheduleID: cfg.Gateway.FeeScheduleID,
		}, log)

	events := service.NewEventService(
		service.NewHMACSignatureService(),
		dedup,
		nil,
		service.NewDefaultEventRegistry(provisioner, cfg.Events.AutoProvision, log),
		service.EventConfig{
			SigningSecret: cfg.Events.SigningSecret,
			Tolerance:     cfg.Events.SignatureTolerance,
			DedupTTL:      cfg.Events.DedupTTL,
		}, nil, log)

	return SetupRouter(RouterDeps{
		OnboardingSvc: onboarding,
		Provisioner:   provisioner,
		EventSvc:      events,
		MaxBodySize:   cfg.Server.MaxBodySize,
		Logger:        log,
	})
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func applicationJSON(t *testing.T, mutate func(map[string]interface{})) string {
	t.Helper()
	body := validApplication()
	if mutate != nil {
		mutate(body)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return string(raw)
}

// --- Submission pipeline ---

func TestPipeline_SubmitSuccess(t *testing.T) {
	p := newFakeProvider(t)
	p.appBody = `{"application_id":"app_123"}`
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"applicationId":"app_123"}`, w.Body.String())
	assert.Equal(t, "Bearer abc", p.lastAppAuth)
	assert.Equal(t, "pkg_1", p.lastAppBody["package_id"])
}

func TestPipeline_SubmitFallbackID(t *testing.T) {
	p := newFakeProvider(t)
	p.appBody = `{"id":"app_999"}`
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"applicationId":"app_999"}`, w.Body.String())
}

func TestPipeline_SubmitWithoutID(t *testing.T) {
	p := newFakeProvider(t)
	p.appBody = `{"status":"received"}`
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"applicationId":null}`, w.Body.String())
}

func TestPipeline_MissingRequiredFieldMakesNoCalls(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	for _, field := range []string{"company_name", "first_name", "last_name", "email"} {
		w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, func(b map[string]interface{}) {
			delete(b, field)
		}), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
	}

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, func(b map[string]interface{}) {
		b["terms_accepted"] = false
	}), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token, app, gateway := p.calls()
	assert.Zero(t, token)
	assert.Zero(t, app)
	assert.Zero(t, gateway)
}

func TestPipeline_TokenRejectedSkipsSubmission(t *testing.T) {
	p := newFakeProvider(t)
	p.tokenStatus = http.StatusUnauthorized
	p.tokenBody = `{"error":"invalid_client"}`
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotContains(t, w.Body.String(), "invalid_client")

	token, app, _ := p.calls()
	assert.Equal(t, 1, token)
	assert.Zero(t, app)
}

func TestPipeline_MissingPackageIDIsConfigurationError(t *testing.T) {
	p := newFakeProvider(t)
	cfg := testConfig(p)
	cfg.Submission.PackageID = ""
	r := newPipeline(t, cfg, nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	token, app, _ := p.calls()
	assert.Zero(t, token)
	assert.Zero(t, app)
}

func TestPipeline_IntakeModeDropsBanking(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, func(b map[string]interface{}) {
		b["routing_number"] = "021000021"
		b["account_number"] = "123456789"
	}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	for k, v := range p.lastAppBody {
		assert.NotEqual(t, "021000021", v, k)
		assert.NotEqual(t, "123456789", v, k)
	}
}

func TestPipeline_IdenticalSubmissionsShareApplication(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	first := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)
	second := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	other := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, func(b map[string]interface{}) {
		b["company_name"] = "Other Co"
	}), nil)
	assert.NotEqual(t, first.Body.String(), other.Body.String())
}

func TestPipeline_RandomKeysCreateDistinctApplications(t *testing.T) {
	p := newFakeProvider(t)
	cfg := testConfig(p)
	cfg.Submission.IdempotencyMode = "random"
	r := newPipeline(t, cfg, nil)

	first := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)
	second := do(r, http.MethodPost, ApplicationsPath, applicationJSON(t, nil), nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.NotEqual(t, first.Body.String(), second.Body.String())
}

// --- Gateway pipeline ---

func TestPipeline_GatewayMissingMerchantMakesNoCalls(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, GatewaysPath, `{"company_name":"Acme"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, _, gateway := p.calls()
	assert.Zero(t, gateway)
}

func TestPipeline_GatewaySuccess(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, GatewaysPath, `{"merchant":{"merchant_id":"m_1","company_name":"Acme","first_name":"Ada","last_name":"Lovelace"}}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"gateway":{"id":"gw_1","status":"active"}}`, w.Body.String())
	assert.Equal(t, "aff_key_123", p.lastGatewayKey)
	assert.Equal(t, "America/New_York", p.lastGateway["timezone"])
	assert.Equal(t, "Ada Lovelace", p.lastGateway["contact_name"])
	assert.Equal(t, map[string]interface{}{"capture_higher_than_authorized": false}, p.lastGateway["features"])
}

func TestPipeline_GatewayUpstreamFailure(t *testing.T) {
	p := newFakeProvider(t)
	p.gatewayStatus = http.StatusConflict
	p.gatewayBody = `{"error":"gateway exists"}`
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodPost, GatewaysPath, `{"merchant":{"company_name":"Acme"}}`, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to create gateway", resp["error"])
	assert.Equal(t, `{"error":"gateway exists"}`, resp["details"])
}

func TestPipeline_GatewayWithoutAffiliateKey(t *testing.T) {
	p := newFakeProvider(t)
	cfg := testConfig(p)
	cfg.Gateway.AffiliateKey = ""
	r := newPipeline(t, cfg, nil)

	w := do(r, http.MethodPost, GatewaysPath, `{"merchant":{"company_name":"Acme"}}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	_, _, gateway := p.calls()
	assert.Zero(t, gateway)
}

// --- Event pipeline ---

func TestPipeline_EventReceiver(t *testing.T) {
	p := newFakeProvider(t)
	r := newPipeline(t, testConfig(p), nil)

	w := do(r, http.MethodGet, EventsPath, "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(r, http.MethodPost, EventsPath, "not json", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", w.Body.String())

	w = do(r, http.MethodPost, EventsPath, "{}", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func sign(secret string, ts int64, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10) + "." + body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPipeline_EventSignature(t *testing.T) {
	p := newFakeProvider(t)
	cfg := testConfig(p)
	cfg.Events.SigningSecret = "whsec_test"
	r := newPipeline(t, cfg, nil)

	body := `{"id":"evt_1","type":"application.approved"}`
	ts := time.Now().Unix()

	w := do(r, http.MethodPost, EventsPath, body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, EventsPath, body, map[string]string{
		"X-Signature": sign("wrong", ts, body),
		"X-Timestamp": strconv.FormatInt(ts, 10),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid signature", w.Body.String())

	w = do(r, http.MethodPost, EventsPath, body, map[string]string{
		"X-Signature": "sha256=" + sign("whsec_test", ts, body),
		"X-Timestamp": strconv.FormatInt(ts, 10),
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPipeline_DuplicateEventProvisionsOnce(t *testing.T) {
	p := newFakeProvider(t)
	cfg := testConfig(p)
	cfg.Events.AutoProvision = true

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	r := newPipeline(t, cfg, redisStore.NewEventDeduplicator(client))

	body := `{"id":"evt_ready_1","type":"merchant.ready_to_process","data":{"merchant":{"merchant_id":"m_1","company_name":"Acme"}}}`
	for i := 0; i < 3; i++ {
		w := do(r, http.MethodPost, EventsPath, body, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	_, _, gateway := p.calls()
	assert.Equal(t, 1, gateway)
	assert.Equal(t, "m_1", p.lastGateway["external_id"])
}
