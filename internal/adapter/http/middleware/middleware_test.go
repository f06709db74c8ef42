package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		seen = c.GetString(CtxRequestID)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestRequestID_ReusesWellFormedHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "edge-abc.123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "edge-abc.123", w.Body.String())
	assert.Equal(t, "edge-abc.123", w.Header().Get(HeaderRequestID))
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "bad id\nInjected: yes")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotContains(t, w.Body.String(), "Injected")
	assert.Len(t, w.Body.String(), 36)
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(log))
	router.POST("/fail", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/fail", nil)
	req.Header.Set(HeaderRequestID, "req-9")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/fail", entry["path"])
	assert.Equal(t, float64(400), entry["status"])
	assert.Equal(t, "req-9", entry["request_id"])
}

func TestMetrics_ObservesMatchedRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router := gin.New()
	router.Use(Metrics(m))
	router.POST("/api/v1/events", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/events", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/nowhere", nil))

	expected := `
# HELP merchant_onboarding_http_requests_total HTTP requests handled, by route and status.
# TYPE merchant_onboarding_http_requests_total counter
merchant_onboarding_http_requests_total{method="POST",route="/api/v1/events",status="200"} 1
merchant_onboarding_http_requests_total{method="POST",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "merchant_onboarding_http_requests_total"))
}

func TestRecovery_PanicRecovered(t *testing.T) {
	log := zerolog.Nop()

	router := gin.New()
	router.Use(RequestID(), Recovery(log))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, w.Header().Get(HeaderRequestID), resp["request_id"])
}
