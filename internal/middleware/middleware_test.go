package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/pharmacy-tasks/internal/metrics"
	"github.com/yukikurage/pharmacy-tasks/internal/web"
)

func newEngine(t *testing.T, logOut *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	log := zerolog.New(logOut)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestLogger(log), Metrics(), Recovery(log))

	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/missing", func(c *gin.Context) { c.String(http.StatusNotFound, "missing") })
	r.GET("/failed", func(c *gin.Context) {
		_ = c.Error(errors.New("store unavailable"))
		c.String(http.StatusInternalServerError, "failed")
	})
	r.GET("/panic", func(c *gin.Context) { panic("stock ledger corrupted") })
	return r
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func accessLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	for _, entry := range decodeLines(t, buf) {
		if entry["message"] == "request" {
			return entry
		}
	}
	t.Fatalf("no access log line in %q", buf.String())
	return nil
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		path      string
		wantLevel string
		wantError string
	}{
		{path: "/ok", wantLevel: "info"},
		{path: "/missing", wantLevel: "warn"},
		{path: "/failed", wantLevel: "error", wantError: "store unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			r := newEngine(t, &buf)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			entry := accessLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(w.Code), entry["status"])
			if tt.wantError != "" {
				assert.Contains(t, entry["error"], tt.wantError)
			}
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(t, &buf)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "rx-77")
	r.ServeHTTP(w, req)

	assert.Equal(t, "rx-77", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "rx-77", accessLine(t, &buf)["request_id"])
}

func TestRecovery_RendersErrorPage(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(t, &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	assert.NotContains(t, w.Body.String(), "stock ledger corrupted")

	var recovered bool
	for _, entry := range decodeLines(t, &buf) {
		if entry["message"] == "recovered from panic" {
			recovered = true
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, "stock ledger corrupted", entry["panic"])
		}
	}
	assert.True(t, recovered)
	assert.Equal(t, "error", accessLine(t, &buf)["level"])
}

func TestMetrics_CountsByRoute(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(t, &buf)

	okCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")
	panicCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/panic", "500")
	unmatchedCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	okBefore := testutil.ToFloat64(okCounter)
	panicBefore := testutil.ToFloat64(panicCounter)
	unmatchedBefore := testutil.ToFloat64(unmatchedCounter)

	for _, path := range []string{"/ok", "/ok", "/panic", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(okCounter))
	assert.Equal(t, panicBefore+1, testutil.ToFloat64(panicCounter))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(unmatchedCounter))
}
