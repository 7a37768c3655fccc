package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/liftlog/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/progress/names", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Name("progress-names")
	r.Use(RequestMetrics(metricsManager))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/progress/names", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))

	count, err := testutil.GatherAndCount(reg, "liftlog_test_server_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMCPSecretCheck(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	testCases := []struct {
		name     string
		secret   string
		provided string
		expected int
	}{
		{name: "valid", secret: "s3cr3t", provided: "s3cr3t", expected: http.StatusOK},
		{name: "wrong", secret: "s3cr3t", provided: "nope", expected: http.StatusUnauthorized},
		{name: "missing", secret: "s3cr3t", expected: http.StatusUnauthorized},
		{name: "disabled", secret: "", provided: "", expected: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/mcp", nil)
			if tc.provided != "" {
				req.Header.Set(MCPSecretHeader, tc.provided)
			}
			rr := httptest.NewRecorder()
			MCPSecretCheck(tc.secret)(next).ServeHTTP(rr, req)
			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}
