package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLogin(t *testing.T) {
	m := New()

	m.ObserveLogin(LoginSucceeded)
	m.ObserveLogin(LoginRejected)
	m.ObserveLogin(LoginRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginSucceeded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginRejected)))
}

func TestObserveRequest_ExposedByHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/farms", "200", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/farms", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `agrimanager_http_requests_total{code="200",method="GET",route="/api/farms"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLogin(LoginFailed)
		m.ObserveRequest(http.MethodGet, "/", "200", 0)
	})
}
