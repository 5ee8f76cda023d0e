package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_TransitionCounter(t *testing.T) {
	r := NewRegistry()
	r.Transition("project", "pending", "in_progress", OutcomeApplied)
	r.Transition("project", "pending", "in_progress", OutcomeApplied)
	r.Transition("contract", "released", "funded", OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.transitions.WithLabelValues("project", "pending", "in_progress", OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("contract", "released", "funded", OutcomeRejected)))
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.Transition("project", "a", "b", OutcomeApplied)
		r.ObserveRequest("GET", "/x", 200, 0.1)
	})
}

func TestRegistry_HandlerExposesRequests(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("GET", "/api/v1/projects", 200, 0.01)
	r.ObserveRequest("GET", "", 404, 0.01)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `talentpact_http_requests_total{method="GET",route="/api/v1/projects",status="200"} 1`))
	assert.True(t, strings.Contains(body, `route="unmatched"`))

	count, err := testutil.GatherAndCount(r.Gatherer(), "talentpact_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
