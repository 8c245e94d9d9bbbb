package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carvalue/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	recorder := NewRecorder(prometheus.NewRegistry())

	recorder.ObserveAuth("signin", service.OutcomeSuccess)
	recorder.ObserveAuth("signin", service.OutcomeSuccess)
	recorder.ObserveAuth("signin", service.OutcomeRejected)
	recorder.ObserveReport(service.ReportEventCreated)

	assert.InDelta(t, 2, testutil.ToFloat64(recorder.authOps.WithLabelValues("signin", service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.authOps.WithLabelValues("signin", service.OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.reportEvents.WithLabelValues(service.ReportEventCreated)), 0)
}

func TestHandler_ExposesRecordedMetrics(t *testing.T) {
	registry := NewRegistry()
	recorder := NewRecorder(registry)
	recorder.ObserveHTTP(http.MethodGet, "/reports", http.StatusOK, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	NewHandler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `carvalue_http_request_duration_seconds_count{method="GET",route="/reports",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
