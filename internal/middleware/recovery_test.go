package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type panickyHandler struct {
	panicWith any
	called    bool
}

func (h *panickyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.called = true
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	w.WriteHeader(http.StatusAccepted)
}

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name       string
		panicWith  any
		wantStatus int
		wantPanics float64
	}{
		{"no panic", nil, http.StatusAccepted, 0},
		{"string panic", "set number out of range", http.StatusInternalServerError, 1},
		{"error panic", assert.AnError, http.StatusInternalServerError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricsManager := metrics.NewTestManager()
			next := &panickyHandler{panicWith: tt.panicWith}

			rr := httptest.NewRecorder()
			PanicRecovery(metricsManager)(next).ServeHTTP(rr, httptest.NewRequest("POST", "/workouts/2026-10-12/start", nil))

			assert.True(t, next.called)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantPanics, testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
		})
	}
}

func TestPanicRecovery_NilMetrics(t *testing.T) {
	handler := PanicRecovery(nil)(&panickyHandler{panicWith: "boom"})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/plan/today", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPanicRecovery_AbortHandler(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	handler := PanicRecovery(metricsManager)(&panickyHandler{panicWith: http.ErrAbortHandler})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/events", nil))
	})
	assert.Equal(t, 0.0, testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}
