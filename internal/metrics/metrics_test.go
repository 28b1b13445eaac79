package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	t.Run("ObserveFetch", func(t *testing.T) {
		m := New()

		m.ObserveFetch(nil, 20*time.Millisecond, 4)
		m.ObserveFetch(errors.New("boom"), time.Millisecond, 99)

		if got := testutil.ToFloat64(m.fetchTotal.WithLabelValues(ResultSuccess)); got != 1 {
			t.Errorf("expected 1 success, got %v", got)
		}
		if got := testutil.ToFloat64(m.fetchTotal.WithLabelValues(ResultFailure)); got != 1 {
			t.Errorf("expected 1 failure, got %v", got)
		}
		if got := testutil.ToFloat64(m.shows); got != 4 {
			t.Errorf("expected shows gauge to keep last success count 4, got %v", got)
		}
		if got := testutil.ToFloat64(m.lastSuccess); got == 0 {
			t.Error("expected last success timestamp to be set")
		}
	})

	t.Run("ObserveRequest", func(t *testing.T) {
		m := New()
		m.ObserveRequest("/api/tour", http.StatusOK)
		m.ObserveRequest("/api/tour", http.StatusOK)
		m.ObserveRequest("/api/tour", http.StatusInternalServerError)

		if got := testutil.ToFloat64(m.requests.WithLabelValues("/api/tour", "200")); got != 2 {
			t.Errorf("expected 2 ok requests, got %v", got)
		}
		if got := testutil.ToFloat64(m.requests.WithLabelValues("/api/tour", "500")); got != 1 {
			t.Errorf("expected 1 failed request, got %v", got)
		}
	})

	t.Run("Handler", func(t *testing.T) {
		m := New()
		m.ObserveFetch(nil, time.Millisecond, 2)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		body, _ := io.ReadAll(rec.Body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(string(body), "bandsite_sheet_fetch_total") {
			t.Errorf("expected fetch counter in exposition, got:\n%s", body)
		}
	})

	t.Run("Nil Receiver", func(t *testing.T) {
		var m *Metrics
		m.ObserveFetch(nil, time.Second, 1)
		m.ObserveRequest("/", 200)

		if m.Registry() != nil {
			t.Error("expected nil registry")
		}

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 from nil metrics handler, got %d", rec.Code)
		}
	})
}
