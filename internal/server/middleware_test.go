package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/bandsite/internal/shared"
	"github.com/go-chi/chi/v5/middleware"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tour", nil))

	out := buf.String()
	for _, want := range []string{"method=GET", "path=/api/tour", "status=418"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output, got %q", want, out)
		}
	}

	t.Run("Includes Request ID", func(t *testing.T) {
		var buf bytes.Buffer
		h := middleware.RequestID(Logging(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

		req := httptest.NewRequest(http.MethodGet, "/api/tour", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), req)

		if !strings.Contains(buf.String(), "request_id=abc-123") {
			t.Errorf("expected incoming request id in log output, got %q", buf.String())
		}
	})
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := wrapWriter(rec)

	w.Write([]byte("x"))
	w.WriteHeader(http.StatusInternalServerError)

	if w.status != http.StatusOK || rec.Code != http.StatusOK {
		t.Errorf("expected first status to win, got %d / %d", w.status, rec.Code)
	}
	if w.Unwrap() != rec {
		t.Error("expected Unwrap to return underlying writer")
	}
}
