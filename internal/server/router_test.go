package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type routesHandler struct {
	routes []string
	body   string
}

func (h routesHandler) Routes() []string { return h.routes }

func (h routesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(h.body))
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		t.Run("Matching Method", func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
				t.Errorf("expected 200 pong, got %d %q", rec.Code, rec.Body.String())
			}
		})

		t.Run("HEAD On GET Route", func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/ping", nil))

			if rec.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", rec.Code)
			}
		})

		t.Run("Wrong Method", func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected 405, got %d", rec.Code)
			}
			if rec.Header().Get("Allow") != http.MethodGet {
				t.Errorf("expected Allow GET, got %q", rec.Header().Get("Allow"))
			}
		})
	})

	t.Run("Handler Registers All Routes", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(routesHandler{routes: []string{"/a", "/b"}, body: "ok"})

		for _, path := range []string{"/a", "/b"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Body.String() != "ok" {
				t.Errorf("expected %s to be routed, got %d %q", path, rec.Code, rec.Body.String())
			}
		}
	})

	t.Run("Middleware Order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(mark("first"), mark("second"))
		r.Handler(routesHandler{routes: []string{"/"}, body: "x"})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if strings.Join(order, ",") != "first,second" {
			t.Errorf("expected middleware in registration order, got %v", order)
		}
	})
}
