// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/desertthunder/bandsite/internal/models"
)

// SampleCSV is a sheet export covering the common cases: a new show, a sold-out show,
// a blank sale column, an undated row and a blank line.
const SampleCSV = `Date,City,Venue,Bubilet,Biletix,Sale
2025-11-15,Malatya,OFEST,https://bubilet.example/ofest,,new
2025-11-22,Istanbul,Zorlu PSM,,https://biletix.example/zorlu,SOLDOUT
2025-12-06,Ankara,IF Performance,https://bubilet.example/if,,

,Izmir,Hangar,,,onsale
`

// SheetServer is an httptest server that serves a fixed sheet body and counts requests.
type SheetServer struct {
	*httptest.Server
	Status  int
	Body    string
	hits    atomic.Int64
	mu      sync.Mutex
	headers []http.Header
}

// NewSheetServer starts a [SheetServer] that is closed when the test ends.
func NewSheetServer(t *testing.T, status int, body string) *SheetServer {
	t.Helper()
	s := &SheetServer{Status: status, Body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.mu.Lock()
		s.headers = append(s.headers, r.Header.Clone())
		s.mu.Unlock()

		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(s.Status)
		io.WriteString(w, s.Body)
	}))
	t.Cleanup(s.Close)
	return s
}

// Hits returns the number of requests served.
func (s *SheetServer) Hits() int { return int(s.hits.Load()) }

// LastHeader returns the headers of the most recent request, or nil.
func (s *SheetServer) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.headers) == 0 {
		return nil
	}
	return s.headers[len(s.headers)-1]
}

// MockRecorder is an in-memory fetch recorder.
type MockRecorder struct {
	mu      sync.Mutex
	Entries []*models.FetchLog
	Err     error
}

func (m *MockRecorder) RecordFetch(entry *models.FetchLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return m.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
