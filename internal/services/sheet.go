// Fetching the tour schedule from a published spreadsheet export

package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/bandsite/internal/metrics"
	"github.com/desertthunder/bandsite/internal/models"
	"github.com/desertthunder/bandsite/internal/shared"
	"golang.org/x/time/rate"
)

// SheetService reads the published sheet and turns it into shows.
//
// It keeps no state between calls: every call performs exactly one GET and one parse pass.
type SheetService struct {
	url        string
	providers  []string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	recorder   FetchRecorder
	metrics    *metrics.Metrics
	logger     *log.Logger
}

// SheetOpts contains configuration options for creating a [SheetService].
type SheetOpts struct {
	URL        string
	Providers  []string
	Timeout    time.Duration // Per-fetch timeout, zero disables it
	RateLimit  float64       // Outbound requests per second, zero disables limiting
	UserAgent  string
	HTTPClient *http.Client
	Recorder   FetchRecorder    // Optional fetch audit log
	Metrics    *metrics.Metrics // Optional
	Logger     *log.Logger
}

// NewSheetService creates a new [SheetService] from opts.
func NewSheetService(opts SheetOpts) *SheetService {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	s := &SheetService{
		url:        opts.URL,
		providers:  normalizeProviders(opts.Providers),
		timeout:    opts.Timeout,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		recorder:   opts.Recorder,
		metrics:    opts.Metrics,
		logger:     shared.WithLogger(opts.Logger, "component", "sheet"),
	}

	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return s
}

// NewSheetServiceFromConfig wires a [SheetService] from the sheet section of the config.
func NewSheetServiceFromConfig(cfg shared.SheetConfig, opts SheetOpts) *SheetService {
	opts.URL = cfg.URL
	opts.Providers = cfg.Providers
	opts.Timeout = cfg.Timeout()
	opts.RateLimit = cfg.RateLimit
	opts.UserAgent = cfg.UserAgent
	return NewSheetService(opts)
}

// URL returns the sheet endpoint.
func (s *SheetService) URL() string { return s.url }

// Providers returns the normalized ticket provider columns.
func (s *SheetService) Providers() []string { return s.providers }

// FetchShows downloads the sheet, bypassing caches, and returns its dated rows as shows.
//
// A non-2xx status is reported as [shared.ErrFetchFailed].
func (s *SheetService) FetchShows(ctx context.Context) ([]models.Show, error) {
	start := time.Now()

	body, status, err := s.fetch(ctx)
	var shows []models.Show
	if err == nil {
		shows = ToShows(ParseCSV(body), s.providers)
	}

	elapsed := time.Since(start)
	s.metrics.ObserveFetch(err, elapsed, len(shows))
	s.record(status, len(shows), elapsed, err)

	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched shows", "count", len(shows), "status", status, "duration", elapsed)
	return shows, nil
}

// Load wraps [SheetService.FetchShows] in the envelope served to the site.
//
// The envelope is always usable: on failure it is [models.FailedShowList] and the cause is returned
// alongside it for the caller to log.
func (s *SheetService) Load(ctx context.Context) (models.ShowList, error) {
	shows, err := s.FetchShows(ctx)
	if err != nil {
		return models.FailedShowList(), err
	}
	return models.NewShowList(shows), nil
}

// fetch performs the GET and returns the body text and status code.
func (s *SheetService) fetch(ctx context.Context) (string, int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", 0, fmt.Errorf("%w: rate limit wait: %w", shared.ErrFetchFailed, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to create request: %w", shared.ErrFetchFailed, err)
	}

	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: request failed: %w", shared.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode, fmt.Errorf("%w: status %d", shared.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("%w: %w", shared.ErrReadFailed, err)
	}

	return string(body), resp.StatusCode, nil
}

func (s *SheetService) record(status, count int, elapsed time.Duration, fetchErr error) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordFetch(models.NewFetchLog(s.url, status, count, elapsed, fetchErr)); err != nil {
		s.logger.Warn("failed to record fetch", "error", err)
	}
}
