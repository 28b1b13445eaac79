// Parsing of the published sheet's CSV export.

package services

import (
	"strings"
	"unicode"

	"github.com/desertthunder/bandsite/internal/models"
)

// DefaultProviders are the ticket provider columns copied onto each show when none are configured.
var DefaultProviders = []string{"bubilet", "biletix"}

// ParseCSV splits a sheet export into header-keyed records.
//
// The format is deliberately naive: lines split on "\n" and fields on ",", with no quoting.
// A field containing a comma shifts every later column in its row.
//
// Header names are trimmed and lower-cased. Blank data lines are skipped, short rows are padded with
// empty strings and columns beyond the header are dropped. Fewer than two lines yields no records.
func ParseCSV(text string) []models.Record {
	lines := strings.Split(trim(text), "\n")
	if len(lines) < 2 {
		return []models.Record{}
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = strings.ToLower(trim(h))
	}

	records := make([]models.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if trim(line) == "" {
			continue
		}

		cols := strings.Split(line, ",")
		record := make(models.Record, len(headers))
		for i, h := range headers {
			if i < len(cols) {
				record[h] = trim(cols[i])
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

// trim strips whitespace and byte order marks, which spreadsheet exports prepend to the first header.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// ToShows keeps records with a date and projects them onto [models.Show].
//
// Date, city and venue are copied verbatim. A provider's link is set only when its column exists.
// Status comes from the "sale" column, lower-cased, defaulting to [models.DefaultStatus].
func ToShows(records []models.Record, providers []string) []models.Show {
	shows := make([]models.Show, 0, len(records))
	for _, r := range records {
		if r["date"] == "" {
			continue
		}

		show := models.Show{
			Date:   r["date"],
			City:   r["city"],
			Venue:  r["venue"],
			Status: models.NewStatus(r["sale"]),
		}

		for _, p := range providers {
			link, ok := r[p]
			if !ok {
				continue
			}
			if show.Tickets == nil {
				show.Tickets = make(map[string]string, len(providers))
			}
			show.Tickets[p] = link
		}

		shows = append(shows, show)
	}

	return shows
}

// normalizeProviders lower-cases and trims provider names so they match parsed header keys.
func normalizeProviders(providers []string) []string {
	if len(providers) == 0 {
		providers = DefaultProviders
	}

	out := make([]string, 0, len(providers))
	seen := make(map[string]bool, len(providers))
	for _, p := range providers {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		switch p {
		case "date", "city", "venue", "sale", "status":
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
