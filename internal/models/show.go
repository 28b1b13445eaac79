package models

import (
	"encoding/json"
	"strings"
)

// LoadErrorMessage is the caller-facing error text of a failed tour load.
const LoadErrorMessage = "Failed to load tour data"

// Record maps a lower-cased, trimmed header name to the trimmed value of one CSV data line.
type Record map[string]string

// Status is the sale state of a show. Values are passed through from the sheet, lower-cased.
type Status string

const (
	StatusNew     Status = "new"
	StatusOnSale  Status = "onsale"
	StatusSoldOut Status = "soldout"

	DefaultStatus = StatusOnSale
)

// NewStatus lower-cases raw, substituting [DefaultStatus] when it is blank.
func NewStatus(raw string) Status {
	if strings.TrimSpace(raw) == "" {
		return DefaultStatus
	}
	return Status(strings.ToLower(raw))
}

// Known reports whether s is one of the statuses the site renders specially.
func (s Status) Known() bool {
	switch s {
	case StatusNew, StatusOnSale, StatusSoldOut:
		return true
	}
	return false
}

// Show is a single tour date ready for display.
//
// Tickets holds provider column name → URL, only for provider columns present in the sheet.
// When encoded to JSON the ticket links are flattened into top-level keys next to date, city and venue.
type Show struct {
	Date    string
	City    string
	Venue   string
	Tickets map[string]string
	Status  Status
}

// Ticket returns the link for provider and whether its column was present.
func (s Show) Ticket(provider string) (string, bool) {
	link, ok := s.Tickets[provider]
	return link, ok
}

// MarshalJSON flattens ticket links into the show object.
func (s Show) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(s.Tickets)+4)
	for provider, link := range s.Tickets {
		out[provider] = link
	}
	out["date"] = s.Date
	out["city"] = s.City
	out["venue"] = s.Venue
	out["status"] = string(s.Status)
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of [Show.MarshalJSON]: unknown keys become ticket links.
func (s *Show) UnmarshalJSON(data []byte) error {
	var in map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*s = Show{
		Date:   in["date"],
		City:   in["city"],
		Venue:  in["venue"],
		Status: Status(in["status"]),
	}
	for key, value := range in {
		switch key {
		case "date", "city", "venue", "status":
			continue
		}
		if s.Tickets == nil {
			s.Tickets = make(map[string]string)
		}
		s.Tickets[key] = value
	}
	return nil
}

// ShowList is the JSON envelope served by the tour endpoint.
type ShowList struct {
	Shows []Show `json:"shows"`
	Error string `json:"error,omitempty"`
}

// NewShowList wraps shows in a success envelope. A nil slice is encoded as [].
func NewShowList(shows []Show) ShowList {
	if shows == nil {
		shows = []Show{}
	}
	return ShowList{Shows: shows}
}

// FailedShowList is the envelope returned when the sheet could not be loaded.
func FailedShowList() ShowList {
	return ShowList{Shows: []Show{}, Error: LoadErrorMessage}
}
