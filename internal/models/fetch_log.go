package models

import (
	"fmt"
	"time"
)

// FetchLog records the outcome of one attempt to read the published sheet.
type FetchLog struct {
	id         string
	sequence   int
	SourceURL  string
	StatusCode int
	ShowCount  int
	Error      string
	Duration   time.Duration
	createdAt  time.Time
}

// NewFetchLog creates an unsaved [FetchLog] stamped with the current time.
func NewFetchLog(sourceURL string, statusCode, showCount int, duration time.Duration, err error) *FetchLog {
	l := &FetchLog{
		SourceURL:  sourceURL,
		StatusCode: statusCode,
		ShowCount:  showCount,
		Duration:   duration,
		createdAt:  time.Now().UTC(),
	}
	if err != nil {
		l.Error = err.Error()
	}
	return l
}

func (l *FetchLog) ID() string           { return l.id }
func (l *FetchLog) Sequence() int        { return l.sequence }
func (l *FetchLog) CreatedAt() time.Time { return l.createdAt }

func (l *FetchLog) SetID(id string)           { l.id = id }
func (l *FetchLog) SetSequence(seq int)       { l.sequence = seq }
func (l *FetchLog) SetCreatedAt(at time.Time) { l.createdAt = at }

// Succeeded reports whether the attempt produced a show list.
func (l *FetchLog) Succeeded() bool {
	return l.Error == ""
}

// Validate checks required fields.
func (l *FetchLog) Validate() error {
	if l.id == "" {
		return fmt.Errorf("fetch log id is required")
	}
	if l.SourceURL == "" {
		return fmt.Errorf("fetch log source url is required")
	}
	if l.ShowCount < 0 {
		return fmt.Errorf("fetch log show count must not be negative")
	}
	return nil
}
