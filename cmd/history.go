package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/desertthunder/bandsite/internal/repositories"
	"github.com/desertthunder/bandsite/internal/shared"
	"github.com/urfave/cli/v3"
)

type historyEntry struct {
	ID         string    `json:"id"`
	Sequence   int       `json:"sequence"`
	SourceURL  string    `json:"source_url"`
	StatusCode int       `json:"status_code"`
	ShowCount  int       `json:"show_count"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// History lists recent fetch log entries, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.OpenDatabase(config.Database)
	if errors.Is(err, shared.ErrDatabaseDisabled) {
		return fmt.Errorf("%w: set database.enabled = true and run 'bandsite setup database'", err)
	}
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewFetchLogRepository(db)

	if keep := cmd.Int("prune"); keep >= 0 {
		removed, err := repo.Prune(int(keep))
		if err != nil {
			return err
		}
		r.logger.Info("pruned fetch log", "removed", removed, "kept", keep)
	}

	entries, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		out := make([]historyEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, historyEntry{
				ID:         e.ID(),
				Sequence:   e.Sequence(),
				SourceURL:  e.SourceURL,
				StatusCode: e.StatusCode,
				ShowCount:  e.ShowCount,
				Error:      e.Error,
				DurationMS: e.Duration.Milliseconds(),
				CreatedAt:  e.CreatedAt(),
			})
		}
		return r.writeJSON(out, true)
	}

	if len(entries) == 0 {
		return r.writePlain("No fetches recorded.\n")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "TIME", "STATUS", "SHOWS", "DURATION", "ERROR")
	for _, e := range entries {
		t.Row(
			strconv.Itoa(e.Sequence()),
			e.CreatedAt().Local().Format(time.DateTime),
			strconv.Itoa(e.StatusCode),
			strconv.Itoa(e.ShowCount),
			e.Duration.String(),
			e.Error,
		)
	}
	return r.writePlain("%s\n", t.Render())
}
