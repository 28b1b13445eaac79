package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/bandsite/internal/formatter"
	"github.com/desertthunder/bandsite/internal/models"
	"github.com/desertthunder/bandsite/internal/shared"
	"github.com/urfave/cli/v3"
)

// Shows fetches the sheet once and prints the shows in the requested format.
//
// With --json the output is exactly the envelope served by /api/tour, including on failure.
func (r *Runner) Shows(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if url := cmd.String("url"); url != "" {
		config.Sheet.URL = url
		if err := config.Validate(); err != nil {
			return fmt.Errorf("%w: --url: %w", shared.ErrInvalidFlag, err)
		}
	}

	lang, err := formatter.ParseLang(cmd.String("lang"))
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidFlag, err)
	}

	format := strings.ToLower(cmd.String("format"))
	switch format {
	case "text", "markdown", "md", "csv":
	default:
		return fmt.Errorf("%w: unsupported format %q (want text, markdown or csv)", shared.ErrInvalidFlag, format)
	}

	sheet := r.sheetService(config, nil)

	if cmd.Bool("json") {
		list, err := sheet.Load(ctx)
		if err != nil {
			r.logger.Error("failed to load tour data", "error", err)
		}
		if werr := r.writeJSON(list, cmd.Bool("pretty")); werr != nil {
			return werr
		}
		return err
	}

	shows, err := sheet.FetchShows(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", models.LoadErrorMessage, err)
	}

	r.logger.Debug("fetched shows", "count", len(shows))

	switch format {
	case "markdown", "md":
		return r.write(formatter.ShowsToMarkdown(shows, sheet.Providers(), lang))
	case "csv":
		data, err := formatter.ShowsToCSV(shows, sheet.Providers())
		if err != nil {
			return err
		}
		return r.write(data)
	default:
		return r.write(formatter.ShowsToText(shows, sheet.Providers(), lang))
	}
}
