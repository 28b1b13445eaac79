// package formatter renders the tour feed for the terminal and for export (text, Markdown, CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/bandsite/internal/models"
)

// Lang selects the label and date language.
type Lang string

const (
	English Lang = "en"
	Turkish Lang = "tr"
)

// ParseLang accepts "en" or "tr" in any case.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case English, "":
		return English, nil
	case Turkish:
		return Turkish, nil
	}
	return "", fmt.Errorf("unsupported language %q (want en or tr)", s)
}

var statusLabels = map[Lang]map[models.Status]string{
	English: {models.StatusNew: "New", models.StatusOnSale: "On sale", models.StatusSoldOut: "Sold out"},
	Turkish: {models.StatusNew: "Yeni", models.StatusOnSale: "Satışta", models.StatusSoldOut: "Tükendi"},
}

var (
	trMonths   = [...]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}
	trWeekdays = [...]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}
)

var statusStyles = map[models.Status]lipgloss.Style{
	models.StatusNew:     lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	models.StatusOnSale:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	models.StatusSoldOut: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
}

// StatusLabel returns the display label for status. Unknown statuses render as on sale, like the site does.
func StatusLabel(status models.Status, lang Lang) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels[English]
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return labels[models.StatusOnSale]
}

// FormatDate renders a YYYY-MM-DD date as "Sat 15 Nov 2025" (or "Cmt 15 Kas 2025").
//
// Dates that do not parse are returned unchanged.
func FormatDate(iso string, lang Lang) string {
	d, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}

	if lang == Turkish {
		return fmt.Sprintf("%s %02d %s %d", trWeekdays[d.Weekday()], d.Day(), trMonths[d.Month()-1], d.Year())
	}
	return d.Format("Mon 02 Jan 2006")
}

// ShowsToText renders one line per show with a coloured status label.
func ShowsToText(shows []models.Show, providers []string, lang Lang) []byte {
	var buf bytes.Buffer

	if len(shows) == 0 {
		if lang == Turkish {
			buf.WriteString("Planlanmış konser yok.\n")
		} else {
			buf.WriteString("No upcoming shows.\n")
		}
		return buf.Bytes()
	}

	for _, s := range shows {
		label := StatusLabel(s.Status, lang)
		style, ok := statusStyles[s.Status]
		if !ok {
			style = statusStyles[models.StatusOnSale]
		}

		fmt.Fprintf(&buf, "%s  %s, %s  [%s]\n", FormatDate(s.Date, lang), s.City, s.Venue, style.Render(label))
		for _, p := range providers {
			if link, ok := s.Ticket(p); ok && link != "" && s.Status != models.StatusSoldOut {
				fmt.Fprintf(&buf, "    %s: %s\n", p, link)
			}
		}
	}

	return buf.Bytes()
}

// ShowsToMarkdown renders shows as a Markdown table.
func ShowsToMarkdown(shows []models.Show, providers []string, lang Lang) []byte {
	var buf bytes.Buffer

	title, tickets := "Tour / Tickets", "Tickets"
	if lang == Turkish {
		title, tickets = "Turne / Biletler", "Biletler"
	}

	fmt.Fprintf(&buf, "# %s\n\n", title)
	buf.WriteString("| Date | City | Venue | Status | " + tickets + " |\n")
	buf.WriteString("|---|---|---|---|---|\n")

	for _, s := range shows {
		var links []string
		for _, p := range providers {
			if link, ok := s.Ticket(p); ok && link != "" {
				links = append(links, fmt.Sprintf("[%s](%s)", p, link))
			}
		}
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s |\n",
			FormatDate(s.Date, lang), escapeCell(s.City), escapeCell(s.Venue),
			StatusLabel(s.Status, lang), strings.Join(links, " "))
	}

	return buf.Bytes()
}

// ShowsToCSV writes shows back out in the sheet's column layout: date, city, venue, providers..., sale.
func ShowsToCSV(shows []models.Show, providers []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := append([]string{"date", "city", "venue"}, providers...)
	headers = append(headers, "sale")
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range shows {
		record := []string{s.Date, s.City, s.Venue}
		for _, p := range providers {
			link, _ := s.Ticket(p)
			record = append(record, link)
		}
		record = append(record, string(s.Status))

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
