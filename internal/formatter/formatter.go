// package formatter renders catalog data for the terminal and exports it to CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/gameshelf/internal/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// FormatItems renders store items as an aligned terminal table.
func FormatItems(items []models.CatalogItem) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(fmt.Sprintf("Store listing (%d items)", len(items))))
	buf.WriteString("\n\n")

	if len(items) == 0 {
		buf.WriteString(faintStyle.Render("no items"))
		buf.WriteString("\n")
		return buf.String()
	}

	buf.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-40s %8s %8s %10s", "ID", "NAME", "RATING", "PRICE", "INSTALLED")))
	buf.WriteString("\n")

	for _, it := range items {
		installed := ""
		if it.Installed {
			installed = badgeStyle.Render("yes")
		}
		buf.WriteString(fmt.Sprintf("%-10d %-40s %8.1f %8.2f %10s\n", it.ID, truncate(it.Name, 40), it.Rating, it.Price, installed))
	}

	return buf.String()
}

// FormatPool renders seed-pool entries as a numbered list.
func FormatPool(entries []models.PoolEntry) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(fmt.Sprintf("Seed pool (%d entries)", len(entries))))
	buf.WriteString("\n\n")

	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("%3d. %s %s\n", i+1, e.Name, faintStyle.Render(fmt.Sprintf("(id %d)", e.ID))))
	}

	return buf.String()
}

// FormatDetail renders a title's detail view as plain text with styled headings.
func FormatDetail(d *models.GameDetail) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(d.Name))
	buf.WriteString("\n")
	buf.WriteString(faintStyle.Render("id " + d.ID))
	buf.WriteString("\n\n")

	if d.Summary != "" {
		buf.WriteString(d.Summary)
		buf.WriteString("\n\n")
	}

	buf.WriteString(headerStyle.Render("Screenshots"))
	buf.WriteString("\n")
	for _, s := range d.Screenshots {
		buf.WriteString("  " + s + "\n")
	}

	if d.VideoURL != nil {
		buf.WriteString(headerStyle.Render("Video"))
		buf.WriteString("\n  " + *d.VideoURL + "\n")
	}

	return buf.String()
}

// ExportToCSV converts store items to CSV with columns: ID, Name, CoverURL, Rating, Price, Installed
func ExportToCSV(items []models.CatalogItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "CoverURL", "Rating", "Price", "Installed"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, it := range items {
		record := []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			it.CoverURL,
			strconv.FormatFloat(it.Rating, 'f', 1, 64),
			strconv.FormatFloat(it.Price, 'f', 2, 64),
			strconv.FormatBool(it.Installed),
		}
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

// WriteCSVExport writes store items to {base}_games.csv.
//
// base defaults to "store".
func WriteCSVExport(items []models.CatalogItem, base string) (string, error) {
	if base == "" {
		base = "store"
	}

	data, err := ExportToCSV(items)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	path := base + "_games.csv"
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
