package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/gameshelf/internal/models"
	th "github.com/desertthunder/gameshelf/internal/testing"
)

func sampleItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:        1942,
			Name:      "Starlit Coast",
			CoverURL:  "https://images.example.com/covers/starlit.jpg",
			Rating:    88.5,
			Price:     19.99,
			Installed: true,
		},
		{
			ID:       7310,
			Name:     "Obsidian Trail",
			CoverURL: "https://images.example.com/covers/obsidian.jpg",
			Rating:   74.2,
			Price:    9.99,
		},
	}
}

func TestFormatters(t *testing.T) {
	t.Run("FormatItems", func(t *testing.T) {
		output := FormatItems(sampleItems())

		if !strings.Contains(output, "2 items") {
			t.Errorf("missing item count, got: %s", output)
		}
		if !strings.Contains(output, "Starlit Coast") {
			t.Errorf("missing item name")
		}
		if !strings.Contains(output, "19.99") {
			t.Errorf("missing price")
		}
		if !strings.Contains(output, "yes") {
			t.Errorf("missing installed badge")
		}
	})

	t.Run("FormatItems with no items", func(t *testing.T) {
		output := FormatItems(nil)
		if !strings.Contains(output, "no items") {
			t.Errorf("expected empty notice, got: %s", output)
		}
	})

	t.Run("FormatItems truncates long names", func(t *testing.T) {
		items := []models.CatalogItem{{ID: 1, Name: strings.Repeat("x", 60)}}
		output := FormatItems(items)
		if !strings.Contains(output, "...") {
			t.Errorf("expected truncated name, got: %s", output)
		}
	})

	t.Run("FormatPool", func(t *testing.T) {
		output := FormatPool([]models.PoolEntry{
			{ID: 1001, Name: "Neon Rift"},
			{ID: 1002, Name: "Solar Drift"},
		})

		if !strings.Contains(output, "2 entries") {
			t.Errorf("missing entry count, got: %s", output)
		}
		if !strings.Contains(output, "Neon Rift") || !strings.Contains(output, "id 1001") {
			t.Errorf("missing pool entry, got: %s", output)
		}
	})

	t.Run("FormatDetail", func(t *testing.T) {
		video := "https://www.youtube.com/embed/abc123"
		detail := &models.GameDetail{
			ID:          "1942",
			Name:        "Starlit Coast",
			Summary:     "A coastal exploration adventure.",
			Screenshots: []string{"https://images.example.com/shots/1.jpg"},
			VideoURL:    &video,
		}

		output := FormatDetail(detail)

		for _, want := range []string{"Starlit Coast", "id 1942", "coastal exploration", "shots/1.jpg", "embed/abc123"} {
			if !strings.Contains(output, want) {
				t.Errorf("detail output missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("FormatDetail without video", func(t *testing.T) {
		detail := &models.GameDetail{ID: "7310", Name: "Obsidian Trail", Screenshots: []string{}}
		output := FormatDetail(detail)
		if strings.Contains(output, "Video") {
			t.Errorf("unexpected video section: %s", output)
		}
	})
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleItems())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Name,CoverURL,Rating,Price,Installed") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1942,Starlit Coast") {
			t.Errorf("CSV missing first record")
		}
		if !strings.Contains(output, "9.99,false") {
			t.Errorf("CSV missing second record fields")
		}
	})

	t.Run("ExportToCSV with no items", func(t *testing.T) {
		data, err := ExportToCSV(nil)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected headers only, got %d lines", len(lines))
		}
	})

	t.Run("WriteCSVExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteCSVExport(sampleItems(), "")
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if path != "store_games.csv" {
			t.Errorf("unexpected default path: %s", path)
		}
		th.AssertFileExists(t, path)

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "Starlit Coast") {
			t.Errorf("exported CSV missing data: %s", content)
		}
	})

	t.Run("WriteCSVExport with custom base", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteCSVExport(sampleItems(), "browse")
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}
		if path != "browse_games.csv" {
			t.Errorf("unexpected path: %s", path)
		}
	})
}
