package catalog

import (
	"testing"

	"github.com/desertthunder/gameshelf/internal/models"
)

func TestTagInstalled(t *testing.T) {
	makeItems := func() []models.CatalogItem {
		return []models.CatalogItem{
			{ID: 5}, {ID: 6}, {ID: 9}, {ID: 10},
		}
	}

	t.Run("Membership Tagging", func(t *testing.T) {
		items := makeItems()
		TagInstalled(items, map[int64]bool{5: true, 9: true})

		want := []bool{true, false, true, false}
		for i, item := range items {
			if item.Installed != want[i] {
				t.Errorf("item %d (id %d): installed = %v, want %v", i, item.ID, item.Installed, want[i])
			}
		}
	})

	t.Run("Empty Set Flags First Three", func(t *testing.T) {
		items := makeItems()
		TagInstalled(items, nil)

		want := []bool{true, true, true, false}
		for i, item := range items {
			if item.Installed != want[i] {
				t.Errorf("item %d: installed = %v, want %v", i, item.Installed, want[i])
			}
		}
	})

	t.Run("Fewer Than Three Items", func(t *testing.T) {
		items := []models.CatalogItem{{ID: 1}, {ID: 2}}
		TagInstalled(items, map[int64]bool{})

		for i, item := range items {
			if !item.Installed {
				t.Errorf("item %d should be installed", i)
			}
		}
	})

	t.Run("Ownership Clears Stale Flags", func(t *testing.T) {
		items := makeItems()
		items[0].Installed = true

		TagInstalled(items, map[int64]bool{10: true})

		if items[0].Installed {
			t.Error("item not in the owned set should not stay installed")
		}
		if !items[3].Installed {
			t.Error("owned item should be installed")
		}
	})
}
