package catalog

import "github.com/desertthunder/gameshelf/internal/models"

// installedPreviewCount is the number of leading items flagged installed when
// no ownership information is available. A demo affordance, not an ownership
// signal.
const installedPreviewCount = 3

// TagInstalled sets the Installed flag on each item whose id appears in owned.
//
// When owned is empty (no username supplied, lookup failed, or the user owns
// nothing) the first three items in their current order are flagged instead.
// Items are modified in place.
func TagInstalled(items []models.CatalogItem, owned map[int64]bool) {
	if len(owned) == 0 {
		for i := range items {
			items[i].Installed = i < installedPreviewCount
		}
		return
	}

	for i := range items {
		items[i].Installed = owned[items[i].ID]
	}
}
