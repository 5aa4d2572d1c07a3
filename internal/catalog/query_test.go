package catalog

import (
	"strings"
	"testing"
)

func TestQuery(t *testing.T) {
	t.Run("BrowseQuery", func(t *testing.T) {
		got := BrowseQuery(200, 40).String()
		want := "fields id,name,cover.image_id,total_rating,total_rating_count; " +
			"where cover != null & version_parent = null; " +
			"sort total_rating_count desc; limit 200; offset 40;"

		if got != want {
			t.Errorf("BrowseQuery rendered\n  %q\nwant\n  %q", got, want)
		}
	})

	t.Run("LeanBrowseQuery Omits Rating", func(t *testing.T) {
		got := LeanBrowseQuery(60, 0).String()

		if strings.Contains(got, "total_rating,") {
			t.Errorf("lean query should not request total_rating: %q", got)
		}
		if !strings.Contains(got, "total_rating_count") {
			t.Errorf("lean query should request total_rating_count: %q", got)
		}
		if !strings.Contains(got, "limit 60; offset 0;") {
			t.Errorf("lean query missing pagination: %q", got)
		}
	})

	t.Run("PoolQuery", func(t *testing.T) {
		got := PoolQuery(200).String()

		if !strings.Contains(got, "sort total_rating_count desc") {
			t.Errorf("pool query should sort by popularity: %q", got)
		}
		if !strings.Contains(got, "version_parent = null") {
			t.Errorf("pool query should exclude version variants: %q", got)
		}
	})

	t.Run("DetailQuery", func(t *testing.T) {
		got := DetailQuery(42).String()
		want := "fields name,summary,screenshots.image_id,videos.video_id; where id = 42;"

		if got != want {
			t.Errorf("DetailQuery rendered %q, want %q", got, want)
		}
	})

	t.Run("Fallback Drops Variant Predicate Only", func(t *testing.T) {
		primary := BrowseQuery(200, 0)
		fallback := primary.Fallback()

		if strings.Contains(fallback.String(), "version_parent") {
			t.Errorf("fallback should drop the variant predicate: %q", fallback.String())
		}
		if !strings.Contains(fallback.String(), "cover != null") {
			t.Errorf("fallback should keep the cover predicate: %q", fallback.String())
		}
		if !strings.Contains(primary.String(), "version_parent = null") {
			t.Error("Fallback should return a copy, not mutate the receiver")
		}
	})
}
