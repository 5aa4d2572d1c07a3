package catalog

import (
	"fmt"
	"strings"
)

// Query describes a provider filter query in the provider's textual syntax.
//
// The zero value renders an empty query; use the constructors for the three
// supported shapes (browse, fetch-by-id, top-pool).
type Query struct {
	Fields          []string
	ID              int64 // exact-id predicate when > 0
	RequireCover    bool
	ExcludeVariants bool
	Sort            string // raw sort clause, e.g. "total_rating_count desc"
	Limit           int
	Offset          int
}

// BrowseQuery builds the primary store-browse shape: full listing fields,
// covered non-variant titles sorted by popularity.
func BrowseQuery(limit, offset int) Query {
	return Query{
		Fields:          []string{"id", "name", "cover.image_id", "total_rating", "total_rating_count"},
		RequireCover:    true,
		ExcludeVariants: true,
		Sort:            "total_rating_count desc",
		Limit:           limit,
		Offset:          offset,
	}
}

// LeanBrowseQuery builds the lightweight listing shape used where ratings are
// not displayed.
func LeanBrowseQuery(limit, offset int) Query {
	return Query{
		Fields:          []string{"id", "name", "cover.image_id", "total_rating_count"},
		RequireCover:    true,
		ExcludeVariants: true,
		Sort:            "total_rating_count desc",
		Limit:           limit,
		Offset:          offset,
	}
}

// PoolQuery builds the seeding-pool shape: top titles by popularity.
func PoolQuery(limit int) Query {
	return Query{
		Fields:          []string{"id", "name", "cover.image_id", "total_rating_count"},
		RequireCover:    true,
		ExcludeVariants: true,
		Sort:            "total_rating_count desc",
		Limit:           limit,
	}
}

// DetailQuery builds the fetch-by-id shape.
func DetailQuery(id int64) Query {
	return Query{
		Fields: []string{"name", "summary", "screenshots.image_id", "videos.video_id"},
		ID:     id,
	}
}

// Fallback returns a relaxed copy with the version-variant predicate dropped.
//
// Used only after the provider rejects the primary shape with a client error.
func (q Query) Fallback() Query {
	q.ExcludeVariants = false
	return q
}

// String renders the query in the provider's filter syntax.
func (q Query) String() string {
	var b strings.Builder

	if len(q.Fields) > 0 {
		fmt.Fprintf(&b, "fields %s; ", strings.Join(q.Fields, ","))
	}

	var where []string
	if q.RequireCover {
		where = append(where, "cover != null")
	}
	if q.ExcludeVariants {
		where = append(where, "version_parent = null")
	}
	if q.ID > 0 {
		where = append(where, fmt.Sprintf("id = %d", q.ID))
	}
	if len(where) > 0 {
		fmt.Fprintf(&b, "where %s; ", strings.Join(where, " & "))
	}

	if q.Sort != "" {
		fmt.Fprintf(&b, "sort %s; ", q.Sort)
	}

	if q.Limit > 0 {
		fmt.Fprintf(&b, "limit %d; offset %d; ", q.Limit, q.Offset)
	}

	return strings.TrimSpace(b.String())
}
