// Package listing applies in-memory category filtering and page slicing
// over a fetched article set, and holds the per-session list state the
// admin surface keeps between requests.
package listing

import "github.com/velikovic/inkwell/internal/domain"

// FilterByCategories returns the subset of articles whose category id is in
// selected. An empty selection means no filter: the full set comes back.
// Articles without a category never match a non-empty selection.
func FilterByCategories(articles []domain.Article, selected map[int]bool) []domain.Article {
	if len(selected) == 0 {
		return articles
	}

	filtered := []domain.Article{}
	for _, a := range articles {
		if a.Category != nil && selected[a.Category.ID] {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Paginate slices items at [(page-1)*limit, page*limit), clipped to bounds.
// An out-of-range page yields an empty slice, never an error.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
