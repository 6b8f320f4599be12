package domain

import "strings"

// Category is a catalog entry: a research-topic label papers are filed
// under. IDs are opaque backend identifiers (UUID strings in practice).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryNames extracts the display names from a catalog snapshot,
// preserving catalog order.
func CategoryNames(cats []Category) []string {
	if len(cats) == 0 {
		return nil
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

// ResolveCategoryIDs maps matched category display names back to catalog
// IDs using the same snapshot the names came from. Matching is
// case-insensitive on the name; names with no catalog entry are skipped.
func ResolveCategoryIDs(names []string, catalog []Category) []string {
	if len(names) == 0 || len(catalog) == 0 {
		return nil
	}
	var ids []string
	for _, c := range catalog {
		for _, n := range names {
			if strings.EqualFold(c.Name, n) {
				ids = append(ids, c.ID)
				break
			}
		}
	}
	return ids
}
