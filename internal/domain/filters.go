package domain

import "strings"

// ParsedFilters is the structured interpretation of a free-text search query.
// Zero values mean "not extracted": an empty Query or Author, a nil
// Categories slice, and a zero Year all denote absent filters.
type ParsedFilters struct {
	// Query holds residual free-text keywords. Always empty when at least
	// one category was matched: a category match turns the request into a
	// category-only search so leftover keyword noise does not exclude
	// valid results.
	Query string
	// Categories holds matched catalog display names (not IDs), in catalog
	// order, deduplicated. Nil when no category matched; never empty.
	Categories []string
	// Year is a 4-digit publication year (19xx/20xx), 0 when absent.
	Year int
	// Author is the extracted author name, whitespace-collapsed.
	Author string
}

// Normalize enforces the filter invariants: blank strings become unset,
// an empty category list becomes nil, and when categories are present the
// free-text query is suppressed. Year and Author are independent of the
// suppression rule.
func (f ParsedFilters) Normalize() ParsedFilters {
	f.Query = strings.TrimSpace(f.Query)
	f.Author = collapseSpaces(strings.TrimSpace(f.Author))

	cats := f.Categories[:0]
	for _, c := range f.Categories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		f.Categories = nil
	} else {
		f.Categories = cats
		f.Query = ""
	}

	// Plausible 4-digit calendar year only.
	if f.Year < 1000 || f.Year > 2999 {
		f.Year = 0
	}
	return f
}

// Empty reports whether no filter was extracted at all. An empty
// interpretation maps to an unfiltered browse, never to an error.
func (f ParsedFilters) Empty() bool {
	return f.Query == "" && len(f.Categories) == 0 && f.Year == 0 && f.Author == ""
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
