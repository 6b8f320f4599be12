package interpret

import (
	"regexp"
	"strings"

	"github.com/researchhub/searchd/internal/domain"
)

var (
	yearRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	authorRe = regexp.MustCompile(`(?i)\b(?:authored by|written by|by)\s+([a-z .'-]+)(?:\s|$)`)
	// Filler vocabulary stripped from residual keywords.
	stopWordsRe  = regexp.MustCompile(`\b(?:papers?|about|from|in|on|the|a|an|research|studies?|related|show me|get me|find)\b`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// LocalParser is the deterministic rule-based fallback parser. It is a
// total function over any input string: no I/O, no failure modes.
type LocalParser struct {
	synonyms map[string][]string
}

// NewLocalParser creates a rule-based parser. Synonym overrides (keyed by
// lower-cased category name) are layered over the built-in table; nil
// keeps the built-ins.
func NewLocalParser(overrides map[string][]string) *LocalParser {
	return &LocalParser{synonyms: mergeSynonyms(overrides)}
}

// Parse extracts filters from the query against the given catalog names.
// In order: publication year (first 19xx/20xx token), author (first
// "by <name>" phrase, casing preserved), categories (catalog order,
// deduplicated, first satisfied rule wins per category), then residual
// keywords. Any category match makes the search category-only: keywords
// are dropped, year and author are kept.
func (p *LocalParser) Parse(query string, categories []string) domain.ParsedFilters {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)

	yearToken := yearRe.FindString(lower)
	year := 0
	if yearToken != "" {
		// Token is 4 digits by construction.
		for _, c := range yearToken {
			year = year*10 + int(c-'0')
		}
	}

	author := ""
	authorPhrase := ""
	if m := authorRe.FindStringSubmatch(trimmed); m != nil {
		author = collapseSpaces(strings.TrimSpace(m[1]))
		authorPhrase = strings.TrimSpace(m[0])
	}

	matched := p.matchCategories(lower, categories)

	keywords := ""
	if len(matched) == 0 {
		keywords = lower
		if yearToken != "" {
			keywords = strings.Replace(keywords, yearToken, " ", 1)
		}
		if authorPhrase != "" {
			keywords = strings.ReplaceAll(keywords, strings.ToLower(authorPhrase), " ")
		}
		keywords = stopWordsRe.ReplaceAllString(keywords, " ")
		keywords = nonAlnumRe.ReplaceAllString(keywords, " ")
		keywords = strings.TrimSpace(multiSpaceRe.ReplaceAllString(keywords, " "))
	}

	return domain.ParsedFilters{
		Query:      keywords,
		Categories: matched,
		Year:       year,
		Author:     author,
	}.Normalize()
}

// matchCategories evaluates every catalog entry against the lower-cased
// query. Rules short-circuit per category: exact substring, then all
// name words present, then synonym table, then loose word overlap.
func (p *LocalParser) matchCategories(lower string, categories []string) []string {
	queryWords := make(map[string]struct{})
	for _, w := range strings.Fields(lower) {
		queryWords[w] = struct{}{}
	}

	var matched []string
	seen := make(map[string]struct{})
	add := func(cat string) {
		if _, dup := seen[cat]; !dup {
			matched = append(matched, cat)
			seen[cat] = struct{}{}
		}
	}

	for _, cat := range categories {
		name := strings.ToLower(cat)
		if name == "" {
			continue
		}

		// 1. Full category name appears verbatim.
		if strings.Contains(lower, name) {
			add(cat)
			continue
		}

		// 2. Every word of the category name appears somewhere.
		nameWords := strings.Fields(name)
		allPresent := len(nameWords) > 0
		for _, w := range nameWords {
			if !strings.Contains(lower, w) {
				allPresent = false
				break
			}
		}
		if allPresent {
			add(cat)
			continue
		}

		// 3. Curated synonym keywords imply the category.
		if p.anySynonym(name, lower) {
			add(cat)
			continue
		}

		// 4. Loose overlap: a long-enough name word as a whole query word.
		for _, w := range nameWords {
			if len(w) > 3 {
				if _, ok := queryWords[w]; ok {
					add(cat)
					break
				}
			}
		}
	}
	return matched
}

// anySynonym reports whether any curated keyword for the category occurs
// in the query. Matches must sit on word boundaries: short synonyms like
// "ai" or "ml" would otherwise fire inside words such as "sustainability".
func (p *LocalParser) anySynonym(name, lower string) bool {
	for _, syn := range p.synonyms[name] {
		if containsPhrase(lower, strings.ToLower(syn)) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in s delimited by
// non-alphanumeric characters or string edges.
func containsPhrase(s, phrase string) bool {
	if phrase == "" {
		return false
	}
	for i := 0; i+len(phrase) <= len(s); {
		j := strings.Index(s[i:], phrase)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(phrase)
		if (start == 0 || !isAlnum(s[start-1])) && (end == len(s) || !isAlnum(s[end])) {
			return true
		}
		i = start + 1
	}
	return false
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
