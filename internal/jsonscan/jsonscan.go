// Package jsonscan extracts JSON objects embedded in free-form text.
// Generative models are asked for bare JSON but routinely wrap it in
// prose or markdown fences; the scanner tolerates both.
package jsonscan

// FirstObject returns the first balanced top-level {...} object found in
// text, or "" and false when none exists. Braces inside JSON string
// literals (including escaped quotes) do not affect balancing. When the
// text contains several top-level objects, the first one wins.
func FirstObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue // stray closer before any opener
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
