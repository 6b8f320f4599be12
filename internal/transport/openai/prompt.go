package openai

import (
	"fmt"
	"strings"
)

// buildPrompt assembles the parsing instruction: the numbered candidate
// category list, the literal user query, the output contract, and worked
// examples. The examples pin down the category-only policy (a category
// match suppresses free-text keywords) and multi-category inference from
// domain synonyms.
func buildPrompt(query string, categories []string) string {
	var b strings.Builder

	b.WriteString("You are a research paper search query parser. " +
		"Extract search filters from the user's natural language query.\n\n")

	b.WriteString("**Available Categories:**\n")
	for i, cat := range categories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, cat)
	}

	fmt.Fprintf(&b, "\n**User Query:**\n%q\n\n", query)

	b.WriteString(`**Instructions:**
1. PRIORITY: Match the query to ONE OR MORE categories from the available list above
2. Categories are matched based on topic/subject/domain (e.g., "computer vision" -> "Computer Science")
3. If categories are matched, set query to null (category-only search)
4. If NO categories match, extract search keywords as fallback
5. Extract author name if mentioned (usually after words like "by", "authored by", "written by")
6. Extract year if mentioned (4-digit number like 2023, 2024)
7. Return ONLY valid JSON format, no markdown code blocks or additional explanation

**Output Format (JSON only):**
{
  "query": null (if categories matched) or "keywords" (if no categories),
  "categories": ["Category Name 1", "Category Name 2"] or null,
  "year": 2023 or null,
  "author": "Author Name" or null
}

**Examples:**

Query: "machine learning papers from 2023"
{
  "query": null,
  "categories": ["Computer Science"],
  "year": 2023,
  "author": null
}

Query: "computer vision research"
{
  "query": null,
  "categories": ["Computer Science"],
  "year": null,
  "author": null
}

Query: "research on quantum mechanics by John Smith"
{
  "query": null,
  "categories": ["Physics"],
  "year": null,
  "author": "John Smith"
}

Query: "climate change and environmental sustainability studies"
{
  "query": null,
  "categories": ["Environmental Science"],
  "year": null,
  "author": null
}

Query: "AI and deep learning"
{
  "query": null,
  "categories": ["Computer Science", "Artificial Intelligence"],
  "year": null,
  "author": null
}

Query: "papers published in 1998"
{
  "query": null,
  "categories": null,
  "year": 1998,
  "author": null
}

Now parse the user query above and return ONLY the JSON object (no markdown, no explanation).`)

	return b.String()
}
