package interpret

// DefaultSynonyms is the built-in mapping from lower-cased category names
// to domain keywords that imply the category. Keys must match catalog
// entry names (lower-cased) exactly; a renamed catalog entry silently
// loses its synonym matches. The table is hand-curated, not derived from
// the catalog, and can be extended or overridden via configuration.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"computer science": {
			"machine learning", "ml", "deep learning", "ai", "artificial intelligence",
			"neural network", "computer vision", "nlp", "natural language", "algorithm",
			"programming", "software", "data science", "robotics", "computing",
			"quantum computing", "blockchain", "cybersecurity", "database", "web development",
		},
		"physics": {
			"quantum", "quantum mechanics", "quantum physics", "mechanics", "relativity",
			"particle", "electromagnetic", "thermodynamics", "astrophysics", "nuclear",
		},
		"biology": {
			"genetics", "dna", "rna", "cell", "molecular", "organism", "ecology",
			"evolution", "biotechnology", "microbiology",
		},
		"chemistry": {
			"molecule", "compound", "reaction", "catalyst", "organic", "inorganic",
			"biochemistry", "chemical",
		},
		"mathematics": {
			"calculus", "algebra", "geometry", "statistics", "probability", "theorem",
			"mathematical", "discrete", "topology",
		},
		"medicine": {
			"clinical", "disease", "treatment", "therapy", "diagnosis", "patient",
			"healthcare", "medical", "pharmaceutical", "surgery",
		},
		"environmental science": {
			"climate", "sustainability", "pollution", "conservation", "renewable",
			"environmental", "ecology", "green energy",
		},
		"engineering": {
			"engineering", "mechanical", "electrical", "civil", "structural", "industrial",
		},
		"economics": {
			"economics", "economic", "finance", "financial", "market", "business",
		},
		"psychology": {
			"psychology", "psychological", "cognitive", "behavioral", "mental health",
		},
	}
}

// mergeSynonyms layers overrides on top of the built-in table. A key in
// overrides replaces the built-in list for that category.
func mergeSynonyms(overrides map[string][]string) map[string][]string {
	merged := DefaultSynonyms()
	for cat, syns := range overrides {
		merged[cat] = syns
	}
	return merged
}
