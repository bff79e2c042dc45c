package tokenizer

import (
	"strings"
)

// Terms tokenizes text and returns deduplicated search terms in first-seen
// order. Words are normalized (optionally preceded by their lowercased
// form), emails are lowercased whole, numbers are kept verbatim and
// punctuation is dropped.
func (t *Tokenizer) Terms(text string) []string {
	seen := make(map[string]struct{})
	var results []string

	add := func(term string) {
		if term == "" {
			return
		}
		if _, exists := seen[term]; !exists {
			seen[term] = struct{}{}
			results = append(results, term)
		}
	}

	for _, tok := range t.Tokenize(text) {
		switch tok.Type {
		case TokenWord:
			if t.lowercaseOriginal {
				add(t.normalizer.LowercaseOnly(tok.Text))
			}
			add(t.normalizer.Normalize(tok.Text))
		case TokenEmail:
			add(strings.ToLower(tok.Text))
		case TokenNumber:
			add(tok.Text)
		}
	}

	return results
}
