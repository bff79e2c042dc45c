package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps to
// token text when building search terms.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with every step enabled.
func NewNormalizer() *Normalizer {
	return NewNormalizerFromConfig(DefaultNormalizerConfig())
}

// NewNormalizerFromConfig builds the pipeline selected by cfg, keeping the
// canonical step order.
func NewNormalizerFromConfig(cfg NormalizerConfig) *Normalizer {
	var steps []NormalizerFunc
	if cfg.NFKDDecompose {
		steps = append(steps, NFKDDecompose)
	}
	if cfg.RemoveControlChars {
		steps = append(steps, RemoveControlChars)
	}
	if cfg.Lowercase {
		steps = append(steps, Lowercase)
	}
	if cfg.NormalizeQuotes {
		steps = append(steps, NormalizeQuotes)
	}
	if cfg.ExpandLigatures {
		steps = append(steps, ExpandLigatures)
	}
	if cfg.RemoveCombiningMarks {
		steps = append(steps, RemoveCombiningMarks)
	}
	if cfg.Stem {
		steps = append(steps, StemEnglish)
	}
	return &Normalizer{steps: steps}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// LowercaseOnly lowercases without other transformations.
func (n *Normalizer) LowercaseOnly(s string) string {
	return strings.ToLower(s)
}

// NFKDDecompose applies Unicode NFKD normalization (é → e + U+0301, ﬁ → fi).
func NFKDDecompose(s string) string {
	return norm.NFKD.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`,
	"«", `"`, "»", `"`,
	"‘", "'", "’", "'", "‚", "'",
	"‹", "'", "›", "'",
)

// NormalizeQuotes converts typographic quotes to ASCII.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
)

// ExpandLigatures expands æ→ae, œ→oe. NFKD leaves these intact.
func ExpandLigatures(s string) string {
	return ligatureReplacer.Replace(s)
}

// RemoveCombiningMarks removes nonspacing marks (category Mn), which strips
// accents left behind by NFKD.
func RemoveCombiningMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
}

// StemEnglish applies the English Snowball stemmer.
func StemEnglish(s string) string {
	stemmed, err := snowball.Stem(s, "english", true)
	if err != nil || stemmed == "" {
		return s
	}
	return stemmed
}
