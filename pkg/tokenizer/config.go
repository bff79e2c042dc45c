package tokenizer

import (
	"github.com/rs/zerolog"
)

// DefaultCacheSize is the number of inputs whose tokens are memoized when
// caching is enabled without an explicit size.
const DefaultCacheSize = 10_000

// NormalizerConfig selects the steps of the term normalization pipeline.
type NormalizerConfig struct {
	NFKDDecompose        bool
	RemoveControlChars   bool
	Lowercase            bool
	NormalizeQuotes      bool
	ExpandLigatures      bool
	RemoveCombiningMarks bool
	Stem                 bool
}

// DefaultNormalizerConfig enables every normalization step.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		NFKDDecompose:        true,
		RemoveControlChars:   true,
		Lowercase:            true,
		NormalizeQuotes:      true,
		ExpandLigatures:      true,
		RemoveCombiningMarks: true,
		Stem:                 true,
	}
}

// Config controls how a Tokenizer is built. The zero value is usable: it
// selects the default table, no cache and an empty normalizer pipeline.
type Config struct {
	// Table overrides the transition table. Nil selects DefaultTable().
	Table *Table

	// StrictEmail labels dotted tokens that never saw an '@' ("e.g",
	// "file.txt") as words instead of emails.
	StrictEmail bool

	// Cache memoizes Tokenize results per input string.
	Cache     bool
	CacheSize int

	// LowercaseOriginal adds the lowercased token text to Terms output
	// ahead of its normalized form.
	LowercaseOriginal bool
	Normalizers       NormalizerConfig

	// Logger receives debug output. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns the configuration used by the command line tools.
func DefaultConfig() Config {
	return Config{
		Cache:             true,
		CacheSize:         DefaultCacheSize,
		LowercaseOriginal: true,
		Normalizers:       DefaultNormalizerConfig(),
	}
}
