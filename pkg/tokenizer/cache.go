package tokenizer

// CacheSize returns the number of memoized inputs (0 if caching is disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// ClearCache drops all memoized results.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
