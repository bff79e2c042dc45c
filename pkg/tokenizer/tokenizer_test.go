package tokenizer

import (
	"errors"
	"sync"
	"testing"

	"github.com/d4l3k/messagediff"
)

type pair struct {
	Text string
	Type TokenType
}

func pairs(tokens []Token) []pair {
	out := make([]pair, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, pair{tok.Text, tok.Type})
	}
	return out
}

func newTestTokenizer(t testing.TB, cfg Config) *Tokenizer {
	t.Helper()
	tok, err := NewTokenizer(cfg)
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}
	return tok
}

func TestTokenizer_Tokenize(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	tests := []struct {
		input    string
		expected []pair
	}{
		{
			input: "Hello world!",
			expected: []pair{
				{"Hello", TokenWord},
				{"world", TokenWord},
				{"!", TokenPunctuation},
			},
		},
		{
			input:    "user@example.com",
			expected: []pair{{"user@example.com", TokenEmail}},
		},
		{
			input:    "user@domain",
			expected: []pair{{"user@domain", TokenWord}},
		},
		{
			input:    "test@",
			expected: []pair{{"test@", TokenWord}},
		},
		{
			input:    "bob123@mail.co.uk",
			expected: []pair{{"bob123@mail.co.uk", TokenEmail}},
		},
		{
			input:    "3.14",
			expected: []pair{{"3.14", TokenNumber}},
		},
		{
			input:    "Python3",
			expected: []pair{{"Python3", TokenWord}},
		},
		{
			input: "The price is $49.99 today",
			expected: []pair{
				{"The", TokenWord},
				{"price", TokenWord},
				{"is", TokenWord},
				{"$", TokenPunctuation},
				{"49.99", TokenNumber},
				{"today", TokenWord},
			},
		},
		{
			input: "wow!!!",
			expected: []pair{
				{"wow", TokenWord},
				{"!", TokenPunctuation},
				{"!", TokenPunctuation},
				{"!", TokenPunctuation},
			},
		},
		{
			input: "Contact me at user@example.com for details",
			expected: []pair{
				{"Contact", TokenWord},
				{"me", TokenWord},
				{"at", TokenWord},
				{"user@example.com", TokenEmail},
				{"for", TokenWord},
				{"details", TokenWord},
			},
		},
		{
			// Digits after '@' still build a domain, which never gets a TLD.
			input: "meeting@3pm tomorrow",
			expected: []pair{
				{"meeting@3pm", TokenWord},
				{"tomorrow", TokenWord},
			},
		},
		{
			input: "user@domain, hi",
			expected: []pair{
				{"user@domain", TokenWord},
				{",", TokenPunctuation},
				{"hi", TokenWord},
			},
		},
		{
			input: "a@b.com, c",
			expected: []pair{
				{"a@b.com", TokenEmail},
				{",", TokenPunctuation},
				{"c", TokenWord},
			},
		},
		{
			input: "a@b.",
			expected: []pair{
				{"a@b.", TokenWord},
			},
		},
		{
			input: "a@b..c",
			expected: []pair{
				{"a@b.", TokenWord},
				{".", TokenPunctuation},
				{"c", TokenWord},
			},
		},
		{
			input: "42abc",
			expected: []pair{
				{"42", TokenNumber},
				{"abc", TokenWord},
			},
		},
		{
			input: "1.2.3",
			expected: []pair{
				{"1.2", TokenNumber},
				{".", TokenPunctuation},
				{"3", TokenNumber},
			},
		},
		{
			// Dotted words without '@' are lenient email candidates.
			input:    "first.last",
			expected: []pair{{"first.last", TokenEmail}},
		},
		{
			input:    "first.last@example.org",
			expected: []pair{{"first.last@example.org", TokenEmail}},
		},
		{
			input:    "Größe ändern",
			expected: []pair{{"Größe", TokenWord}, {"ändern", TokenWord}},
		},
	}

	for _, tt := range tests {
		result := pairs(tok.Tokenize(tt.input))
		if diff, equal := messagediff.PrettyDiff(tt.expected, result); !equal {
			t.Errorf("Tokenize(%q) = %v, want %v\n%s", tt.input, result, tt.expected, diff)
		}
	}
}

func TestTokenizer_LeadingAt(t *testing.T) {
	tok := Default()

	result := tok.Tokenize("@domain.com")
	if len(result) < 2 {
		t.Fatalf("Tokenize(%q) = %v, want at least two tokens", "@domain.com", result)
	}
	if result[0].Text != "@" || result[0].Type != TokenPunctuation {
		t.Errorf("first token = %+v, want '@' punctuation", result[0])
	}
	for _, tok := range result {
		if tok.Text == "@domain.com" {
			t.Errorf("whole input emitted as a single token: %+v", tok)
		}
	}
}

func TestTokenizer_EmptyAndWhitespace(t *testing.T) {
	tok := Default()

	for _, input := range []string{"", " ", "   ", "\t\n", " \r\n\t "} {
		result := tok.Tokenize(input)
		if result == nil || len(result) != 0 {
			t.Errorf("Tokenize(%q) = %#v, want empty non-nil slice", input, result)
		}
	}
}

func TestTokenizer_Offsets(t *testing.T) {
	tok := Default()

	input := "Grüße an user@example.com, Preis 3.50€"
	runes := []rune(input)
	for _, token := range tok.Tokenize(input) {
		if token.Start < 0 || token.End > len(runes) || token.Start >= token.End {
			t.Fatalf("token %+v has invalid offsets", token)
		}
		if got := string(runes[token.Start:token.End]); got != token.Text {
			t.Errorf("input[%d:%d] = %q, want %q", token.Start, token.End, got, token.Text)
		}
	}
}

func TestTokenizer_Idempotent(t *testing.T) {
	tok := Default()

	inputs := []string{
		"Hello world!",
		"test@",
		"I scored 95.5 on the test, wow!!!",
	}
	for _, input := range inputs {
		first := tok.Tokenize(input)
		second := tok.Tokenize(input)
		if diff, equal := messagediff.PrettyDiff(first, second); !equal {
			t.Errorf("Tokenize(%q) differs between calls:\n%s", input, diff)
		}
	}
}

func TestTokenizer_StrictEmail(t *testing.T) {
	tok := newTestTokenizer(t, Config{StrictEmail: true})

	tests := []struct {
		input    string
		expected []pair
	}{
		{"first.last", []pair{{"first.last", TokenWord}}},
		{"today.", []pair{{"today.", TokenWord}}},
		{"user@example.com", []pair{{"user@example.com", TokenEmail}}},
		{"first.last@example.org", []pair{{"first.last@example.org", TokenEmail}}},
	}

	for _, tt := range tests {
		result := pairs(tok.Tokenize(tt.input))
		if diff, equal := messagediff.PrettyDiff(tt.expected, result); !equal {
			t.Errorf("Tokenize(%q) = %v, want %v\n%s", tt.input, result, tt.expected, diff)
		}
	}
}

func TestTokenizer_RecoversFromUndefinedTransition(t *testing.T) {
	// Words only take letters; everything else is undefined out of IN_WORD.
	table, err := NewTableBuilder().
		On(StateStart, ClassLetter, StateInWord, ActionAppend).
		On(StateStart, ClassDigit, StateInNumber, ActionAppend).
		On(StateStart, ClassSpace, StateStart, ActionIgnore).
		On(StateStart, ClassAt, StateInPunctuation, ActionAppend).
		On(StateStart, ClassDot, StateInPunctuation, ActionAppend).
		On(StateStart, ClassPunct, StateInPunctuation, ActionAppend).
		On(StateInWord, ClassLetter, StateInWord, ActionAppend).
		On(StateInNumber, ClassDigit, StateInNumber, ActionAppend).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tok := newTestTokenizer(t, Config{Table: table})

	result := pairs(tok.Tokenize("ab12!c"))
	expected := []pair{
		{"ab", TokenWord},
		{"12", TokenNumber},
		{"!", TokenPunctuation},
		{"c", TokenWord},
	}
	if diff, equal := messagediff.PrettyDiff(expected, result); !equal {
		t.Errorf("Tokenize(%q) = %v, want %v\n%s", "ab12!c", result, expected, diff)
	}
}

func TestNewTokenizer_RejectsIncompleteTable(t *testing.T) {
	_, err := NewTokenizer(Config{Table: &Table{}})
	if !errors.Is(err, ErrIncompleteStart) {
		t.Errorf("NewTokenizer with empty table error = %v, want ErrIncompleteStart", err)
	}
}

func TestNewTokenizer_BadCacheSize(t *testing.T) {
	_, err := NewTokenizer(Config{Cache: true, CacheSize: -1})
	if err == nil {
		t.Error("Expected error for negative cache size")
	}
}

func TestTokenizer_Concurrent(t *testing.T) {
	tok := newTestTokenizer(t, Config{Cache: true, CacheSize: 8})

	inputs := []string{
		"Hello world!",
		"user@example.com",
		"bob123@mail.co.uk and 3.14",
		"Python3 is great! Version 3.11 rocks.",
	}
	want := make([][]Token, len(inputs))
	for i, input := range inputs {
		want[i] = Default().Tokenize(input)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				for i, input := range inputs {
					got := tok.Tokenize(input)
					if _, equal := messagediff.PrettyDiff(want[i], got); !equal {
						select {
						case errs <- input:
						default:
						}
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for input := range errs {
		t.Errorf("concurrent Tokenize(%q) returned a different result", input)
	}
}

func TestTokenizer_Cache(t *testing.T) {
	tok := newTestTokenizer(t, Config{Cache: true, CacheSize: 16})

	if !tok.CacheEnabled() {
		t.Fatal("Expected cache to be enabled")
	}

	tok.Tokenize("Hello world!")
	if tok.CacheSize() != 1 {
		t.Errorf("Expected cache size 1 after first call, got %d", tok.CacheSize())
	}

	tok.Tokenize("Hello world!")
	if tok.CacheSize() != 1 {
		t.Errorf("Expected cache size 1 after cache hit, got %d", tok.CacheSize())
	}

	// Callers must not be able to corrupt cached results.
	result := tok.Tokenize("Hello world!")
	result[0].Text = "mutated"
	again := tok.Tokenize("Hello world!")
	if again[0].Text != "Hello" {
		t.Errorf("cached result was mutated: %v", again)
	}

	tok.Tokenize("user@example.com")
	if tok.CacheSize() != 2 {
		t.Errorf("Expected cache size 2 after different input, got %d", tok.CacheSize())
	}

	tok.ClearCache()
	if tok.CacheSize() != 0 {
		t.Errorf("Expected cache size 0 after clear, got %d", tok.CacheSize())
	}
}

func TestTokenizer_WithoutCache(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	if tok.CacheEnabled() {
		t.Error("Expected cache to be disabled")
	}
	tok.Tokenize("Hello")
	if tok.CacheSize() != 0 {
		t.Errorf("Expected cache size 0, got %d", tok.CacheSize())
	}
}

func TestTokenizer_Terms(t *testing.T) {
	tok := newTestTokenizer(t, DefaultConfig())

	tests := []struct {
		input    string
		contains []string
		excludes []string
	}{
		{
			input:    "Running cats",
			contains: []string{"running", "run", "cats", "cat"},
		},
		{
			input:    "Mail User@Example.com now!",
			contains: []string{"user@example.com", "mail"},
			excludes: []string{"!"},
		},
		{
			input:    "Version 3.11",
			contains: []string{"version", "3.11"},
		},
	}

	for _, tt := range tests {
		result := tok.Terms(tt.input)
		resultSet := make(map[string]bool)
		for _, term := range result {
			resultSet[term] = true
		}

		for _, expected := range tt.contains {
			if !resultSet[expected] {
				t.Errorf("Terms(%q) missing expected term %q, got %v", tt.input, expected, result)
			}
		}
		for _, unexpected := range tt.excludes {
			if resultSet[unexpected] {
				t.Errorf("Terms(%q) contains unexpected term %q", tt.input, unexpected)
			}
		}
	}
}

func TestTokenizer_TermsFoldsAccents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizers.Stem = false
	tok := newTestTokenizer(t, cfg)

	result := tok.Terms("Café")
	expected := []string{"café", "cafe"}
	if diff, equal := messagediff.PrettyDiff(expected, result); !equal {
		t.Errorf("Terms(%q) = %v, want %v\n%s", "Café", result, expected, diff)
	}
}

func TestTokenizer_TermsDeduplication(t *testing.T) {
	tok := newTestTokenizer(t, DefaultConfig())

	result := tok.Terms("house house House")

	count := 0
	for _, term := range result {
		if term == "house" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected 'house' to appear exactly once, got %d times in %v", count, result)
	}
}

func TestTokenizer_TermsWithoutLowercaseOriginal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LowercaseOriginal = false
	tok := newTestTokenizer(t, cfg)

	result := tok.Terms("Running")
	if diff, equal := messagediff.PrettyDiff([]string{"run"}, result); !equal {
		t.Errorf("Terms(%q) = %v, want [run]\n%s", "Running", result, diff)
	}
}
