package tokenizer

import (
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// Token is a typed span of the input.
// Start and End are rune offsets; End is exclusive.
type Token struct {
	Text  string    `json:"text"`
	Type  TokenType `json:"type"`
	Start int       `json:"start"`
	End   int       `json:"end"`
}

// Tokenizer runs the automaton over input strings. It is immutable after
// construction and safe for concurrent use.
type Tokenizer struct {
	table             *Table
	strictEmail       bool
	normalizer        *Normalizer
	lowercaseOriginal bool
	cache             *lru.Cache[string, []Token]
	logger            zerolog.Logger
}

// NewTokenizer creates a tokenizer from cfg.
func NewTokenizer(cfg Config) (*Tokenizer, error) {
	table := cfg.Table
	if table == nil {
		table = DefaultTable()
	}
	for c := CharClass(0); c < numClasses; c++ {
		if _, ok := table.Lookup(StateStart, c); !ok {
			return nil, fmt.Errorf("%w %v", ErrIncompleteStart, c)
		}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	t := &Tokenizer{
		table:             table,
		strictEmail:       cfg.StrictEmail,
		normalizer:        NewNormalizerFromConfig(cfg.Normalizers),
		lowercaseOriginal: cfg.LowercaseOriginal,
		logger:            logger,
	}

	if cfg.Cache {
		size := cfg.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[string, []Token](size)
		if err != nil {
			return nil, fmt.Errorf("cache size %d: %w", size, err)
		}
		t.cache = cache
	}

	return t, nil
}

// Default returns a tokenizer with the default table and no cache.
func Default() *Tokenizer {
	t, err := NewTokenizer(Config{Normalizers: DefaultNormalizerConfig(), LowercaseOriginal: true})
	if err != nil {
		panic(err)
	}
	return t
}

// Table returns the transition table in use.
func (t *Tokenizer) Table() *Table {
	return t.table
}

// Tokenize splits text into typed tokens. It never fails: empty or
// all-whitespace input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []Token {
	if t.cache == nil {
		return t.run(text)
	}

	if tokens, ok := t.cache.Get(text); ok {
		return slices.Clone(tokens)
	}

	tokens := t.run(text)
	t.cache.Add(text, slices.Clone(tokens))
	return tokens
}

// runState is the per-call state of the automaton.
type runState struct {
	state  State
	buf    strings.Builder
	start  int
	tokens []Token
}

func (rs *runState) append(r rune, pos int) {
	if rs.buf.Len() == 0 {
		rs.start = pos
	}
	rs.buf.WriteRune(r)
}

// flush emits the buffer as a token ending before pos. Empty buffers are
// never emitted.
func (rs *runState) flush(typ TokenType, pos int) {
	if rs.buf.Len() == 0 {
		return
	}
	rs.tokens = append(rs.tokens, Token{
		Text:  rs.buf.String(),
		Type:  typ,
		Start: rs.start,
		End:   pos,
	})
	rs.buf.Reset()
}

func (t *Tokenizer) run(text string) []Token {
	rs := runState{state: StateStart, tokens: make([]Token, 0)}

	pos := 0
	for _, r := range text {
		t.step(&rs, r, pos)
		pos++
	}
	rs.flush(t.label(rs.state), pos)

	return rs.tokens
}

func (t *Tokenizer) step(rs *runState, r rune, pos int) {
	class := Classify(r)

	tr, ok := t.table.Lookup(rs.state, class)
	if !ok {
		t.logger.Debug().
			Stringer("state", rs.state).
			Stringer("class", class).
			Int("pos", pos).
			Msg("undefined transition, restarting from start")

		rs.flush(t.label(rs.state), pos)
		rs.state = StateStart

		tr, ok = t.table.Lookup(StateStart, class)
		if !ok {
			t.logger.Debug().Stringer("class", class).Int("pos", pos).Msg("dropping character")
			return
		}
	}

	t.apply(rs, tr.Action, r, pos)
	rs.state = tr.Next
}

func (t *Tokenizer) apply(rs *runState, action Action, r rune, pos int) {
	switch action {
	case ActionAppend:
		rs.append(r, pos)
	case ActionSave:
		rs.flush(t.label(rs.state), pos)
	case ActionSaveAndAppend:
		rs.flush(t.label(rs.state), pos)
		rs.append(r, pos)
	case ActionSaveAsWord:
		rs.flush(TokenWord, pos)
	case ActionSaveAsWordAndAppend:
		rs.flush(TokenWord, pos)
		rs.append(r, pos)
	case ActionIgnore:
	}
}

// label is the type given to a buffer flushed from s without an override.
func (t *Tokenizer) label(s State) TokenType {
	if t.strictEmail && s == StateInEmailLocal {
		return TokenWord
	}
	return s.TokenType()
}
