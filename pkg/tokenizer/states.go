package tokenizer

// State is a state of the tokenizing automaton.
type State uint8

const (
	StateStart State = iota
	StateInWord
	StateInNumber
	StateInDecimal
	StateInPunctuation
	StateInWhitespace

	// Email sub-automaton. Only StateInEmailLocal and StateInEmailTld accept.
	StateInEmailLocal
	StateInEmailAt
	StateInEmailDomain
	StateInEmailDomainDot
	StateInEmailTld

	numStates
)

var stateNames = [numStates]string{
	StateStart:            "START",
	StateInWord:           "IN_WORD",
	StateInNumber:         "IN_NUMBER",
	StateInDecimal:        "IN_DECIMAL",
	StateInPunctuation:    "IN_PUNCTUATION",
	StateInWhitespace:     "IN_WHITESPACE",
	StateInEmailLocal:     "IN_EMAIL_LOCAL",
	StateInEmailAt:        "IN_EMAIL_AT",
	StateInEmailDomain:    "IN_EMAIL_DOMAIN",
	StateInEmailDomainDot: "IN_EMAIL_DOMAIN_DOT",
	StateInEmailTld:       "IN_EMAIL_TLD",
}

func (s State) String() string {
	if s >= numStates {
		return "INVALID"
	}
	return stateNames[s]
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	return s < numStates
}

// Accepting reports whether a buffer flushed from s keeps the state's own
// token type. Flushing from a non-accepting state demotes the token to a word.
func (s State) Accepting() bool {
	switch s {
	case StateInWord, StateInNumber, StateInDecimal, StateInPunctuation,
		StateInEmailLocal, StateInEmailTld:
		return true
	default:
		return false
	}
}

// TokenType returns the label given to a buffer flushed from s when no
// type is forced.
func (s State) TokenType() TokenType {
	switch s {
	case StateInWord:
		return TokenWord
	case StateInNumber, StateInDecimal:
		return TokenNumber
	case StateInPunctuation:
		return TokenPunctuation
	case StateInEmailLocal, StateInEmailTld:
		return TokenEmail
	default:
		return TokenWord
	}
}

// States returns every state in declaration order.
func States() []State {
	states := make([]State, 0, numStates)
	for s := State(0); s < numStates; s++ {
		states = append(states, s)
	}
	return states
}

// Action tells the engine what to do with the current character.
type Action uint8

const (
	// ActionAppend adds the character to the buffer.
	ActionAppend Action = iota
	// ActionSave flushes the buffer and discards the character.
	ActionSave
	// ActionSaveAndAppend flushes the buffer and starts a new one with the character.
	ActionSaveAndAppend
	// ActionSaveAsWord flushes the buffer as a word and discards the character.
	ActionSaveAsWord
	// ActionSaveAsWordAndAppend flushes the buffer as a word and starts a new one.
	ActionSaveAsWordAndAppend
	// ActionIgnore leaves the buffer untouched.
	ActionIgnore

	numActions
)

var actionNames = [numActions]string{
	ActionAppend:              "append",
	ActionSave:                "save",
	ActionSaveAndAppend:       "save_and_append",
	ActionSaveAsWord:          "save_as_word",
	ActionSaveAsWordAndAppend: "save_as_word_and_append",
	ActionIgnore:              "ignore",
}

func (a Action) String() string {
	if a >= numActions {
		return "invalid"
	}
	return actionNames[a]
}

// TokenType identifies the type of token.
type TokenType uint8

const (
	TokenWord TokenType = iota
	TokenNumber
	TokenPunctuation
	TokenEmail
	TokenOther
)

var tokenTypeNames = [...]string{
	TokenWord:        "WORD",
	TokenNumber:      "NUMBER",
	TokenPunctuation: "PUNCTUATION",
	TokenEmail:       "EMAIL",
	TokenOther:       "OTHER",
}

func (t TokenType) String() string {
	if int(t) >= len(tokenTypeNames) {
		return "OTHER"
	}
	return tokenTypeNames[t]
}

// MarshalText lets token types appear by name in JSON output.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
