package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteStart is returned when the start state lacks a transition
	// for some character class.
	ErrIncompleteStart = errors.New("start state has no transition for class")
	// ErrInvalidState is returned for out-of-range states, classes or actions.
	ErrInvalidState = errors.New("invalid state, class or action")
)

// Transition is one edge of the automaton.
type Transition struct {
	From   State
	Class  CharClass
	Next   State
	Action Action
}

type entry struct {
	next    State
	action  Action
	defined bool
}

// Table is an immutable transition table indexed by [state][class].
// Entries may be undefined; the engine recovers from those by restarting
// at StateStart.
type Table struct {
	entries [numStates][numClasses]entry
}

// Lookup returns the transition for (s, c) and whether one is defined.
func (t *Table) Lookup(s State, c CharClass) (Transition, bool) {
	if s >= numStates || c >= numClasses {
		return Transition{}, false
	}
	e := t.entries[s][c]
	if !e.defined {
		return Transition{}, false
	}
	return Transition{From: s, Class: c, Next: e.next, Action: e.action}, true
}

// Transitions lists every defined transition, state-major then class-minor.
func (t *Table) Transitions() []Transition {
	var out []Transition
	for s := State(0); s < numStates; s++ {
		for c := CharClass(0); c < numClasses; c++ {
			if tr, ok := t.Lookup(s, c); ok {
				out = append(out, tr)
			}
		}
	}
	return out
}

// TableBuilder collects transitions before freezing them into a Table.
type TableBuilder struct {
	entries [numStates][numClasses]entry
	err     error
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// On defines the transition taken from state s on class c.
// A later call for the same pair replaces the earlier one.
func (b *TableBuilder) On(s State, c CharClass, next State, action Action) *TableBuilder {
	if b.err != nil {
		return b
	}
	if s >= numStates || next >= numStates || c >= numClasses || action >= numActions {
		b.err = fmt.Errorf("%w: %v --%v--> %v/%v", ErrInvalidState, s, c, next, action)
		return b
	}
	b.entries[s][c] = entry{next: next, action: action, defined: true}
	return b
}

// OnAll defines the same transition from s for every class.
func (b *TableBuilder) OnAll(s State, next State, action Action) *TableBuilder {
	for c := CharClass(0); c < numClasses; c++ {
		b.On(s, c, next, action)
	}
	return b
}

// Build validates the collected transitions and returns the table.
// Every class must have a transition out of StateStart, otherwise a
// character could be dropped during error recovery.
func (b *TableBuilder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	for c := CharClass(0); c < numClasses; c++ {
		if !b.entries[StateStart][c].defined {
			return nil, fmt.Errorf("%w %v", ErrIncompleteStart, c)
		}
	}
	return &Table{entries: b.entries}, nil
}

var defaultTable = mustBuild(defaultTableBuilder())

// DefaultTable returns the canonical word/number/punctuation/email automaton.
// The returned table is shared and must be treated as read-only.
func DefaultTable() *Table {
	return defaultTable
}

func mustBuild(b *TableBuilder) *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func defaultTableBuilder() *TableBuilder {
	b := NewTableBuilder()

	// START and IN_WHITESPACE behave alike: nothing is buffered yet.
	for _, s := range []State{StateStart, StateInWhitespace} {
		b.On(s, ClassLetter, StateInWord, ActionAppend)
		b.On(s, ClassDigit, StateInNumber, ActionAppend)
		b.On(s, ClassSpace, StateInWhitespace, ActionIgnore)
		b.On(s, ClassAt, StateInPunctuation, ActionAppend)
		b.On(s, ClassDot, StateInPunctuation, ActionAppend)
		b.On(s, ClassPunct, StateInPunctuation, ActionAppend)
	}

	// Digits inside a word do not split it ("Python3").
	b.On(StateInWord, ClassLetter, StateInWord, ActionAppend)
	b.On(StateInWord, ClassDigit, StateInWord, ActionAppend)
	b.On(StateInWord, ClassSpace, StateInWhitespace, ActionSave)
	b.On(StateInWord, ClassAt, StateInEmailAt, ActionAppend)
	b.On(StateInWord, ClassDot, StateInEmailLocal, ActionAppend)
	b.On(StateInWord, ClassPunct, StateInPunctuation, ActionSaveAndAppend)

	b.On(StateInNumber, ClassLetter, StateInWord, ActionSaveAndAppend)
	b.On(StateInNumber, ClassDigit, StateInNumber, ActionAppend)
	b.On(StateInNumber, ClassSpace, StateInWhitespace, ActionSave)
	b.On(StateInNumber, ClassAt, StateInPunctuation, ActionSaveAndAppend)
	b.On(StateInNumber, ClassDot, StateInDecimal, ActionAppend)
	b.On(StateInNumber, ClassPunct, StateInPunctuation, ActionSaveAndAppend)

	b.On(StateInDecimal, ClassLetter, StateInWord, ActionSaveAndAppend)
	b.On(StateInDecimal, ClassDigit, StateInDecimal, ActionAppend)
	b.On(StateInDecimal, ClassSpace, StateInWhitespace, ActionSave)
	b.On(StateInDecimal, ClassAt, StateInPunctuation, ActionSaveAndAppend)
	b.On(StateInDecimal, ClassDot, StateInPunctuation, ActionSaveAndAppend)
	b.On(StateInDecimal, ClassPunct, StateInPunctuation, ActionSaveAndAppend)

	// Every punctuation character is its own token.
	b.OnAll(StateInPunctuation, StateInPunctuation, ActionSaveAndAppend)
	b.On(StateInPunctuation, ClassLetter, StateInWord, ActionSaveAndAppend)
	b.On(StateInPunctuation, ClassDigit, StateInNumber, ActionSaveAndAppend)
	b.On(StateInPunctuation, ClassSpace, StateInWhitespace, ActionSave)

	b.On(StateInEmailLocal, ClassLetter, StateInEmailLocal, ActionAppend)
	b.On(StateInEmailLocal, ClassDigit, StateInEmailLocal, ActionAppend)
	b.On(StateInEmailLocal, ClassSpace, StateInWhitespace, ActionSave)
	b.On(StateInEmailLocal, ClassAt, StateInEmailAt, ActionAppend)
	b.On(StateInEmailLocal, ClassDot, StateInEmailLocal, ActionAppend)
	b.On(StateInEmailLocal, ClassPunct, StateInPunctuation, ActionSaveAndAppend)

	// Until a TLD segment is complete, anything but a domain character
	// demotes the buffered text to a word.
	b.OnAll(StateInEmailAt, StateInPunctuation, ActionSaveAsWordAndAppend)
	b.On(StateInEmailAt, ClassLetter, StateInEmailDomain, ActionAppend)
	b.On(StateInEmailAt, ClassDigit, StateInEmailDomain, ActionAppend)
	b.On(StateInEmailAt, ClassSpace, StateInWhitespace, ActionSaveAsWord)

	b.OnAll(StateInEmailDomain, StateInPunctuation, ActionSaveAsWordAndAppend)
	b.On(StateInEmailDomain, ClassLetter, StateInEmailDomain, ActionAppend)
	b.On(StateInEmailDomain, ClassDigit, StateInEmailDomain, ActionAppend)
	b.On(StateInEmailDomain, ClassSpace, StateInWhitespace, ActionSaveAsWord)
	b.On(StateInEmailDomain, ClassDot, StateInEmailDomainDot, ActionAppend)

	b.OnAll(StateInEmailDomainDot, StateInPunctuation, ActionSaveAsWordAndAppend)
	b.On(StateInEmailDomainDot, ClassLetter, StateInEmailTld, ActionAppend)
	b.On(StateInEmailDomainDot, ClassDigit, StateInEmailTld, ActionAppend)
	b.On(StateInEmailDomainDot, ClassSpace, StateInWhitespace, ActionSaveAsWord)

	b.OnAll(StateInEmailTld, StateInPunctuation, ActionSaveAndAppend)
	b.On(StateInEmailTld, ClassLetter, StateInEmailTld, ActionAppend)
	b.On(StateInEmailTld, ClassDigit, StateInEmailTld, ActionAppend)
	b.On(StateInEmailTld, ClassSpace, StateInWhitespace, ActionSave)
	b.On(StateInEmailTld, ClassDot, StateInEmailDomainDot, ActionAppend)

	return b
}
