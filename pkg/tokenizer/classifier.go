package tokenizer

import (
	"unicode"
)

// CharClass is the input alphabet of the automaton.
type CharClass uint8

const (
	ClassLetter CharClass = iota
	ClassDigit
	ClassSpace
	ClassAt
	ClassDot
	ClassPunct

	numClasses
)

var classNames = [numClasses]string{
	ClassLetter: "LETTER",
	ClassDigit:  "DIGIT",
	ClassSpace:  "SPACE",
	ClassAt:     "AT",
	ClassDot:    "DOT",
	ClassPunct:  "PUNCT",
}

func (c CharClass) String() string {
	if c >= numClasses {
		return "INVALID"
	}
	return classNames[c]
}

// Classes returns every character class in declaration order.
func Classes() []CharClass {
	classes := make([]CharClass, 0, numClasses)
	for c := CharClass(0); c < numClasses; c++ {
		classes = append(classes, c)
	}
	return classes
}

// Classify maps a rune to its character class.
// Checked in order: letter, digit, whitespace, '@', '.', anything else.
func Classify(r rune) CharClass {
	switch {
	case unicode.IsLetter(r):
		return ClassLetter
	case unicode.IsDigit(r):
		return ClassDigit
	case unicode.IsSpace(r):
		return ClassSpace
	case r == '@':
		return ClassAt
	case r == '.':
		return ClassDot
	default:
		return ClassPunct
	}
}
