package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

var demoInputs = []string{
	"Hello world!",
	"The price is $49.99 today.",
	"Contact me at user@example.com for details.",
	"Python3 is great! Version 3.11 rocks.",
	"I scored 95.5 on the test, wow!!!",
	"Don't forget: meeting@3pm tomorrow.",
	"Write to bob123@mail.co.uk or test@ or user@domain",
}

type demoCmd struct{}

func (c *demoCmd) Run(tok *tokenizer.Tokenizer) error {
	return runDemo(tok, demoInputs, os.Stdout)
}

// typeCount is one row of the type distribution.
type typeCount struct {
	Type  tokenizer.TokenType
	Count int
}

// distribution counts tokens per type, sorted by type name.
func distribution(results [][]tokenizer.Token) (int, []typeCount) {
	counts := make(map[tokenizer.TokenType]int)
	total := 0
	for _, tokens := range results {
		for _, tok := range tokens {
			counts[tok.Type]++
			total++
		}
	}

	rows := make([]typeCount, 0, len(counts))
	for typ, n := range counts {
		rows = append(rows, typeCount{Type: typ, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Type.String() < rows[j].Type.String()
	})
	return total, rows
}

func runDemo(tok *tokenizer.Tokenizer, inputs []string, w io.Writer) error {
	fmt.Fprintln(w, "=== TOKENIZATION EXAMPLES ===")
	fmt.Fprintln(w)

	results := make([][]tokenizer.Token, 0, len(inputs))
	for i, text := range inputs {
		tokens := tok.Tokenize(text)
		results = append(results, tokens)

		fmt.Fprintf(w, "Example %d: %q\n", i+1, text)
		printTokens(w, tokens)
		fmt.Fprintln(w)
	}

	total, rows := distribution(results)
	fmt.Fprintln(w, "=== STATISTICS ===")
	fmt.Fprintf(w, "Total tokens processed: %d\n", total)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Token type distribution:")
	for _, row := range rows {
		pct := 0.0
		if total > 0 {
			pct = float64(row.Count) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", row.Type, row.Count, pct)
	}
	return nil
}

func printTokens(w io.Writer, tokens []tokenizer.Token) {
	fmt.Fprintln(w, "Tokens:")
	for _, tok := range tokens {
		fmt.Fprintf(w, "  '%s' -> %s\n", tok.Text, tok.Type)
	}
}
