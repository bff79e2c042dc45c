package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

type diagramCmd struct{}

func (c *diagramCmd) Run(tok *tokenizer.Tokenizer) error {
	return printDiagram(tok.Table(), os.Stdout)
}

// printDiagram writes the automaton as the 5-tuple (Q, Σ, δ, q0, F).
func printDiagram(table *tokenizer.Table, w io.Writer) error {
	var states, accepting, classes []string
	for _, s := range tokenizer.States() {
		states = append(states, s.String())
		if s.Accepting() {
			accepting = append(accepting, fmt.Sprintf("%s(%s)", s, s.TokenType()))
		}
	}
	for _, c := range tokenizer.Classes() {
		classes = append(classes, c.String())
	}

	fmt.Fprintln(w, "=== FSA FORMAL DEFINITION ===")
	fmt.Fprintf(w, "Q  = {%s}\n", strings.Join(states, ", "))
	fmt.Fprintf(w, "Σ  = {%s}\n", strings.Join(classes, ", "))
	fmt.Fprintf(w, "q0 = %s\n", tokenizer.StateStart)
	fmt.Fprintf(w, "F  = {%s}\n", strings.Join(accepting, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "δ:")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tr := range table.Transitions() {
		fmt.Fprintf(tw, "  %s\t--[%s]-->\t%s\t(%s)\n", tr.From, tr.Class, tr.Next, tr.Action)
	}
	return tw.Flush()
}
