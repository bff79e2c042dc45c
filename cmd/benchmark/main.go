package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	tok := tokenizer.Default()
	cached, err := tokenizer.NewTokenizer(tokenizer.Config{Cache: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transitions: %d\n", len(tok.Table().Transitions()))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	word := "Tokenization"
	email := "bob123@mail.co.uk"
	sentence := "Contact me at user@example.com for details. The price is $49.99 today!"
	if len(os.Args) > 1 {
		sentence = strings.Join(os.Args[1:], " ")
	}

	printHeader("AUTOMATON THROUGHPUT")
	bench("Single word", func() { tok.Tokenize(word) })
	bench("Email (multi-segment TLD)", func() { tok.Tokenize(email) })
	bench("Sentence", func() { tok.Tokenize(sentence) })
	bench("Sentence (cache hit)", func() { cached.Tokenize(sentence) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Classify sentence", func() {
		for _, r := range sentence {
			tokenizer.Classify(r)
		}
	})
	bench("Table lookup", func() {
		tok.Table().Lookup(tokenizer.StateInEmailDomainDot, tokenizer.ClassLetter)
	})
	bench("Terms (sentence)", func() { tok.Terms(sentence) })
	printFooter()
	fmt.Println()

	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("NFKD decompose", func() {
		tokenizer.NFKDDecompose("Résumé")
	})
	bench("Remove control chars", func() {
		tokenizer.RemoveControlChars("Résumé")
	})
	bench("Lowercase", func() {
		tokenizer.Lowercase("Résumé")
	})
	bench("Normalize quotes", func() {
		tokenizer.NormalizeQuotes("\u201CRésumé\u201D")
	})
	bench("Expand ligatures", func() {
		tokenizer.ExpandLigatures("encyclopædia")
	})
	bench("Remove combining marks", func() {
		tokenizer.RemoveCombiningMarks("Re\u0301sume\u0301")
	})
	bench("Stem English", func() {
		tokenizer.StemEnglish("running")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
