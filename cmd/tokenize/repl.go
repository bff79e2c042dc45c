package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

type replCmd struct {
	Prompt string `help:"Prompt printed before each line" default:"> "`
}

func (c *replCmd) Run(tok *tokenizer.Tokenizer) error {
	return repl(tok, os.Stdin, os.Stdout, c.Prompt)
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// repl tokenizes one line at a time until a quit word or end of input.
func repl(tok *tokenizer.Tokenizer, in io.Reader, out io.Writer, prompt string) error {
	fmt.Fprintln(out, "Enter text to tokenize (or 'quit' to exit):")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if isQuit(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprintln(out)
		printTokens(out, tok.Tokenize(line))
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

type textCmd struct {
	Terms bool     `help:"Print normalized search terms instead of tokens"`
	Words []string `arg:"" help:"Text to tokenize"`
}

func (c *textCmd) Run(tok *tokenizer.Tokenizer) error {
	text := strings.Join(c.Words, " ")

	var v any = tok.Tokenize(text)
	if c.Terms {
		v = tok.Terms(text)
	}

	output, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
