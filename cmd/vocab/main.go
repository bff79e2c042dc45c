package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

type CLI struct {
	Vocabulary string `short:"f" help:"Vocabulary text file (term<TAB>count per line)" default:"vocabulary.txt" type:"path" env:"FSATOK_VOCABULARY"`

	Add     addCmd     `cmd:"" help:"Tokenize files (or - for stdin) and add their terms"`
	Remove  removeCmd  `cmd:"" help:"Remove terms"`
	Count   countCmd   `cmd:"" help:"Show how often a term was added"`
	Prefix  prefixCmd  `cmd:"" help:"List terms starting with a prefix"`
	Rebuild rebuildCmd `cmd:"" help:"Rebuild the FST from the text file"`
	Stats   statsCmd   `cmd:"" help:"Show vocabulary statistics"`
}

type addCmd struct {
	StrictEmail bool     `help:"Label dotted tokens without '@' as words"`
	Files       []string `arg:"" optional:"" help:"Input files" default:"-"`
}

func (c *addCmd) Run(v *tokenizer.Vocabulary, logger *zerolog.Logger) error {
	cfg := tokenizer.DefaultConfig()
	cfg.StrictEmail = c.StrictEmail
	cfg.Logger = logger
	tok, err := tokenizer.NewTokenizer(cfg)
	if err != nil {
		return err
	}

	added := 0
	for _, name := range c.Files {
		n, err := addFile(v, tok, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info().Str("file", name).Int("terms", n).Msg("added")
		added += n
	}
	fmt.Printf("Added %d terms. Total terms: %d\n", added, v.Len())
	return nil
}

func addFile(v *tokenizer.Vocabulary, tok *tokenizer.Tokenizer, name string) (int, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	var terms []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		terms = append(terms, tok.Terms(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return len(terms), v.Add(terms...)
}

type removeCmd struct {
	Terms []string `arg:"" help:"Terms to remove"`
}

func (c *removeCmd) Run(v *tokenizer.Vocabulary) error {
	for _, term := range c.Terms {
		if err := v.Remove(term); err != nil {
			return fmt.Errorf("removing %q: %w", term, err)
		}
		fmt.Printf("Removed: %s\n", term)
	}
	fmt.Printf("Total terms: %d\n", v.Len())
	return nil
}

type countCmd struct {
	Term string `arg:"" help:"Term to look up"`
}

func (c *countCmd) Run(v *tokenizer.Vocabulary) error {
	count, ok := v.Count(c.Term)
	if !ok {
		return fmt.Errorf("%q not in vocabulary", c.Term)
	}
	fmt.Printf("%s\t%d\n", c.Term, count)
	return nil
}

type prefixCmd struct {
	Prefix string `arg:"" help:"Prefix to search for"`
	Limit  int    `help:"Maximum number of results (0 for all)" default:"20"`
}

func (c *prefixCmd) Run(v *tokenizer.Vocabulary) error {
	entries, err := v.WithPrefix(c.Prefix, c.Limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s\t%d\n", e.Term, e.Count)
	}
	return nil
}

type rebuildCmd struct{}

func (c *rebuildCmd) Run(v *tokenizer.Vocabulary) error {
	if err := v.Rebuild(); err != nil {
		return err
	}
	fmt.Printf("FST rebuilt. Total terms: %d\n", v.Len())
	return nil
}

type statsCmd struct{}

func (c *statsCmd) Run(v *tokenizer.Vocabulary, cli *CLI) error {
	fmt.Printf("Vocabulary: %s\n", cli.Vocabulary)
	fmt.Printf("Term count: %d\n", v.Len())
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vocab"),
		kong.Description("Manage a term-frequency vocabulary built from tokenized text."),
	)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	v, err := tokenizer.NewVocabulary(cli.Vocabulary)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cli.Vocabulary).Msg("loading vocabulary")
	}

	err = ctx.Run(v, &logger, &cli)
	if cerr := v.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		logger.Fatal().Err(err).Str("command", ctx.Command()).Msg("command failed")
	}
}
