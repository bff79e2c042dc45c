package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/kerem-kaynak/fsa-tokenizer/pkg/tokenizer"
)

type CLI struct {
	Debug       bool `help:"Log automaton recovery steps" env:"FSATOK_DEBUG"`
	StrictEmail bool `help:"Label dotted tokens without '@' as words" env:"FSATOK_STRICT_EMAIL"`
	NoCache     bool `help:"Disable the tokenization cache" env:"FSATOK_NO_CACHE"`
	CacheSize   int  `help:"Number of inputs to memoize" default:"10000" env:"FSATOK_CACHE_SIZE"`

	Demo    demoCmd    `cmd:"" default:"1" help:"Tokenize built-in examples and print statistics"`
	Repl    replCmd    `cmd:"" help:"Tokenize lines read from stdin until quit"`
	Text    textCmd    `cmd:"" help:"Tokenize the given text and print JSON"`
	Diagram diagramCmd `cmd:"" help:"Print the formal definition of the automaton"`
}

func (c *CLI) config(logger *zerolog.Logger) tokenizer.Config {
	cfg := tokenizer.DefaultConfig()
	cfg.StrictEmail = c.StrictEmail
	cfg.Cache = !c.NoCache
	cfg.CacheSize = c.CacheSize
	cfg.Logger = logger
	return cfg
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tokenize"),
		kong.Description("Finite-state automaton tokenizer for words, numbers, punctuation and emails."),
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()

	tok, err := tokenizer.NewTokenizer(cli.config(&logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("creating tokenizer")
	}

	if err := ctx.Run(tok); err != nil {
		logger.Fatal().Err(err).Str("command", ctx.Command()).Msg("command failed")
	}
}
