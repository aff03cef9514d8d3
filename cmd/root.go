package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pfrederiksen/wordladder/internal/config"
	"github.com/pfrederiksen/wordladder/internal/lexicon"
	"github.com/pfrederiksen/wordladder/internal/metrics"
)

// ValidationError reports bad user input. Its message is printed as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Messages for rejected input
const (
	msgSameWords    = "words are the same"
	msgNotInLexicon = "words are not in lexicon"
)

// app carries flag values and per-run state for one command tree
type app struct {
	// Global flags
	configPath string
	dictionary string
	format     string
	maxLength  int
	alphabet   string
	debug      bool
	dumpStats  bool
	profile    string
	region     string

	cfg *config.Config
	reg *metrics.Registry
	lex *lexicon.Lexicon
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{reg: metrics.NewRegistry()}

	rootCmd := &cobra.Command{
		Use:   "wordladder",
		Short: "Find every shortest word ladder between two words",
		Long: `wordladder finds every shortest sequence of words that turns a start word
into a destination word one letter at a time, where every word after the
first is in the dictionary.

Run without arguments for the interactive prompt.

Examples:
  # Interactive
  wordladder --dict words.txt

  # One query
  wordladder solve cat dog --dict words.txt

  # Graphviz DOT of all shortest ladders
  wordladder solve bean make --format dot

  # Dictionary from S3
  wordladder solve con cat --dict s3://my-bucket/words.txt --region us-east-1

  # Neighbors of a word
  wordladder neighbors cat`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.dumpStats {
				return nil
			}
			return a.reg.WriteText(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: ~/.wordladder/config.toml)")
	flags.StringVar(&a.dictionary, "dict", "", "Word list: file path, - for stdin, or s3://bucket/key (default: words.txt)")
	flags.StringVar(&a.format, "format", "", "Output format: text, json, dot, tree (default: text)")
	flags.IntVar(&a.maxLength, "max-length", 0, "Maximum ladder length in words (0: no limit)")
	flags.StringVar(&a.alphabet, "alphabet", "", "Letters tried at each position (default: a-z)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&a.dumpStats, "metrics", false, "Print Prometheus metrics to stderr when done")
	flags.StringVar(&a.profile, "profile", "", "AWS profile for s3:// word lists")
	flags.StringVar(&a.region, "region", "", "AWS region for s3:// word lists")

	rootCmd.AddCommand(newSolveCmd(a), newNeighborsCmd(a))
	return rootCmd
}

// Execute runs the root command and exits 1 on any error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, verr.Msg)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and installs the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, required := a.configPath, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path, required = p, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary = a.dictionary
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("max-length") {
		cfg.MaxLength = a.maxLength
	}
	if flags.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("profile") {
		cfg.AWS.Profile = a.profile
	}
	if flags.Changed("region") {
		cfg.AWS.Region = a.region
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// Setup logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Debug("Configuration loaded",
		"config", path,
		"dictionary", cfg.Dictionary,
		"format", cfg.Format,
		"maxLength", cfg.MaxLength)
	return nil
}

// runInteractive prompts for the two words and solves once
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if a.cfg.Dictionary == lexicon.Stdin {
		return fmt.Errorf("the word list cannot be read from stdin in interactive mode")
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "Enter start word (RETURN to quit): ")
	start, err := readLine(in)
	if err != nil {
		return err
	}
	if len(start) <= 1 {
		return nil
	}

	fmt.Fprint(out, "Enter destination word: ")
	dest, err := readLine(in)
	if err != nil {
		return err
	}

	return a.solve(cmd, start, dest)
}

// readLine returns the next trimmed, normalised line; EOF reads as empty
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return lexicon.Normalize(strings.TrimSpace(line)), nil
}

// loadLexicon reads the configured word list once per run
func (a *app) loadLexicon(cmd *cobra.Command) (*lexicon.Lexicon, error) {
	if a.lex != nil {
		return a.lex, nil
	}
	lex, err := lexicon.Load(cmd.Context(), a.cfg.Dictionary,
		lexicon.WithAWS(a.cfg.AWS.Profile, a.cfg.AWS.Region),
		lexicon.WithStdin(cmd.InOrStdin()))
	if err != nil {
		return nil, err
	}
	slog.Debug("Word list loaded", "source", a.cfg.Dictionary, "words", lex.Len())
	a.lex = lex
	return lex, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
