// Package lexicon loads newline-delimited word lists and hands out
// fixed-length dictionaries to the ladder engine.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pfrederiksen/wordladder/internal/awsx"
	"github.com/pfrederiksen/wordladder/internal/ladder"
)

// Errors returned by Load
var (
	ErrEmptySource  = errors.New("lexicon: empty source")
	ErrInvalidS3URI = errors.New("lexicon: invalid s3 uri")
)

// Stdin is the source name that reads the word list from standard input
const Stdin = "-"

// Lexicon is the set of all words of a word list, of any length
type Lexicon struct {
	words map[string]struct{}
}

// Option configures Load
type Option func(*loadOptions)

type loadOptions struct {
	s3      awsx.ObjectGetter
	profile string
	region  string
	stdin   io.Reader
}

// WithS3Client sets the client used for s3:// sources
func WithS3Client(client awsx.ObjectGetter) Option {
	return func(o *loadOptions) { o.s3 = client }
}

// WithAWS sets the profile and region used to build an S3 client when none
// was given with WithS3Client
func WithAWS(profile, region string) Option {
	return func(o *loadOptions) {
		o.profile = profile
		o.region = region
	}
}

// WithStdin replaces os.Stdin for the "-" source
func WithStdin(r io.Reader) Option {
	return func(o *loadOptions) { o.stdin = r }
}

// Load reads a word list from a file path, "-" for stdin, or an
// s3://bucket/key object.
func Load(ctx context.Context, source string, opts ...Option) (*Lexicon, error) {
	o := loadOptions{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case source == "":
		return nil, ErrEmptySource
	case source == Stdin:
		slog.Debug("Reading word list", "source", "stdin")
		return Read(o.stdin)
	case strings.HasPrefix(source, "s3://"):
		return loadS3(ctx, source, &o)
	}

	slog.Debug("Reading word list", "source", source)
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", source, err)
	}
	defer f.Close()

	lex, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", source, err)
	}
	return lex, nil
}

func loadS3(ctx context.Context, source string, o *loadOptions) (*Lexicon, error) {
	bucket, key, err := ParseS3URI(source)
	if err != nil {
		return nil, err
	}

	client := o.s3
	if client == nil {
		cfg, err := awsx.LoadConfig(ctx, o.profile, o.region)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		client = awsx.NewClients(cfg).S3
	}

	slog.Debug("Fetching word list", "bucket", bucket, "key", key)
	body, err := awsx.OpenObject(ctx, client, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer body.Close()

	lex, err := Read(body)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", source, err)
	}
	return lex, nil
}

// ParseS3URI splits s3://bucket/key into its parts
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidS3URI, uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s (want s3://bucket/key)", ErrInvalidS3URI, uri)
	}
	return bucket, key, nil
}

// Read parses one word per line. Lines are trimmed and lowercased; blank
// lines and lines starting with '#' are skipped.
func Read(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lex.words[Normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Normalize lowercases word the way Read does
func Normalize(word string) string {
	return cases.Lower(language.Und).String(word)
}

// Contains reports whether word is in the lexicon
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of distinct words
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Lengths returns the distinct word lengths, ascending
func (l *Lexicon) Lengths() []int {
	seen := make(map[int]bool)
	var lengths []int
	for w := range l.words {
		if !seen[len(w)] {
			seen[len(w)] = true
			lengths = append(lengths, len(w))
		}
	}
	sort.Ints(lengths)
	return lengths
}

// OfLength returns the sorted words of length n
func (l *Lexicon) OfLength(n int) []string {
	var words []string
	for w := range l.words {
		if len(w) == n {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return words
}

// Dictionary returns the words of length n as a ladder dictionary
func (l *Lexicon) Dictionary(n int) (*ladder.Dictionary, error) {
	return ladder.NewDictionary(l.OfLength(n))
}
