package ladder

import (
	"context"
	"fmt"
)

// DefaultAlphabet is the substitution alphabet used when none is configured
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Option configures Neighbors and Search. An invalid Option is recorded and
// surfaced as ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds the tunables shared by Neighbors and Search
type Options struct {
	// Ctx is checked at every level boundary of a search
	Ctx context.Context

	// Alphabet lists the letters tried at each position
	Alphabet []byte

	// MaxLength, if > 0, drops partial ladders longer than this many words
	MaxLength int

	// OnLevel is called when a search enters a new level, with the ladder
	// length of that level and the number of ladders waiting in the frontier
	OnLevel func(length, frontier int)

	err error
}

// DefaultOptions returns options with a background context, the a-z
// alphabet, no length bound and a no-op level hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Alphabet: []byte(DefaultAlphabet),
		OnLevel:  func(int, int) {},
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext sets a context for cancellation between levels
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlphabet replaces the substitution alphabet. Repeated letters collapse,
// an empty alphabet is rejected.
func WithAlphabet(alphabet string) Option {
	return func(o *Options) {
		if alphabet == "" {
			o.err = fmt.Errorf("%w: alphabet cannot be empty", ErrOptionViolation)
			return
		}
		seen := make(map[byte]bool, len(alphabet))
		letters := make([]byte, 0, len(alphabet))
		for i := 0; i < len(alphabet); i++ {
			c := alphabet[i]
			if !seen[c] {
				seen[c] = true
				letters = append(letters, c)
			}
		}
		o.Alphabet = letters
	}
}

// WithMaxLength bounds ladder length in words.
//
//	n > 0: ladders longer than n are never built
//	n == 0: no bound
//	n < 0: invalid option
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithOnLevel registers a hook run at each level boundary
func WithOnLevel(fn func(length, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
