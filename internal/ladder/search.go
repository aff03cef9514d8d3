package ladder

import "fmt"

// walker holds the frontier of one search. It is never shared between calls.
type walker struct {
	dict *Dictionary
	opts Options
	dest string

	queue []Ladder
	// seen holds words committed at earlier levels; they are never reused
	seen map[string]bool
	// discovered holds words first reached while expanding the current
	// level; every branch of the level may still use them
	discovered map[string]bool
	levelLen   int

	res *Result
}

// ShortestLadders returns every shortest ladder from start to destination,
// sorted lexicographically. An unreachable destination yields an empty set
// and a nil error.
func ShortestLadders(dict *Dictionary, start, destination string, opts ...Option) ([]Ladder, error) {
	res, err := Search(dict, start, destination, opts...)
	if err != nil {
		return nil, err
	}
	return res.Ladders, nil
}

// Search runs a level-synchronised BFS from start and collects all ladders
// of minimum length that end in destination.
//
// start itself does not have to be in dict; every later word does. When
// start equals destination the single ladder [start] is returned.
//
// Returns ErrNilDictionary, ErrEmptyWord or ErrLengthMismatch for broken
// preconditions, ErrOptionViolation for bad options, or the context error
// if the context set with WithContext is done at a level boundary.
func Search(dict *Dictionary, start, destination string, opts ...Option) (*Result, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateQuery(dict, start, destination); err != nil {
		return nil, err
	}

	w := &walker{
		dict:       dict,
		opts:       o,
		dest:       destination,
		queue:      []Ladder{{start}},
		seen:       map[string]bool{start: true},
		discovered: make(map[string]bool),
		res:        &Result{},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	SortLadders(w.res.Ladders)
	return w.res, nil
}

func validateQuery(dict *Dictionary, start, destination string) error {
	if start == "" || destination == "" {
		return fmt.Errorf("%w: start %q, destination %q", ErrEmptyWord, start, destination)
	}
	if len(start) != len(destination) {
		return fmt.Errorf("%w: start %q has length %d, destination %q has length %d",
			ErrLengthMismatch, start, len(start), destination, len(destination))
	}
	if n := dict.WordLength(); n != 0 && n != len(start) {
		return fmt.Errorf("%w: query words have length %d, dictionary words have length %d",
			ErrLengthMismatch, len(start), n)
	}
	return nil
}

// loop drains the frontier level by level until the answer level is
// complete or nothing is left to expand.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if next := w.queue[0].Len(); next != w.levelLen {
			if w.res.Stats.AnswerLength > 0 {
				// the answer level has been fully drained
				return nil
			}
			if err := w.advance(next); err != nil {
				return err
			}
		}

		cur := w.dequeue()
		if cur.Last() == w.dest {
			w.record(cur)
			continue
		}
		if w.res.Stats.AnswerLength > 0 {
			// anything built from here would be longer than the answer
			continue
		}
		if w.opts.MaxLength > 0 && cur.Len() >= w.opts.MaxLength {
			continue
		}
		w.expand(cur)
	}
	return nil
}

// advance merges the words discovered during the previous level into the
// seen set and moves on to ladders of the given length.
func (w *walker) advance(length int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	for word := range w.discovered {
		w.seen[word] = true
	}
	clear(w.discovered)

	w.levelLen = length
	w.res.Stats.Levels++
	w.opts.OnLevel(length, len(w.queue))
	return nil
}

func (w *walker) dequeue() Ladder {
	cur := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return cur
}

func (w *walker) record(l Ladder) {
	if w.res.Stats.AnswerLength == 0 {
		w.res.Stats.AnswerLength = l.Len()
	}
	w.res.Ladders = append(w.res.Ladders, l)
}

// expand enqueues one new ladder per unseen neighbor of the last word
func (w *walker) expand(cur Ladder) {
	w.res.Stats.Expanded++
	for _, nbr := range neighbors(cur.Last(), w.dict, w.opts.Alphabet) {
		if w.seen[nbr] {
			continue
		}
		w.queue = append(w.queue, cur.extend(nbr))
		w.discovered[nbr] = true
		w.res.Stats.Enqueued++
	}
}
