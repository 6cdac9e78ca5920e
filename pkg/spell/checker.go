package spell

import (
	"context"
	"sort"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// MaxTempSuggestions caps how many candidates a single scan buffers before
// ranking. It is a hard memory/time bound shared with IPC clients: once the
// cap is hit the scan stops, so later candidates are dropped even if closer.
// A known completeness trade-off, not a bug.
const MaxTempSuggestions = 1000

// cancelCheckInterval is how many candidates are scanned between context
// checks in SuggestContext.
const cancelCheckInterval = 1024

// Suggestion is a candidate correction paired with its edit distance from
// the query.
type Suggestion struct {
	Word     string
	Distance int
}

// Options holds the scan policy knobs.
type Options struct {
	// AllowShorter admits candidates shorter than the stated query length.
	// Off by default: the reference behavior rejects shorter corrections
	// (so "wordx" never suggests "word"), which is unusual for a spell
	// checker but deliberate, hence a policy switch rather than a constant.
	AllowShorter bool
}

// Checker scans a dictionary store for correction candidates.
type Checker struct {
	store *dictionary.Store
	opts  Options
}

// NewChecker creates a checker with the default (reference) policy.
func NewChecker(store *dictionary.Store) *Checker {
	return &Checker{store: store}
}

// NewCheckerWithOptions creates a checker with an explicit scan policy.
func NewCheckerWithOptions(store *dictionary.Store, opts Options) *Checker {
	return &Checker{store: store, opts: opts}
}

// IsCorrect reports whether the normalized word exactly matches a stored word.
func (c *Checker) IsCorrect(word string) bool {
	return c.store.Contains(word)
}

// Suggest returns ranked correction candidates for query: every stored word
// within lengthTolerance of queryLen whose distance from the normalized query
// is at most tolerance, capped at MaxTempSuggestions, ordered by distance
// then lexicographically. An empty or unloaded store yields an empty result.
func (c *Checker) Suggest(query string, tolerance, queryLen, lengthTolerance int) []Suggestion {
	suggestions, _ := c.SuggestContext(context.Background(), query, tolerance, queryLen, lengthTolerance)
	return suggestions
}

// SuggestContext is Suggest with cooperative cancellation: the candidate loop
// checks ctx periodically and returns ctx.Err() when it fires. Completed
// calls return exactly what Suggest would.
func (c *Checker) SuggestContext(ctx context.Context, query string, tolerance, queryLen, lengthTolerance int) ([]Suggestion, error) {
	if tolerance < 0 || lengthTolerance < 0 {
		return nil, nil
	}

	q := utils.NormalizeWord(query)
	if len(q) >= dictionary.MaxWordLen {
		// Overlong queries are truncated, not rejected; same bound the
		// store applies to its own lines.
		log.Debugf("Query truncated to %d chars", dictionary.MaxWordLen-1)
		q = q[:dictionary.MaxWordLen-1]
	}
	if len(q) == 0 {
		return nil, nil
	}

	words := c.store.Words()
	if len(words) == 0 {
		log.Debug("Suggest on empty store")
		return nil, nil
	}

	suggestions := make([]Suggestion, 0, 32)
	for i, w := range words {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !c.opts.AllowShorter && len(w) < queryLen {
			continue
		}
		if delta := len(w) - queryLen; delta > lengthTolerance || -delta > lengthTolerance {
			continue
		}
		d := Distance(q, w)
		if d > tolerance {
			continue
		}
		suggestions = append(suggestions, Suggestion{Word: w, Distance: d})
		if len(suggestions) >= MaxTempSuggestions {
			log.Debugf("Suggestion cap (%d) reached, stopping scan early", MaxTempSuggestions)
			break
		}
	}

	Rank(suggestions)
	return suggestions, nil
}

// Rank orders suggestions by ascending distance, breaking ties by ascending
// lexicographic word order. The sort is stable, so equal entries keep their
// relative scan order.
func Rank(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Word < suggestions[j].Word
	})
}
