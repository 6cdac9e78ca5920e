/*
Package dictionary holds the normalized word list and its lifecycle.

A Store is built once from a plain text word list (one word per line,
arbitrary order, mixed case tolerated) and is immutable between loads.
Reloading replaces the whole content; a failed load always leaves the
store empty rather than half-populated.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// MaxWordLen bounds stored words and queries. Lines whose normalized length
// reaches the bound are excluded at load time (not truncated, to avoid false
// matches); queries are truncated before lookup. IPC clients must assume the
// same value, so it lives here as the single authoritative definition.
const MaxWordLen = 50

// initialCapacity seeds the word slice; growth past it is geometric
// (append doubling), same policy as the original fixed-capacity + realloc
// scheme but owned by the runtime.
const initialCapacity = 4096

// Store is the queryable collection of known-correct words. Words keep their
// load order for the suggestion scan; a patricia trie indexes them for exact
// membership checks. Reads take the read lock, loads take the write lock, so
// concurrent lookups are safe while no reload is in flight.
type Store struct {
	mu    sync.RWMutex
	words []string
	index *patricia.Trie
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: patricia.NewTrie()}
}

// Load replaces the store content with the words read from r.
// Each line is normalized (trailing CR/LF trimmed, ASCII lowercase fold);
// empty lines and lines whose normalized length is >= MaxWordLen are skipped.
// On read failure the store is left empty and the error is returned.
func (s *Store) Load(r io.Reader) error {
	// Old content goes away first so a failed load reports emptiness,
	// never a stale dictionary.
	s.Reset()

	words := make([]string, 0, initialCapacity)
	index := patricia.NewTrie()
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := utils.NormalizeWord(scanner.Text())
		if len(word) == 0 {
			continue
		}
		if len(word) >= MaxWordLen {
			skipped++
			continue
		}
		words = append(words, word)
		index.Insert(patricia.Prefix(word), true)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}

	s.mu.Lock()
	s.words = words
	s.index = index
	s.mu.Unlock()

	if skipped > 0 {
		log.Debugf("Skipped %d overlong lines (>= %d chars)", skipped, MaxWordLen)
	}
	log.Debugf("Dictionary loaded: %d words", len(words))
	return nil
}

// LoadFile loads the word list file at path. A missing or unreadable file is
// a load failure that leaves the store empty.
func (s *Store) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		s.Reset()
		return fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer file.Close()
	return s.Load(file)
}

// Contains reports whether the normalized query exactly matches a stored
// word. Queries longer than MaxWordLen are truncated first, mirroring the
// load-time bound. An empty store never matches.
func (s *Store) Contains(word string) bool {
	q := utils.NormalizeWord(word)
	if len(q) >= MaxWordLen {
		q = q[:MaxWordLen-1]
	}
	if len(q) == 0 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Get(patricia.Prefix(q)) != nil
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns the stored words in load order. The returned slice is the
// store's current snapshot and must not be modified; a reload swaps in a new
// slice rather than mutating this one, so holders scan a consistent view.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words
}

// Reset releases the store content, returning it to the unloaded state.
func (s *Store) Reset() {
	s.mu.Lock()
	s.words = nil
	s.index = patricia.NewTrie()
	s.mu.Unlock()
}
