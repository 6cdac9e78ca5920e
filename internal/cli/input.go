// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, reporting whether each token
// is a known word and listing ranked corrections when it is not. It accepts
// flags to control tolerance, length tolerance, result limits and filtering.
type InputHandler struct {
	checker         spell.IChecker
	tolerance       int
	lengthTolerance int
	suggestLimit    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(checker spell.IChecker, tolerance, lengthTolerance, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		checker:         checker,
		tolerance:       tolerance,
		lengthTolerance: lengthTolerance,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput checks a single token and prints ranked corrections.
// Duplicate candidate words are collapsed for display only; the engine
// itself reports every dictionary entry independently.
func (h *InputHandler) handleInput(word string) {
	if len(word) >= dictionary.MaxWordLen {
		log.Warnf("Input longer than %d chars, truncating", dictionary.MaxWordLen-1)
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(word) {
			log.Infof("Skipping input: '%s'", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	if h.checker.IsCorrect(word) {
		log.Printf("'%s' is spelled correctly", word)
		return
	}

	start := time.Now()
	queryLen := len(utils.NormalizeWord(word))
	if queryLen >= dictionary.MaxWordLen {
		queryLen = dictionary.MaxWordLen - 1
	}
	suggestions := h.checker.Suggest(word, h.tolerance, queryLen, h.lengthTolerance)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for '%s'", word)
		return
	}

	log.Printf("'%s' not found, %s candidates:", word, utils.FormatWithCommas(len(suggestions)))
	filter := utils.NewSuggestionFilter(word)
	shown := 0
	for _, s := range suggestions {
		if shown >= h.suggestLimit {
			break
		}
		if !filter.ShouldInclude(s.Word) {
			continue
		}
		shown++
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (dist: %d)", shown, clWord, s.Distance)
	}
}
