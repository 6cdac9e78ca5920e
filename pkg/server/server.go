package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spell checking
type Server struct {
	checker spell.IChecker
	dict    *dictionary.Manager
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a new spell checking server using stdin/stdout for IPC
func NewServer(checker spell.IChecker, dict *dictionary.Manager, cfg *config.Config) *Server {
	return NewServerWithIO(checker, dict, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams, mainly for tests.
func NewServerWithIO(checker spell.IChecker, dict *dictionary.Manager, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		checker: checker,
		dict:    dict,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes the stream. No request failure terminates the loop; malformed or
// unknown requests get an error frame and processing continues.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request by op
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "suggest":
		s.handleSuggest(request)
	case "check":
		s.handleCheck(request)
	case "load":
		s.handleLoad(request)
	case "info":
		s.handleInfo(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// send marshals the given response and writes it to the client stream.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// handleSuggest processes a suggestion request. Missing tolerance, word
// length or length tolerance fields fall back to the configured defaults;
// the word length default is the normalized query's own length. The result
// list is capped by the requested limit and the configured max_results.
func (s *Server) handleSuggest(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in suggest request")
		return
	}

	tolerance := s.config.Server.DefaultTolerance
	if request.Tolerance != nil {
		tolerance = *request.Tolerance
	}
	lengthTolerance := s.config.Server.DefaultLengthTolerance
	if request.LengthTolerance != nil {
		lengthTolerance = *request.LengthTolerance
	}
	wordLen := len(utils.NormalizeWord(request.Word))
	if wordLen >= dictionary.MaxWordLen {
		wordLen = dictionary.MaxWordLen - 1
	}
	if request.WordLen != nil {
		wordLen = *request.WordLen
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxResults {
		limit = s.config.Server.MaxResults
	}

	start := time.Now()
	suggestions := s.checker.Suggest(request.Word, tolerance, wordLen, lengthTolerance)
	elapsed := time.Since(start)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	entries := make([]SuggestionEntry, len(suggestions))
	for i, sg := range suggestions {
		entries[i] = SuggestionEntry{Word: sg.Word, Distance: sg.Distance}
	}

	s.send(SuggestResponse{
		ID:          request.ID,
		Suggestions: entries,
		Count:       len(entries),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleCheck processes a membership check request
func (s *Server) handleCheck(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in check request")
		return
	}

	s.send(CheckResponse{
		ID:      request.ID,
		Word:    request.Word,
		Correct: s.checker.IsCorrect(request.Word),
	})
}

// handleLoad replaces the active dictionary with the word list at the
// requested path. On failure no dictionary stays loaded and the error is
// reported in the response, never as a process exit.
func (s *Server) handleLoad(request Request) {
	if request.Path == "" {
		s.sendError(request.ID, "Missing 'path' parameter", 400)
		return
	}

	if err := s.dict.Load(request.Path); err != nil {
		log.Errorf("Dictionary load failed: %v", err)
		s.send(DictionaryResponse{
			ID:     request.ID,
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	info := s.dict.GetInfo()
	s.send(DictionaryResponse{
		ID:     request.ID,
		Status: "ok",
		Words:  info.Words,
		Path:   info.Path,
	})
}

// handleInfo reports the current dictionary state
func (s *Server) handleInfo(request Request) {
	info := s.dict.GetInfo()
	status := "ok"
	if !info.Loaded {
		status = "empty"
	}
	s.send(DictionaryResponse{
		ID:     request.ID,
		Status: status,
		Words:  info.Words,
		Path:   info.Path,
	})
}
