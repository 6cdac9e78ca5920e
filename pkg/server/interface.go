/*
Package server implements msgpack IPC for spell checking services.

The server package provides a minimal interface for dictionary membership
checks and ranked correction suggestions using msgpack serialization over
stdin/stdout.

The protocol uses binary msgpack encoding and supports suggestion requests,
membership checks and dictionary management ops. Messages are processed
synchronously with timing info included in suggestion responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID field, an op field, and op-specific parameters.

Suggestion requests use mainly this structure:

	{"id": "req_001", "op": "suggest", "w": "nayway", "t": 3, "wl": 6, "lt": 2}

The server responds with candidates ranked by distance, ties broken
alphabetically:

	{"id": "req_001", "s": [{"w": "anyway", "d": 1}, {"w": "airway", "d": 3}], "c": 2, "t": 145}

Membership checks and dictionary management:

	{"id": "chk_001", "op": "check", "w": "anyway"}
	{"id": "dict_001", "op": "load", "path": "/usr/share/dict/words"}
	{"id": "dict_002", "op": "info"}

Response structures include status information and error details when an op
fails. A failed load leaves no dictionary active, so later checks and
suggestion requests answer from an empty store rather than erroring.

# Shared bounds

Suggestion lists are capped at spell.MaxTempSuggestions and words at
dictionary.MaxWordLen on both sides of the boundary. Clients must use the
same constants; the authoritative definitions live in those packages, never
in duplicated literals.
*/
package server

// Request is an incoming IPC request. Op selects the operation:
// "suggest", "check", "load", "info" or "health".
type Request struct {
	ID              string `msgpack:"id"`
	Op              string `msgpack:"op"`
	Word            string `msgpack:"w,omitempty"`
	Path            string `msgpack:"path,omitempty"`
	Tolerance       *int   `msgpack:"t,omitempty"`
	WordLen         *int   `msgpack:"wl,omitempty"`
	LengthTolerance *int   `msgpack:"lt,omitempty"`
	Limit           int    `msgpack:"l,omitempty"`
}

// SuggestionEntry - one ranked correction candidate
type SuggestionEntry struct {
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
}

// SuggestResponse - suggestion response with timing in microseconds
type SuggestResponse struct {
	ID          string            `msgpack:"id"`
	Suggestions []SuggestionEntry `msgpack:"s"`
	Count       int               `msgpack:"c"`
	TimeTaken   int64             `msgpack:"t"`
}

// CheckResponse - membership check response
type CheckResponse struct {
	ID      string `msgpack:"id"`
	Word    string `msgpack:"w"`
	Correct bool   `msgpack:"ok"`
}

// DictionaryResponse - dictionary operation response ("load", "info")
type DictionaryResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
	Words  int    `msgpack:"words,omitempty"`
	Path   string `msgpack:"path,omitempty"`
}

// StatusResponse - server lifecycle signal ("ready", "ok")
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for failed requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
