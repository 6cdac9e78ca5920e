package spell

// IChecker defines the interface for spell checking engines
type IChecker interface {
	// IsCorrect reports whether the word exactly matches a dictionary entry
	IsCorrect(word string) bool

	// Suggest returns ranked correction candidates for a query
	Suggest(query string, tolerance, queryLen, lengthTolerance int) []Suggestion
}
