package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// TrimLineEnding strips a trailing LF or CRLF from a single line.
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// FoldASCII lowercases the ASCII letters of s and leaves every other byte
// untouched. Dictionary load and query normalization must use the same fold,
// otherwise membership and suggestion results diverge.
func FoldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// NormalizeWord applies the shared word normalization: trim the line ending,
// then ASCII lowercase fold.
func NormalizeWord(s string) string {
	return FoldASCII(TrimLineEnding(s))
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsRepetitive checks if a string is a single character repeated 3+ times
// (e.g. "aaa", "zzzz"), which is never worth a dictionary scan.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed for spell checking.
// Returns false for empty strings, pure numbers and repetitive strings.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	str := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteByte(',')
		}
		result.WriteRune(char)
	}
	return result.String()
}
