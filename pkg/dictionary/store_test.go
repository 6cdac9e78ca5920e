package dictionary

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestLoadNormalization(t *testing.T) {
	input := "Hello\r\nWORLD\r\n\nmixedCase\n"
	store := NewStore()
	if err := store.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", store.Len())
	}

	testCases := []struct {
		word     string
		expected bool
	}{
		{"hello", true},
		{"HELLO", true},
		{"Hello", true},
		{"world", true},
		{"mixedcase", true},
		{"MixedCase", true},
		{"", false},
		{"missing", false},
	}
	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			if got := store.Contains(tc.word); got != tc.expected {
				t.Errorf("Contains(%q) = %v, want %v", tc.word, got, tc.expected)
			}
		})
	}
}

// lines at or past the bound are excluded, never truncated, so they can't
// produce false matches
func TestLoadSkipsOverlongLines(t *testing.T) {
	longest := strings.Repeat("a", MaxWordLen-1)
	tooLong := strings.Repeat("b", MaxWordLen)

	store := NewStore()
	if err := store.Load(strings.NewReader(longest + "\n" + tooLong + "\n")); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if store.Len() != 1 {
		t.Errorf("expected 1 word, got %d", store.Len())
	}
	if !store.Contains(longest) {
		t.Error("longest admissible word should be stored")
	}
	if store.Contains(tooLong) {
		t.Error("overlong word must not be stored")
	}
}

func TestWordsOrderAndDuplicates(t *testing.T) {
	store := NewStore()
	if err := store.Load(strings.NewReader("beta\nalpha\nbeta\n")); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := []string{"beta", "alpha", "beta"}
	got := store.Words()
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// loading dictionary B after dictionary A must leave no residual state
func TestReloadReplacesContent(t *testing.T) {
	store := NewStore()
	if err := store.Load(strings.NewReader("alpha\nbeta\n")); err != nil {
		t.Fatalf("load A failed: %v", err)
	}
	if !store.Contains("alpha") {
		t.Fatal("word from dictionary A should be correct")
	}

	if err := store.Load(strings.NewReader("gamma\n")); err != nil {
		t.Fatalf("load B failed: %v", err)
	}
	if store.Contains("alpha") {
		t.Error("word from dictionary A survived the reload")
	}
	if !store.Contains("gamma") {
		t.Error("word unique to dictionary B should be correct")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 word after reload, got %d", store.Len())
	}
}

// a failed load leaves the store empty, not with stale content
func TestFailedLoadLeavesStoreEmpty(t *testing.T) {
	store := NewStore()
	if err := store.Load(strings.NewReader("alpha\n")); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if err := store.LoadFile(missing); err == nil {
		t.Fatal("expected error loading missing file")
	}

	if store.Len() != 0 {
		t.Errorf("store should be empty after failed load, has %d words", store.Len())
	}
	if store.Contains("alpha") {
		t.Error("stale word visible after failed load")
	}
}

func TestResetReleasesContent(t *testing.T) {
	store := NewStore()
	if err := store.Load(strings.NewReader("alpha\n")); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	store.Reset()
	if store.Len() != 0 || store.Contains("alpha") {
		t.Error("reset store should report emptiness")
	}
}
