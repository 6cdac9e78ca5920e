//go:build test

package mem

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var testQueries = []string{
	"nayway", "recieve", "teh", "wrod", "speling",
	"definately", "occured", "seperate", "accross", "untill",
}

func buildChecker(tb testing.TB, words int) *spell.Checker {
	var sb strings.Builder
	for i := 0; i < words; i++ {
		fmt.Fprintf(&sb, "word%06d\n", i)
	}
	store := dictionary.NewStore()
	if err := store.Load(strings.NewReader(sb.String())); err != nil {
		tb.Fatalf("store load failed: %v", err)
	}
	return spell.NewChecker(store)
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{100, 500, 1000}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	checker := buildChecker(t, 20000)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, query := range testQueries {
			suggestions := checker.Suggest(query, 3, len(query), 2)
			_ = suggestions
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.Alloc - baseline.Alloc)
	goroutineDelta := finalGoroutines - baselineGoroutines
	totalOps := iterations * len(testQueries)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
	}

	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func TestMemoryStabilityReload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping reload stability test in short mode")
	}

	store := dictionary.NewStore()
	checker := spell.NewChecker(store)

	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "entry%05d\n", i)
	}
	content := sb.String()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)

	for cycle := 0; cycle < 25; cycle++ {
		if err := store.Load(strings.NewReader(content)); err != nil {
			t.Fatalf("reload %d failed: %v", cycle, err)
		}
		for _, query := range testQueries {
			_ = checker.Suggest(query, 2, len(query), 2)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc - baseline.Alloc)
	t.Logf("reload cycles=25 mem_delta=%d bytes", memDelta)

	// One store's worth of content should remain live, not 25.
	if memDelta > 10*1024*1024 {
		t.Errorf("excessive retained memory after reloads: %d bytes", memDelta)
	}
}
