// Package spell is the core, computing edit distances and scanning the
// dictionary for ranked correction candidates.
package spell

// Distance returns the restricted Damerau-Levenshtein distance between a and
// b: the minimum number of single-character insertions, deletions,
// substitutions and adjacent transpositions needed to turn a into b. This is
// the optimal string alignment variant, so each pair of positions takes part
// in at most one transposition. The result is symmetric and never negative.
//
// Cost is O(len(a)*len(b)) time and space, scoped to the call; the caller's
// length pruning bounds total work across a dictionary scan.
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	stride := len(b) + 1
	d := make([]int, (len(a)+1)*stride)
	offset := func(i, j int) int { return i*stride + j }

	for i := 1; i <= len(a); i++ {
		d[offset(i, 0)] = i
	}
	for j := 1; j <= len(b); j++ {
		d[offset(0, j)] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			v := min(
				d[offset(i-1, j)]+1,      // deletion
				d[offset(i, j-1)]+1,      // insertion
				d[offset(i-1, j-1)]+cost, // substitution or match
			)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				v = min(v, d[offset(i-2, j-2)]+1) // adjacent transposition
			}
			d[offset(i, j)] = v
		}
	}

	return d[offset(len(a), len(b))]
}
