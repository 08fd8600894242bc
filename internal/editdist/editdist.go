// Package editdist implements Levenshtein distance primitives and the
// similarity ratios derived from them.
//
// Distance uses two rolling rows, never the full grid, so memory stays
// proportional to the shorter input. BoundedDistance additionally restricts
// work to a diagonal band of width 2·maxDistance+1 and aborts as soon as no
// cell can finish within budget, which makes it the right primitive for bulk
// matching over large inputs.
package editdist

import (
	"errors"
	"unicode/utf8"

	"github.com/ragaeeb/baburchi-sub001/internal/arabic"
)

// ErrInvalidCutoff reports a negative cutoff passed to BoundedDistance.
var ErrInvalidCutoff = errors.New("editdist: cutoff must be non-negative")

// Distance returns the Levenshtein edit distance between a and b, counting
// runes. Insertion, deletion, and substitution each cost one edit.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := prev[j-1]
			if ra[i-1] != rb[j-1] {
				cost++
			}
			curr[j] = min(cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// BoundedDistance returns the edit distance between a and b when it does not
// exceed maxDistance, and maxDistance+1 as a sentinel otherwise. It never
// returns a true distance above the cutoff. A negative cutoff is caller
// misuse and yields ErrInvalidCutoff.
func BoundedDistance(a, b string, maxDistance int) (int, error) {
	if maxDistance < 0 {
		return 0, ErrInvalidCutoff
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		// Keep the band width tied to the shorter sequence.
		ra, rb = rb, ra
	}
	sentinel := maxDistance + 1
	if len(rb)-len(ra) > maxDistance {
		return sentinel, nil
	}

	la, lb := len(ra), len(rb)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		if j <= maxDistance {
			prev[j] = j
		} else {
			prev[j] = sentinel
		}
	}
	for i := 1; i <= la; i++ {
		lo := max(i-maxDistance, 1)
		hi := min(i+maxDistance, lb)
		for j := range curr {
			curr[j] = sentinel
		}
		rowMin := sentinel
		if i <= maxDistance {
			curr[0] = i
			rowMin = i
		}
		for j := lo; j <= hi; j++ {
			cost := prev[j-1]
			if ra[i-1] != rb[j-1] {
				cost++
			}
			cost = min(cost, prev[j]+1, curr[j-1]+1)
			// Capping at the sentinel preserves every value within
			// budget: a path through a capped cell already costs more
			// than maxDistance.
			if cost > sentinel {
				cost = sentinel
			}
			curr[j] = cost
			if cost < rowMin {
				rowMin = cost
			}
		}
		if rowMin > maxDistance {
			return sentinel, nil
		}
		prev, curr = curr, prev
	}
	if prev[lb] > maxDistance {
		return sentinel, nil
	}
	return prev[lb], nil
}

// SimilarityRatio maps edit distance onto [0,1]: identical strings score 1,
// and the score decays as the distance grows relative to the longer input.
// Two empty strings score 1.
func SimilarityRatio(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}

// NormalizedSimilar reports whether a and b reach the similarity threshold
// after search-preset normalization of both sides.
func NormalizedSimilar(a, b string, threshold float64) bool {
	na := arabic.Normalize(a, arabic.Search)
	nb := arabic.Normalize(b, arabic.Search)
	return SimilarityRatio(na, nb) >= threshold
}
