// Package align implements Needleman–Wunsch global alignment over token
// sequences.
//
// The full (|A|+1)×(|B|+1) matrix is kept in memory on purpose: backtracking
// needs the per-cell direction history, so the rolling-row trick used for
// plain edit distance does not apply here. Callers aligning unbounded inputs
// should pre-filter with editdist.BoundedDistance instead of feeding the
// aligner directly.
package align

import (
	"slices"

	"github.com/ragaeeb/baburchi-sub001/internal/editdist"
)

// Direction records which DP predecessor produced a cell.
type Direction int

const (
	// None is valid only at the origin cell.
	None Direction = iota
	// Diagonal consumes a token from both sequences.
	Diagonal
	// Up consumes a token from the left sequence against a gap.
	Up
	// Left consumes a token from the right sequence against a gap.
	Left
)

// Cell is one entry of the scoring matrix.
type Cell struct {
	Dir   Direction
	Score float64
}

// Pair is one step of a reconstructed alignment. Exactly one gap flag may be
// set, never both.
type Pair struct {
	Left     string
	Right    string
	LeftGap  bool
	RightGap bool
}

const (
	matchScore      = 2.0
	mismatchPenalty = -1.0
	gapPenalty      = 1.0
)

// Score returns the signed match reward for a token pair. Equal tokens and
// two copies of the same preserved symbol earn the full match score; pairs
// at or above the similarity threshold earn a positive score scaled by their
// ratio, and anything below it earns the mismatch penalty. The function is
// symmetric in a and b and monotonic in their similarity.
func Score(a, b string, preserved []string, threshold float64) float64 {
	for _, symbol := range preserved {
		if a == symbol && b == symbol {
			return matchScore
		}
	}
	if a == b {
		return matchScore
	}
	ratio := editdist.SimilarityRatio(a, b)
	if ratio >= threshold {
		return matchScore * ratio
	}
	return mismatchPenalty
}

// NewMatrix builds the global-alignment scoring matrix for a against b.
// Row 0 and column 0 carry the pure gap costs -i and -j.
func NewMatrix(a, b []string, preserved []string, threshold float64) [][]Cell {
	m := make([][]Cell, len(a)+1)
	for i := range m {
		m[i] = make([]Cell, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		m[i][0] = Cell{Dir: Up, Score: -float64(i)}
	}
	for j := 1; j <= len(b); j++ {
		m[0][j] = Cell{Dir: Left, Score: -float64(j)}
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			diag := m[i-1][j-1].Score + Score(a[i-1], b[j-1], preserved, threshold)
			up := m[i-1][j].Score - gapPenalty
			left := m[i][j-1].Score - gapPenalty
			best := max(diag, up, left)
			// Tie-break order is load-bearing for reproducible
			// backtracking: diagonal beats up beats left.
			dir := Left
			switch best {
			case diag:
				dir = Diagonal
			case up:
				dir = Up
			}
			m[i][j] = Cell{Dir: dir, Score: best}
		}
	}
	return m
}

// Backtrack walks the matrix from the bottom-right corner to the origin and
// returns the aligned pairs in left-to-right order.
func Backtrack(m [][]Cell, a, b []string) []Pair {
	i, j := len(a), len(b)
	pairs := make([]Pair, 0, i+j)
	for i > 0 || j > 0 {
		switch m[i][j].Dir {
		case Diagonal:
			pairs = append(pairs, Pair{Left: a[i-1], Right: b[j-1]})
			i, j = i-1, j-1
		case Up:
			pairs = append(pairs, Pair{Left: a[i-1], RightGap: true})
			i--
		case Left:
			pairs = append(pairs, Pair{Right: b[j-1], LeftGap: true})
			j--
		default:
			// Direction None exists only at the origin.
			i, j = 0, 0
		}
	}
	slices.Reverse(pairs)
	return pairs
}

// Align scores and backtracks in one call.
func Align(a, b []string, preserved []string, threshold float64) []Pair {
	return Backtrack(NewMatrix(a, b, preserved, threshold), a, b)
}
