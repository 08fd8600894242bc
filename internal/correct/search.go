package correct

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ragaeeb/baburchi-sub001/internal/arabic"
	"github.com/ragaeeb/baburchi-sub001/internal/editdist"
	"github.com/ragaeeb/baburchi-sub001/internal/tokenize"
)

// Match is a scored page hit.
type Match struct {
	Index int
	Score float64
}

// FindBestMatch returns the page that best contains the excerpt, breaking
// score ties in favor of the earliest page. ok is false when pages is empty
// or the excerpt normalizes to nothing.
func FindBestMatch(pages []string, excerpt string) (Match, bool) {
	best := Match{Index: -1}
	for i, page := range pages {
		score := matchScore(page, excerpt, DefaultMinMatchScore)
		if best.Index < 0 || score > best.Score {
			best = Match{Index: i, Score: score}
		}
	}
	if best.Index < 0 || best.Score == 0 {
		return Match{}, false
	}
	return best, true
}

// FindAllMatches returns every page scoring at least minScore against the
// excerpt, sorted by descending score then ascending page index. A
// non-positive minScore falls back to DefaultMinMatchScore.
func FindAllMatches(pages []string, excerpt string, minScore float64) []Match {
	if minScore <= 0 {
		minScore = DefaultMinMatchScore
	}
	var out []Match
	for i, page := range pages {
		score := matchScore(page, excerpt, minScore)
		if score >= minScore {
			out = append(out, Match{Index: i, Score: score})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// matchScore rates how well page contains excerpt. Exact containment of the
// normalized excerpt scores 1; otherwise the best excerpt-sized token
// window wins, scored through the banded distance so hopeless windows cost
// almost nothing.
func matchScore(page, excerpt string, floor float64) float64 {
	np := arabic.Normalize(page, arabic.Search)
	ne := arabic.Normalize(excerpt, arabic.Search)
	if ne == "" || np == "" {
		return 0
	}
	if strings.Contains(np, ne) {
		return 1
	}
	return windowScore(np, ne, floor)
}

func windowScore(page, excerpt string, floor float64) float64 {
	pageTokens := tokenize.Tokens(page, nil)
	width := len(tokenize.Tokens(excerpt, nil))
	if len(pageTokens) == 0 || width == 0 {
		return 0
	}
	width = min(width, len(pageTokens))

	var best float64
	for i := 0; i+width <= len(pageTokens); i++ {
		window := strings.Join(pageTokens[i:i+width], " ")
		longest := max(utf8.RuneCountInString(window), utf8.RuneCountInString(excerpt))
		if longest == 0 {
			continue
		}
		cutoff := int(float64(longest) * (1 - floor))
		d, err := editdist.BoundedDistance(window, excerpt, cutoff)
		if err != nil || d > cutoff {
			continue
		}
		if score := 1 - float64(d)/float64(longest); score > best {
			best = score
		}
	}
	return best
}
