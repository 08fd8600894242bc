package correct

import (
	"slices"
	"strings"

	"github.com/ragaeeb/baburchi-sub001/internal/align"
	"github.com/ragaeeb/baburchi-sub001/internal/arabic"
	"github.com/ragaeeb/baburchi-sub001/internal/editdist"
	"github.com/ragaeeb/baburchi-sub001/internal/footnote"
	"github.com/ragaeeb/baburchi-sub001/internal/noise"
	"github.com/ragaeeb/baburchi-sub001/internal/tokenize"
)

// Default thresholds, overridable per call through Options.
const (
	DefaultSimilarityThreshold     = 0.6
	DefaultHighSimilarityThreshold = 0.8
	DefaultMinMatchScore           = 0.55
)

// Options tunes the correction pipeline.
type Options struct {
	// TypoSymbols are preserved during tokenization and treated as exact
	// matches by the aligner, e.g. ﷺ.
	TypoSymbols []string
	// SimilarityThreshold gates positive alignment scores.
	SimilarityThreshold float64
	// HighSimilarityThreshold marks a reference token as a confirmed
	// correction of the original.
	HighSimilarityThreshold float64
}

func (o Options) withDefaults() Options {
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if o.HighSimilarityThreshold <= 0 {
		o.HighSimilarityThreshold = DefaultHighSimilarityThreshold
	}
	return o
}

// FootnoteLine pairs a line's footnote flag with its trimmed content. The
// flag follows caller convention: a line prefixed with a marker is a
// footnote line.
type FootnoteLine struct {
	IsFootnote bool
	Text       string
}

// Correct merges an OCR line with its reference transcript. Aligned token
// pairs pass through footnote reconciliation first; pairs no rule claims
// keep the reference token when similarity confirms it as a correction and
// the original token otherwise.
func Correct(original, reference string, opts Options) string {
	opts = opts.withDefaults()
	if slices.Contains(opts.TypoSymbols, arabic.HonorificSymbol) {
		original = arabic.CondenseHonorifics(original)
		reference = arabic.CondenseHonorifics(reference)
	}
	a := tokenize.Tokens(original, opts.TypoSymbols)
	b := tokenize.Tokens(reference, opts.TypoSymbols)
	if len(a) == 0 {
		return strings.Join(b, " ")
	}
	if len(b) == 0 {
		return strings.Join(a, " ")
	}

	pairs := align.Align(a, b, opts.TypoSymbols, opts.SimilarityThreshold)
	out := make([]string, 0, len(pairs))
	emit := func(token string) {
		if n := len(out); n > 0 && footnote.Fuse(&out, out[n-1], token) {
			return
		}
		out = append(out, token)
	}
	for _, p := range pairs {
		switch {
		case p.RightGap:
			emit(p.Left)
		case p.LeftGap:
			emit(p.Right)
		default:
			if chosen, ok := footnote.SelectEmbedded(p.Left, p.Right); ok {
				for _, token := range chosen {
					emit(token)
				}
				continue
			}
			if paired, ok := footnote.PairStandalone(p.Left, p.Right); ok {
				for _, token := range paired {
					emit(token)
				}
				continue
			}
			if editdist.SimilarityRatio(p.Left, p.Right) >= opts.HighSimilarityThreshold {
				emit(p.Right)
			} else {
				emit(p.Left)
			}
		}
	}
	return strings.Join(out, " ")
}

// CorrectReferences corrects each original footnote line against the
// reference footnote line carrying the same leading marker digits. Lines
// without a digit-matched counterpart, and non-footnote lines, pass through
// unchanged.
func CorrectReferences(original, reference []FootnoteLine, opts Options) []string {
	out := make([]string, len(original))
	for i, line := range original {
		out[i] = line.Text
		if !line.IsFootnote {
			continue
		}
		digits := leadingMarkerDigits(line.Text)
		if digits == "" {
			continue
		}
		for _, ref := range reference {
			if !ref.IsFootnote {
				continue
			}
			if leadingMarkerDigits(ref.Text) == digits {
				out[i] = Correct(line.Text, ref.Text, opts)
				break
			}
		}
	}
	return out
}

// leadingMarkerDigits returns the digit-folded marker digits of a line's
// first token, or "" when the line does not start with a marker. Folding
// lets (٥) and (5) refer to the same footnote.
func leadingMarkerDigits(text string) string {
	tokens := tokenize.Tokens(text, nil)
	if len(tokens) == 0 {
		return ""
	}
	m := footnote.Parse(tokens[0])
	if m.Kind == footnote.None {
		return ""
	}
	return arabic.FoldDigits(m.Digits)
}

// IsNoiseFragment reports whether an aligned fragment should be discarded
// as scanner noise given its character composition. The stats come from the
// noise collaborator; this only reads them.
func IsNoiseFragment(fragment string, stats noise.Stats) bool {
	if strings.TrimSpace(fragment) == "" {
		return true
	}
	return noise.LikelyNoise(stats)
}
