// Package noise reports character-composition statistics used to tell
// scanner noise apart from genuine content.
package noise

import "unicode"

// Stats breaks a fragment down by character class.
type Stats struct {
	Arabic int
	Latin  int
	Digit  int
	Punct  int
	Symbol int
	Space  int
	Other  int
}

// Analyze counts each character of text into its class. Arabic script wins
// over the symbol class, so ligatures such as ﷺ count as Arabic.
func Analyze(text string) Stats {
	var s Stats
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			s.Space++
		// Digits first: Arabic-Indic digits carry the Arabic script
		// property but should count as digits.
		case unicode.IsDigit(r):
			s.Digit++
		case unicode.Is(unicode.Arabic, r):
			s.Arabic++
		case unicode.Is(unicode.Latin, r):
			s.Latin++
		case unicode.IsPunct(r):
			s.Punct++
		case unicode.IsSymbol(r):
			s.Symbol++
		default:
			s.Other++
		}
	}
	return s
}

// Letters returns the combined Arabic and Latin counts.
func (s Stats) Letters() int { return s.Arabic + s.Latin }

// Total returns the number of characters analyzed.
func (s Stats) Total() int {
	return s.Arabic + s.Latin + s.Digit + s.Punct + s.Symbol + s.Space + s.Other
}

// LikelyNoise reports whether the analyzed fragment is probably scanner
// noise: no letters or digits at all, or more than half of its non-space
// characters are punctuation, stray symbols, or unclassifiable.
func LikelyNoise(s Stats) bool {
	visible := s.Total() - s.Space
	if visible == 0 {
		return true
	}
	if s.Letters() == 0 && s.Digit == 0 {
		return true
	}
	junk := s.Punct + s.Symbol + s.Other
	return float64(junk) > float64(visible)/2
}
