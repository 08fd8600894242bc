// Package footnote classifies footnote markers and reconciles the ways OCR
// fragments them.
//
// A marker is a parenthesized digit run such as (٥) or (5). OCR output
// produces two broken shapes: a standalone marker duplicated next to its
// word, and an embedded marker with the referenced word fused straight onto
// it, e.g. (٥)أخرجه. The three reconciliation rules here — Fuse,
// SelectEmbedded, and PairStandalone — repair those shapes on top of
// alignment output. All of them consume the single Parse classifier so the
// marker grammar lives in one place.
package footnote

import (
	"regexp"
	"unicode/utf8"
)

// Kind tags the result of parsing a token as a footnote marker.
type Kind int

const (
	// None marks a token that is not a footnote marker.
	None Kind = iota
	// Standalone is a bare marker, optionally carrying a one-rune suffix.
	Standalone
	// Embedded is a marker with text fused onto it without a space.
	Embedded
)

// Marker is the parsed form of a token.
type Marker struct {
	Kind     Kind
	Digits   string // digit run between the parentheses
	Suffix   string // single trailing letter or punctuation mark on a standalone marker
	Trailing string // text fused onto an embedded marker
}

// markerPattern accepts Western, Arabic-Indic, and extended Arabic-Indic
// digit runs.
var markerPattern = regexp.MustCompile(`^\(([0-9٠-٩۰-۹]+)\)(.*)$`)

// Parse classifies token as a footnote marker. A marker followed by at most
// one rune is standalone; two or more fused runes make it embedded.
func Parse(token string) Marker {
	m := markerPattern.FindStringSubmatch(token)
	if m == nil {
		return Marker{}
	}
	digits, rest := m[1], m[2]
	if utf8.RuneCountInString(rest) <= 1 {
		return Marker{Kind: Standalone, Digits: digits, Suffix: rest}
	}
	return Marker{Kind: Embedded, Digits: digits, Trailing: rest}
}

// Fuse merges a fragmented marker pair into result, which must end with
// previous. A standalone marker followed by an embedded marker carrying the
// same digits is replaced by the embedded form; an embedded marker followed
// by its standalone duplicate swallows the duplicate. Fuse reports whether
// either rule applied; on failure result is untouched. Markers with
// different digits never fuse.
func Fuse(result *[]string, previous, current string) bool {
	prev, curr := Parse(previous), Parse(current)
	switch {
	case prev.Kind == Standalone && curr.Kind == Embedded && prev.Digits == curr.Digits:
		if n := len(*result); n > 0 {
			(*result)[n-1] = current
		}
		return true
	case prev.Kind == Embedded && curr.Kind == Standalone && prev.Digits == curr.Digits:
		return true
	}
	return false
}

// SelectEmbedded picks the embedded-marker token of a pair. When both
// tokens are embedded markers the shorter one wins (the longer carries OCR
// garbage), preferring a on ties. ok is false when neither token qualifies.
func SelectEmbedded(a, b string) ([]string, bool) {
	aEmb := Parse(a).Kind == Embedded
	bEmb := Parse(b).Kind == Embedded
	switch {
	case aEmb && bEmb:
		if utf8.RuneCountInString(b) < utf8.RuneCountInString(a) {
			return []string{b}, true
		}
		return []string{a}, true
	case aEmb:
		return []string{a}, true
	case bEmb:
		return []string{b}, true
	}
	return nil, false
}

// PairStandalone orders a standalone marker ahead of the ordinary token it
// was aligned against. Two standalone markers collapse to the shorter one,
// preferring a on ties. ok is false when neither token is a standalone
// marker, and when the non-marker side is an embedded marker rather than
// ordinary text.
func PairStandalone(a, b string) ([]string, bool) {
	am, bm := Parse(a), Parse(b)
	switch {
	case am.Kind == Standalone && bm.Kind == Standalone:
		if utf8.RuneCountInString(b) < utf8.RuneCountInString(a) {
			return []string{b}, true
		}
		return []string{a}, true
	case am.Kind == Standalone && bm.Kind == None:
		return []string{a, b}, true
	case bm.Kind == Standalone && am.Kind == None:
		return []string{b, a}, true
	}
	return nil, false
}
