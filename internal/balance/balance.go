// Package balance checks bracket and quote pairing so malformed lines can
// be rejected before alignment.
package balance

import "sort"

// Imbalance reports an unmatched delimiter and its rune position.
type Imbalance struct {
	Delimiter rune
	Position  int
}

var openers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'«': '»',
}

var closers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'»': '«',
}

// Check scans text and returns every unmatched bracket or straight double
// quote, ordered by rune position. A nil result means the line is balanced.
func Check(text string) []Imbalance {
	type opened struct {
		r   rune
		pos int
	}
	var stack []opened
	var out []Imbalance
	quoteAt := -1
	pos := 0
	for _, r := range text {
		switch {
		case openers[r] != 0:
			stack = append(stack, opened{r, pos})
		case closers[r] != 0:
			if n := len(stack); n > 0 && stack[n-1].r == closers[r] {
				stack = stack[:n-1]
			} else {
				out = append(out, Imbalance{r, pos})
			}
		case r == '"':
			if quoteAt < 0 {
				quoteAt = pos
			} else {
				quoteAt = -1
			}
		}
		pos++
	}
	for _, o := range stack {
		out = append(out, Imbalance{o.r, o.pos})
	}
	if quoteAt >= 0 {
		out = append(out, Imbalance{'"', quoteAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// Balanced reports whether text has no delimiter imbalances.
func Balanced(text string) bool {
	return len(Check(text)) == 0
}
