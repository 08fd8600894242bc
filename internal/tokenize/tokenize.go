// Package tokenize splits text into word tokens while keeping a
// configurable set of symbols atomic even when OCR fused them onto
// neighboring characters.
package tokenize

import "strings"

// Tokens splits text on runs of whitespace. Every occurrence of a preserved
// symbol becomes its own token; characters fused around it become separate
// tokens with nothing dropped or duplicated. Empty or whitespace-only input
// yields nil.
func Tokens(text string, preserved []string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if len(preserved) == 0 {
		return fields
	}
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = appendCarved(out, field, preserved)
	}
	return out
}

// appendCarved splits field around the earliest preserved-symbol occurrence
// and continues on the remainder, so repeated symbols each land in their own
// token.
func appendCarved(out []string, field string, preserved []string) []string {
	for field != "" {
		at, symbol := -1, ""
		for _, s := range preserved {
			if s == "" {
				continue
			}
			if i := strings.Index(field, s); i >= 0 && (at < 0 || i < at) {
				at, symbol = i, s
			}
		}
		if at < 0 {
			return append(out, field)
		}
		if at > 0 {
			out = append(out, field[:at])
		}
		out = append(out, symbol)
		field = field[at+len(symbol):]
	}
	return out
}
