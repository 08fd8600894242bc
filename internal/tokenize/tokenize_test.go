package tokenize

import (
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		preserved []string
		want      []string
	}{
		{
			name:  "simple words",
			input: "قال رسول الله",
			want:  []string{"قال", "رسول", "الله"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  \t \n ",
			want:  nil,
		},
		{
			name:  "collapses runs of whitespace",
			input: "  ابو   بكر ",
			want:  []string{"ابو", "بكر"},
		},
		{
			name:      "fused symbol is carved out",
			input:     "محمدﷺرسول",
			preserved: []string{"ﷺ"},
			want:      []string{"محمد", "ﷺ", "رسول"},
		},
		{
			name:      "symbol at token start",
			input:     "ﷺقال",
			preserved: []string{"ﷺ"},
			want:      []string{"ﷺ", "قال"},
		},
		{
			name:      "symbol at token end",
			input:     "قالﷺ",
			preserved: []string{"ﷺ"},
			want:      []string{"قال", "ﷺ"},
		},
		{
			name:      "repeated symbols",
			input:     "اﷺبﷺ",
			preserved: []string{"ﷺ"},
			want:      []string{"ا", "ﷺ", "ب", "ﷺ"},
		},
		{
			name:      "standalone symbol token",
			input:     "محمد ﷺ رسول",
			preserved: []string{"ﷺ"},
			want:      []string{"محمد", "ﷺ", "رسول"},
		},
		{
			name:      "symbol absent from text",
			input:     "قال رسول",
			preserved: []string{"ﷺ"},
			want:      []string{"قال", "رسول"},
		},
		{
			name:      "empty preserved symbol is ignored",
			input:     "قال رسول",
			preserved: []string{""},
			want:      []string{"قال", "رسول"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input, tt.preserved)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokensRoundTrip(t *testing.T) {
	// Joining tokens with single spaces must reproduce the input up to
	// whitespace normalization, with no character dropped or duplicated.
	inputs := []string{
		"قال  رسول\tالله",
		"محمدﷺرسول الله",
		"ﷺ",
		"اﷺبﷺج",
	}
	for _, input := range inputs {
		tokens := Tokens(input, []string{"ﷺ"})
		joined := strings.Join(tokens, "")
		stripped := strings.Join(strings.Fields(input), "")
		if joined != stripped {
			t.Errorf("round trip lost characters: input %q, got %q, want %q", input, joined, stripped)
		}
		for _, token := range tokens {
			if token != "ﷺ" && strings.Contains(token, "ﷺ") {
				t.Errorf("symbol not isolated in token %q of %q", token, input)
			}
		}
	}
}
