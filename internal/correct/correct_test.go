package correct

import (
	"slices"
	"testing"

	"github.com/ragaeeb/baburchi-sub001/internal/noise"
)

func TestCorrectHonorific(t *testing.T) {
	got := Correct(
		"محمد صلى الله عليه وسلم رسول الله",
		"محمد ﷺ رسول الله",
		Options{TypoSymbols: []string{"ﷺ"}},
	)
	want := "محمد ﷺ رسول الله"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrectIdenticalInput(t *testing.T) {
	line := "قال رسول الله"
	if got := Correct(line, line, Options{}); got != line {
		t.Errorf("Correct() = %q, want unchanged %q", got, line)
	}
}

func TestCorrectEmptySides(t *testing.T) {
	if got := Correct("", "قال رسول", Options{}); got != "قال رسول" {
		t.Errorf("empty original: got %q", got)
	}
	if got := Correct("قال رسول", "", Options{}); got != "قال رسول" {
		t.Errorf("empty reference: got %q", got)
	}
	if got := Correct("", "", Options{}); got != "" {
		t.Errorf("both empty: got %q", got)
	}
}

func TestCorrectFusesSplitMarker(t *testing.T) {
	// OCR split the marker from its word; the reference carries the fused
	// form, which must replace the bare marker.
	got := Correct("(٥) أخرجه مسلم", "(٥)أخرجه مسلم", Options{})
	want := "(٥)أخرجه مسلم"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrectSwallowsDuplicateMarker(t *testing.T) {
	// OCR duplicated the marker after the fused form; the trailing bare
	// marker is a redundant artifact.
	got := Correct("(٥)أخرجه (٥) مسلم", "(٥)أخرجه مسلم", Options{})
	want := "(٥)أخرجه مسلم"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrectKeepsOriginalBelowHighThreshold(t *testing.T) {
	// ابو vs أبو sits at ratio 2/3: below the default high threshold the
	// original survives, above a lowered one the reference wins.
	original := "حدثنا ابو بكر"
	reference := "حدثنا أبو بكر"

	if got := Correct(original, reference, Options{}); got != original {
		t.Errorf("default thresholds: got %q, want %q", got, original)
	}

	opts := Options{SimilarityThreshold: 0.5, HighSimilarityThreshold: 0.6}
	if got := Correct(original, reference, opts); got != reference {
		t.Errorf("lowered threshold: got %q, want %q", got, reference)
	}
}

func TestCorrectReferences(t *testing.T) {
	opts := Options{SimilarityThreshold: 0.5, HighSimilarityThreshold: 0.6}
	original := []FootnoteLine{
		{IsFootnote: false, Text: "قال رسول الله"},
		{IsFootnote: true, Text: "(١) حدثنا ابو بكر"},
		{IsFootnote: true, Text: "(٢) رواه البخاري"},
	}
	reference := []FootnoteLine{
		{IsFootnote: true, Text: "(1) حدثنا أبو بكر"},
	}

	got := CorrectReferences(original, reference, opts)
	want := []string{
		"قال رسول الله",         // non-footnote passes through
		"(١) حدثنا أبو بكر",     // matched by folded digits
		"(٢) رواه البخاري",      // no counterpart
	}
	if !slices.Equal(got, want) {
		t.Errorf("CorrectReferences() = %v, want %v", got, want)
	}
}

func TestAlignSegments(t *testing.T) {
	target := []string{"الحمد لله رب العالمين", "الرحمن الرحيم"}
	segments := []string{"الحمد لله", "رب العالمين", "الرحمن الرحيم"}

	got := AlignSegments(target, segments, Options{})
	want := []string{"الحمد لله رب العالمين", "الرحمن الرحيم"}
	if !slices.Equal(got, want) {
		t.Errorf("AlignSegments() = %v, want %v", got, want)
	}
}

func TestAlignSegmentsEmptyTarget(t *testing.T) {
	if got := AlignSegments(nil, []string{"نص"}, Options{}); got != nil {
		t.Errorf("AlignSegments(nil) = %v, want nil", got)
	}
}

func TestAlignSegmentsMissingSegment(t *testing.T) {
	target := []string{"الحمد لله", "سطر مفقود"}
	segments := []string{"الحمد لله"}

	got := AlignSegments(target, segments, Options{})
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0] != "الحمد لله" {
		t.Errorf("line 0 = %q, want الحمد لله", got[0])
	}
	if got[1] != "" {
		t.Errorf("line 1 = %q, want empty", got[1])
	}
}

func TestIsNoiseFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"punctuation run", ".,;:", true},
		{"content", "قال رسول الله", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNoiseFragment(tt.fragment, noise.Analyze(tt.fragment))
			if got != tt.want {
				t.Errorf("IsNoiseFragment(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}
