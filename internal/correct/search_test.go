package correct

import (
	"testing"
)

var samplePages = []string{
	"الحمد لله رب العالمين الرحمن الرحيم",
	"مالك يوم الدين اياك نعبد واياك نستعين",
	"اهدنا الصراط المستقيم صراط الذين انعمت عليهم",
}

func TestFindBestMatchContainment(t *testing.T) {
	best, ok := FindBestMatch(samplePages, "مالك يوم الدين")
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Index != 1 {
		t.Errorf("best.Index = %d, want 1", best.Index)
	}
	if best.Score != 1 {
		t.Errorf("best.Score = %v, want 1", best.Score)
	}
}

func TestFindBestMatchNormalizedContainment(t *testing.T) {
	// Diacritics and hamza variants on either side must not break
	// containment.
	pages := []string{"قصة اخرى", "حَدَّثَنَا أَبُو بَكْرٍ قَالَ"}
	best, ok := FindBestMatch(pages, "حدثنا ابو بكر")
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Index != 1 || best.Score != 1 {
		t.Errorf("best = %+v, want index 1 score 1", best)
	}
}

func TestFindBestMatchFuzzy(t *testing.T) {
	best, ok := FindBestMatch(samplePages, "اهدنا الصراط المستقيف")
	if !ok {
		t.Fatal("expected a fuzzy match")
	}
	if best.Index != 2 {
		t.Errorf("best.Index = %d, want 2", best.Index)
	}
	if best.Score <= DefaultMinMatchScore || best.Score >= 1 {
		t.Errorf("best.Score = %v, want fuzzy score inside (%v, 1)", best.Score, DefaultMinMatchScore)
	}
}

func TestFindBestMatchEmpty(t *testing.T) {
	if _, ok := FindBestMatch(nil, "نص"); ok {
		t.Error("expected no match for empty pages")
	}
	if _, ok := FindBestMatch(samplePages, ""); ok {
		t.Error("expected no match for empty excerpt")
	}
	if _, ok := FindBestMatch(samplePages, "عبارة غريبة تماما xyz"); ok {
		t.Error("expected no match below the relevance floor")
	}
}

func TestFindAllMatchesOrdering(t *testing.T) {
	pages := []string{
		"نص لا علاقة له بالموضوع اطلاقا",
		"قال رسول الله ﷺ من حسن اسلام المرء",
		"باب قال رسول الله في حسن الاسلام",
		"قال رسول الله ﷺ من حسن اسلام المرء تركه",
	}
	matches := FindAllMatches(pages, "قال رسول الله ﷺ من حسن اسلام المرء", 0.5)
	if len(matches) < 2 {
		t.Fatalf("got %d matches %v, want at least 2", len(matches), matches)
	}
	for i := 1; i < len(matches); i++ {
		prev, curr := matches[i-1], matches[i]
		if prev.Score < curr.Score {
			t.Errorf("matches not sorted by score: %v before %v", prev, curr)
		}
		if prev.Score == curr.Score && prev.Index > curr.Index {
			t.Errorf("equal scores not sorted by index: %v before %v", prev, curr)
		}
	}
	for _, m := range matches {
		if m.Index == 0 {
			t.Errorf("irrelevant page leaked into matches: %v", matches)
		}
		if m.Score < 0.5 {
			t.Errorf("match below floor: %v", m)
		}
	}
	if matches[0].Score != 1 {
		t.Errorf("top match score = %v, want exact containment", matches[0].Score)
	}
}
