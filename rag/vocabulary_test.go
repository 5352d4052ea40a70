package rag

import (
	"strings"
	"testing"
)

func TestVocabulary_AllCodesAreUppercaseAndNonEmpty(t *testing.T) {
	vocab := NewVocabulary(AvailableCourses)

	codes := vocab.AllCodes()
	if len(codes) == 0 {
		t.Fatal("vocabulary has no codes")
	}
	for _, code := range codes {
		if code == "" {
			t.Error("empty course code in vocabulary")
		}
		if code != strings.ToUpper(code) {
			t.Errorf("code %q is not uppercase", code)
		}
	}
}

func TestVocabulary_KeepsEquivalentCodes(t *testing.T) {
	vocab := NewVocabulary(AvailableCourses)

	found := map[string]bool{}
	for _, code := range vocab.AllCodes() {
		found[code] = true
	}

	// Termodinamica carries two department codes.
	if !found["FIS1523"] || !found["IIQ1003"] {
		t.Fatalf("expected both Termodinamica codes, got %v", vocab.AllCodes())
	}
}

func TestVocabulary_RenderListFormat(t *testing.T) {
	vocab := NewVocabulary([]CourseEntry{
		{"Optimización", []string{"ICS1113"}},
		{"Dinamica", []string{"FIS0154", "ICE1514"}},
	})

	list := vocab.renderList()
	if list != "- Optimización (ICS1113)\n- Dinamica (FIS0154, ICE1514)" {
		t.Fatalf("unexpected list rendering:\n%s", list)
	}
}
