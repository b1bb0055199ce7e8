package journal

import (
	"strings"
	"testing"
)

func TestVocabularyLookups(t *testing.T) {
	v := DefaultVocabulary()
	if got := len(v.Codes()); got != 8 {
		t.Errorf("default vocabulary has %d competencies, want 8", got)
	}
	if got := v.CompetencyLabel("C1"); !strings.HasPrefix(got, "C1: ") {
		t.Errorf("CompetencyLabel(C1) = %q", got)
	}
	if got := v.CompetencyLabel("ZZ"); got != "ZZ" {
		t.Errorf("CompetencyLabel(ZZ) = %q, want the raw id", got)
	}
	if got := v.Citation("rojas-2011"); got != `Rojas, C. (2011) - "Ética profesional docente: un compromiso pedagógico humanístico."` {
		t.Errorf("Citation() = %q", got)
	}
	if got := v.Citation("nope"); got != "nope" {
		t.Errorf("Citation(nope) = %q, want the raw id", got)
	}
}

func TestDecodeVocabulary(t *testing.T) {
	input := `
competencies:
  - id: A
    label: "A: first"
  - id: B
    label: "B: second"
`
	v, err := DecodeVocabulary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeVocabulary() error = %v", err)
	}
	if got := strings.Join(v.Codes(), ","); got != "A,B" {
		t.Errorf("codes = %q", got)
	}
	// bibliography falls back to the default.
	if len(v.Bibliography) != len(DefaultVocabulary().Bibliography) {
		t.Errorf("bibliography has %d references", len(v.Bibliography))
	}

	empty, err := DecodeVocabulary(strings.NewReader(""))
	if err != nil || len(empty.Competencies) != 8 {
		t.Errorf("DecodeVocabulary(empty) = %v, %v", empty, err)
	}

	if _, err := DecodeVocabulary(strings.NewReader("competencies: [")); err == nil {
		t.Errorf("DecodeVocabulary() accepted invalid yaml")
	}
}

func TestProgress(t *testing.T) {
	p, err := ParseProgress("33.3")
	if err != nil {
		t.Fatal(err)
	}
	sum := p.Add(P(33.3)).Add(P(33.4))
	if !sum.Equal(P(100)) || !sum.Complete() {
		t.Errorf("33.3+33.3+33.4 = %s, want exactly 100", sum)
	}
	if got := P(150).Clamp(); !got.Equal(P(100)) {
		t.Errorf("Clamp(150) = %s", got)
	}
	if got := P(-1).Clamp(); !got.IsZero() {
		t.Errorf("Clamp(-1) = %s", got)
	}
	if got := P(42.4).Percent(); got != "42%" {
		t.Errorf("Percent() = %q", got)
	}
	if _, err := ParseProgress("lots"); err == nil {
		t.Errorf("ParseProgress() accepted garbage")
	}
}
