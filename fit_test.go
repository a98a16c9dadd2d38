package notapdf

import "testing"

// runeWidth measures one unit per rune, which keeps the arithmetic exact.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestFitTextWithinBudget(t *testing.T) {
	if got := FitText(runeWidth, "hello", 10); got != "hello" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
	if got := FitText(runeWidth, "hello", 5); got != "hello" {
		t.Fatalf("exact fit should be unchanged, got %q", got)
	}
}

func TestFitTextTruncates(t *testing.T) {
	got := FitText(runeWidth, "abcdefghij", 5)
	if runeWidth(got) > 5 {
		t.Fatalf("result %q exceeds budget: width %v", got, runeWidth(got))
	}
	if got != "abcd…" {
		t.Fatalf("expected %q, got %q", "abcd…", got)
	}
}

func TestFitTextIdempotent(t *testing.T) {
	for _, s := range []string{"", "a", "short", "a considerably longer string"} {
		for _, w := range []float64{1, 3, 5, 10, 100} {
			once := FitText(runeWidth, s, w)
			twice := FitText(runeWidth, once, w)
			if once != twice {
				t.Fatalf("fit(%q, %v) not idempotent: %q then %q", s, w, once, twice)
			}
		}
	}
}

func TestFitTextSingleCharacterFloor(t *testing.T) {
	// Budget too small for anything: one character plus ellipsis remains.
	got := FitText(runeWidth, "abcdef", 1)
	if got != "a…" {
		t.Fatalf("expected single character floor %q, got %q", "a…", got)
	}
}
