package textdist

import (
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a cat", 5},
		{"a", "", 1},
		{"abc", "abc", 0},
		{"a", "b", 1},
		{"ab", "b", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"ab", "ba", 2}, // no transposition credit
		{"some string", "some other string", 6},
		{"тест", "тесты", 1}, // counted in runes, not bytes
	} {
		if got := LevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDamerauLevenshteinDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a cat", 5},
		{"abc", "abc", 0},
		{"ab", "ba", 1}, // single transposition
		{"kitten", "sitting", 3},
		{"some string", "some other string", 6},
		{"an act", "a cat", 2},
		{"MERCEDES-BENS", "MERCEDES-BENZ", 1},
		// Restricted variant: the transposed pair cannot be edited again,
		// so this costs 3 instead of the unrestricted 2.
		{"CA", "ABC", 3},
	} {
		if got := DamerauLevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestUnrestrictedDamerauLevenshteinDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a cat", 5},
		{"some string", "some string", 0},
		{"ab", "ba", 1},
		{"an act", "a cat", 2},
		{"MERCEDES-BENS", "MERCEDES-BENZ", 1},
		{"some string", "some other string", 6},
		// Transposition of C and A survives the insertion of B in between.
		{"CA", "ABC", 2},
	} {
		if got := UnrestrictedDamerauLevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("UnrestrictedDamerauLevenshteinDistance(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

var corpus = []string{
	"", "a", "b", "ab", "ba", "abc", "ca", "aa",
	"kitten", "sitting", "an act", "a cat", "cafe", "café",
	"some string", "some other string",
}

func TestMetricProperties(t *testing.T) {
	funcs := map[string]func(string, string) int{
		"LevenshteinDistance":                    LevenshteinDistance,
		"DamerauLevenshteinDistance":             DamerauLevenshteinDistance,
		"UnrestrictedDamerauLevenshteinDistance": UnrestrictedDamerauLevenshteinDistance,
	}
	for name, fn := range funcs {
		for _, s := range corpus {
			if got := fn(s, s); got != 0 {
				t.Errorf("%s(%q, %q) = %d; want 0", name, s, s, got)
			}
			if got, n := fn("", s), len([]rune(s)); got != n {
				t.Errorf("%s(\"\", %q) = %d; want %d", name, s, got, n)
			}
		}
		for _, a := range corpus {
			for _, b := range corpus {
				ab, ba := fn(a, b), fn(b, a)
				if ab != ba {
					t.Errorf("%s not symmetric for (%q, %q): %d vs %d", name, a, b, ab, ba)
				}
				if ab < 0 {
					t.Errorf("%s(%q, %q) = %d; want >= 0", name, a, b, ab)
				}
			}
		}
	}
}

// The transposition operation only ever offers a cheaper path, and the
// unrestricted variant subsumes the restricted one.
func TestVariantOrdering(t *testing.T) {
	for _, a := range corpus {
		for _, b := range corpus {
			lev := LevenshteinDistance(a, b)
			osa := DamerauLevenshteinDistance(a, b)
			dl := UnrestrictedDamerauLevenshteinDistance(a, b)
			if osa > lev {
				t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d > LevenshteinDistance = %d", a, b, osa, lev)
			}
			if dl > osa {
				t.Errorf("UnrestrictedDamerauLevenshteinDistance(%q, %q) = %d > DamerauLevenshteinDistance = %d", a, b, dl, osa)
			}
		}
	}
}

func TestTriangleInequality(t *testing.T) {
	for _, a := range corpus {
		for _, b := range corpus {
			for _, c := range corpus {
				ac := LevenshteinDistance(a, c)
				ab := LevenshteinDistance(a, b)
				bc := LevenshteinDistance(b, c)
				if ac > ab+bc {
					t.Errorf("triangle inequality violated: d(%q,%q)=%d > d(%q,%q)+d(%q,%q)=%d",
						a, c, ac, a, b, b, c, ab+bc)
				}
			}
		}
	}
}
