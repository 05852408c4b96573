package options

import "testing"

func TestApply(t *testing.T) {
	got := DefaultOptions
	for _, op := range []Options{
		WithMaxEditDistance(3),
		WithTopK(5),
		WithCountThreshold(7),
		WithPreservedCase(),
		WithStrippedAccents(),
		WithoutTranspositions(),
	} {
		op.Apply(&got)
	}

	want := SuggestOptions{
		MaxEditDistance: 3,
		TopK:            5,
		CountThreshold:  7,
		CaseFold:        false,
		StripAccents:    true,
		Transpositions:  false,
	}
	if got != want {
		t.Errorf("applied options = %+v; want %+v", got, want)
	}
}

func TestDefaultsUntouched(t *testing.T) {
	cfg := DefaultOptions
	WithMaxEditDistance(9).Apply(&cfg)
	if DefaultOptions.MaxEditDistance == 9 {
		t.Error("DefaultOptions mutated by Apply on a copy")
	}
}
