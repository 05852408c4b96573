package textdist

import "testing"

func BenchmarkLevenshteinDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = LevenshteinDistance("one string", "other string")
	}
}

func BenchmarkDamerauLevenshteinDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DamerauLevenshteinDistance("one string", "other string")
	}
}

func BenchmarkDamerauLevenshteinDistanceSameLength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DamerauLevenshteinDistance("one string12", "other string")
	}
}

func BenchmarkDamerauLevenshteinDistanceEmpty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DamerauLevenshteinDistance("", "other string")
	}
}

func BenchmarkUnrestrictedDamerauLevenshteinDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = UnrestrictedDamerauLevenshteinDistance("one string", "other string")
	}
}

func BenchmarkUnrestrictedDamerauLevenshteinDistanceSame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = UnrestrictedDamerauLevenshteinDistance("some string", "some string")
	}
}
