// Package textdist implements edit-distance metrics between two strings:
// the classic Levenshtein distance and two Damerau-Levenshtein variants.
//
// All functions index their inputs by Unicode code point ([]rune), so
// distances are counted in code points, not bytes. No case folding or
// normalization is applied; callers that want case- or accent-insensitive
// distances must fold the inputs first.
//
// Every function is pure and safe for concurrent use; each call allocates
// its own working rows and cannot fail for any finite input.
package textdist

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions and substitutions needed to transform a into b.
//
// The distance is symmetric, zero iff a == b, and satisfies the triangle
// inequality.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Wagner-Fischer with two rolling rows; prev[j] holds the distance
	// between ra[:i-1] and rb[:j].
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			d := prev[j] + 1 // deletion
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// DamerauLevenshteinDistance returns the minimum number of single-rune
// insertions, deletions, substitutions and adjacent transpositions needed
// to transform a into b.
//
// This is the restricted "optimal string alignment" variant: each rune
// position takes part in at most one edit, so a transposed pair cannot be
// modified again afterwards. It can therefore exceed the unrestricted
// distance, e.g. for ("CA", "ABC") it reports 3 where
// UnrestrictedDamerauLevenshteinDistance reports 2. It is never larger
// than LevenshteinDistance for the same pair.
func DamerauLevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Three rolling rows: the transposition candidate reaches back to
	// row i-2.
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			d := prev[j] + 1 // deletion
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if tr := prev2[j-2] + 1; tr < d {
					d = tr
				}
			}
			curr[j] = d
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// UnrestrictedDamerauLevenshteinDistance returns the true
// Damerau-Levenshtein distance between a and b, where transposed runes may
// be separated by other edits. It tracks the last occurrence of every rune
// of a and the last match column within the current row, so a swapped pair
// is discounted even when insertions or deletions happen between its halves.
//
// For most inputs it agrees with DamerauLevenshteinDistance; it is never
// larger.
func UnrestrictedDamerauLevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// The matrix carries an extra sentinel row and column filled with an
	// unreachable distance so the transposition candidate never wins by
	// reading outside the real table.
	inf := la + lb
	d := make([][]int, la+2)
	for i := range d {
		d[i] = make([]int, lb+2)
	}
	d[0][0] = inf
	for i := 0; i <= la; i++ {
		d[i+1][0] = inf
		d[i+1][1] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j+1] = inf
		d[1][j+1] = j
	}

	lastRow := make(map[rune]int, la) // last row where each rune of a occurred
	for i := 1; i <= la; i++ {
		ca := ra[i-1]
		lastMatchCol := 0
		for j := 1; j <= lb; j++ {
			cb := rb[j-1]
			lastMatchRow := lastRow[cb]
			cost := 1
			if ca == cb {
				cost = 0
			}
			// Transposition cost: one swap plus the runes skipped over
			// on each side since the transposed pair last matched.
			trans := d[lastMatchRow][lastMatchCol] +
				(i - lastMatchRow - 1) + 1 + (j - lastMatchCol - 1)
			d[i+1][j+1] = min(
				min(d[i][j]+cost, d[i][j+1]+1),
				min(d[i+1][j]+1, trans),
			)
			if cost == 0 {
				lastMatchCol = j
			}
		}
		lastRow[ca] = i
	}
	return d[la+1][lb+1]
}
