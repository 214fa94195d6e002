// Package similarity scores how alike two titles are.
package similarity

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the similarity of a and b as an integer percentage:
// round(100 * (2*M / (len(a)+len(b)))), rounded half to even, where M is the
// length of the longest common subsequence of the two strings' code points.
// It is the complement of the insertion/deletion edit distance, normalized
// by the combined length. Comparison is case-sensitive and nothing is
// stripped. If either string is empty the ratio is 0.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	m := edlib.LCS(a, b)
	// Divide before scaling: fractions that land just under .5 in floating
	// point must round down.
	return int(math.RoundToEven(100 * (2 * float64(m) / float64(la+lb))))
}
