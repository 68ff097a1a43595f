package match

import "unicode/utf8"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions or substitutions turning
// one into the other. Characters are runes, not bytes.
//
// Time complexity: O(n * m) in runes
// Space complexity: O(min(n, m)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	return levenshteinRunes([]rune(a), []rune(b))
}

func levenshteinRunes(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// keep the row over the shorter string
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// LevenshteinNormalized computes (longer - distance) / longer over rune
// counts, a score between 0 and 1 where 1 means identical. Two empty
// strings score 1.
func LevenshteinNormalized(a, b string) float64 {
	longer := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longer == 0 {
		return 1.0
	}

	return float64(longer-Levenshtein(a, b)) / float64(longer)
}

// NormalizedLevenshteinScore scores two identifiers after NormalizeIdent,
// so naming-convention differences do not count as edits.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}

// AccessorLevenshteinScore is NormalizedLevenshteinScore with accessor
// prefixes stripped from both names first.
func AccessorLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdentWithAccessorStrip(a), NormalizeIdentWithAccessorStrip(b))
}
