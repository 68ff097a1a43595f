package match

import "strings"

// Separator qualifies class names.
const Separator = '/'

// OnlyClassOrNull returns the segment after the last separator of name and
// whether name is qualified at all.
func OnlyClassOrNull(name string) (string, bool) {
	i := strings.LastIndexByte(name, Separator)
	if i < 0 {
		return "", false
	}

	return name[i+1:], true
}

// OnlySimple returns the segment after the last separator, or name itself
// when it is not qualified.
func OnlySimple(name string) string {
	if simple, ok := OnlyClassOrNull(name); ok {
		return simple
	}

	return name
}

// Similarity scores the simple segments of a and b, case-insensitively,
// between 0 and 1. It is symmetric and two empty names score 1.
func Similarity(a, b string) float64 {
	return LevenshteinNormalized(strings.ToLower(OnlySimple(a)), strings.ToLower(OnlySimple(b)))
}

// MatchResult is a successful substring match. MatchStr is the search term
// and SelfTerm the part of the candidate name it was matched against.
type MatchResult struct {
	MatchStr string
	SelfTerm string
}

// ContainsOrMatch matches term against name, case-insensitively. A
// qualified term is searched in the whole name, otherwise only in the
// simple segment of name.
func ContainsOrMatch(name, term string) (MatchResult, bool) {
	self := name
	if _, qualified := OnlyClassOrNull(term); !qualified {
		self = OnlySimple(name)
	}

	if !containsFold(self, term) {
		return MatchResult{}, false
	}

	return MatchResult{MatchStr: term, SelfTerm: self}, true
}

// Contains reports whether ContainsOrMatch matches.
func Contains(name, term string) bool {
	_, ok := ContainsOrMatch(name, term)
	return ok
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
