package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lower-cases an identifier and drops its separators, so
// "entity_id", "EntityID" and "entity-id" all become "entityid".
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), ""))
}

// NormalizeIdentWithAccessorStrip normalizes and strips one leading
// accessor token (get, set, is, has) so that "getWorld" and "world" compare
// equal. A name made of the accessor token alone is kept.
func NormalizeIdentWithAccessorStrip(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 {
		switch tokens[0] {
		case "get", "set", "is", "has":
			tokens = tokens[1:]
		}
	}

	return stripSeparators(strings.Join(tokens, ""))
}

// splitWords cuts an identifier into words at separators, at lower-to-upper
// transitions and before the last capital of an acronym:
//
//	"EntityID"    -> [Entity ID]
//	"NBTCompound" -> [NBT Compound]
//	"func_1234_a" -> [func 1234 a]
func splitWords(s string) []string {
	runes := []rune(s)

	var words []string

	from := -1

	flush := func(to int) {
		if from >= 0 && to > from {
			words = append(words, string(runes[from:to]))
		}

		from = -1
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}

		if from >= 0 && wordBoundary(runes, i) {
			flush(i)
		}

		if from < 0 {
			from = i
		}
	}

	flush(len(runes))

	return words
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '$', ' ':
		return true
	}

	return false
}

// wordBoundary reports whether a new word starts at runes[i], i > 0.
func wordBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	// "XMLParser": split before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, s)
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}
