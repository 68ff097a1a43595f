package grammar

import "unicode"

// IsValidJavaIdentifier reports whether s is permissible as a Java
// identifier.
func IsValidJavaIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isJavaIdentifierStart(r) {
				return false
			}

			continue
		}

		if !isJavaIdentifierPart(r) {
			return false
		}
	}

	return true
}

func isJavaIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$' || unicode.Is(unicode.Sc, r) || unicode.Is(unicode.Pc, r)
}

func isJavaIdentifierPart(r rune) bool {
	return isJavaIdentifierStart(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
