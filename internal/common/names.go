package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SimpleName returns the trailing segment of a slash-qualified internal name.
// "net/minecraft/Foo" -> "Foo", "Foo" -> "Foo".
func SimpleName(internalName string) string {
	if i := strings.LastIndexByte(internalName, '/'); i >= 0 {
		return internalName[i+1:]
	}

	return internalName
}

// OwnerName returns everything before the last '/' of a member reference,
// or the whole string when it has no '/'.
// "a/b/c" -> "a/b".
func OwnerName(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[:i]
	}

	return ref
}

// FirstNonEmpty returns the first non-empty argument, or "" if all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
