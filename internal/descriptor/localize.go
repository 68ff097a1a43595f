package descriptor

import "strings"

// LocalizeFieldDesc renders a field (or return) descriptor for display:
// "[[Lnet/Foo;" -> "net.Foo[][]", "I" -> "int".
// Method descriptors are not supported.
func LocalizeFieldDesc(desc string) string {
	if desc == "" {
		return desc
	}

	base := strings.TrimLeft(desc, "[")
	arrays := len(desc) - len(base)

	var out strings.Builder

	if base != "" {
		if base[0] == 'L' {
			name := strings.TrimPrefix(base, "L")
			name = strings.TrimSuffix(name, ";")
			out.WriteString(strings.ReplaceAll(name, "/", "."))
		} else {
			out.WriteString(LocalizePrimitive(base[0]))
		}
	}

	for range arrays {
		out.WriteString("[]")
	}

	return out.String()
}

// LocalizePrimitive returns the Java keyword for a primitive type code.
// Unknown codes are returned as a one-character string.
func LocalizePrimitive(code byte) string {
	switch code {
	case 'Z':
		return "boolean"
	case 'C':
		return "char"
	case 'B':
		return "byte"
	case 'S':
		return "short"
	case 'I':
		return "int"
	case 'F':
		return "float"
	case 'J':
		return "long"
	case 'D':
		return "double"
	case 'V':
		return "void"
	default:
		return string(code)
	}
}
