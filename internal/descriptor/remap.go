package descriptor

import "strings"

// Resolver maps an internal class name into another namespace.
// Implementations return the input unchanged when the name is unknown.
type Resolver func(internalName string) string

// Identity is the Resolver that returns every name unchanged.
func Identity(name string) string { return name }

// Remap rewrites every class-name token of desc through resolve.
//
// The scan is a single left-to-right pass: outside a class token characters
// are copied as-is; 'L' opens a token that runs to the next ';'. An
// unterminated trailing token is emitted unchanged.
func Remap(desc string, resolve Resolver) string {
	if resolve == nil {
		resolve = Identity
	}

	var out strings.Builder

	out.Grow(len(desc))

	start := -1 // index of the first class-name byte, -1 outside a token

	for i := 0; i < len(desc); i++ {
		c := desc[i]

		if start >= 0 {
			if c == ';' {
				out.WriteString(resolve(desc[start:i]))
				out.WriteByte(';')

				start = -1
			}

			continue
		}

		out.WriteByte(c)

		if c == 'L' {
			start = i + 1
		}
	}

	if start >= 0 {
		out.WriteString(desc[start:])
	}

	return out.String()
}
