package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"symbol-mapper/utils"
)

// MaxArrayDimensions is the deepest array type the JVM accepts.
const MaxArrayDimensions = 255

// ErrEmpty is returned by Validate for a blank descriptor.
var ErrEmpty = errors.New("empty descriptor")

// Validate reports whether desc is a syntactically valid field descriptor
// or method descriptor.
func Validate(desc string) error {
	if desc == "" {
		return ErrEmpty
	}

	if desc[0] == '(' {
		return validateMethod(desc)
	}

	n, err := fieldType(desc, 0)
	if err != nil {
		return err
	}

	if n != len(desc) {
		return fmt.Errorf("descriptor %q: trailing data at %d", desc, n)
	}

	return nil
}

// IsMethod reports whether desc looks like a method descriptor.
func IsMethod(desc string) bool {
	return strings.HasPrefix(desc, "(")
}

func validateMethod(desc string) error {
	pos := 1

	for {
		if pos >= len(desc) {
			return fmt.Errorf("descriptor %q: unterminated parameter list", desc)
		}

		if desc[pos] == ')' {
			pos++
			break
		}

		next, err := fieldType(desc, pos)
		if err != nil {
			return err
		}

		pos = next
	}

	if pos < len(desc) && desc[pos] == 'V' {
		pos++
	} else {
		next, err := fieldType(desc, pos)
		if err != nil {
			return err
		}

		pos = next
	}

	if pos != len(desc) {
		return fmt.Errorf("descriptor %q: trailing data at %d", desc, pos)
	}

	return nil
}

// fieldType consumes one field type starting at pos and returns the index
// just past it.
func fieldType(desc string, pos int) (int, error) {
	start := pos
	for pos < len(desc) && desc[pos] == '[' {
		pos++
	}

	if !utils.IsInRange(0, pos-start, MaxArrayDimensions) {
		return pos, fmt.Errorf("descriptor %q: %d array dimensions at %d", desc, pos-start, start)
	}

	if pos >= len(desc) {
		return pos, fmt.Errorf("descriptor %q: missing type at %d", desc, pos)
	}

	switch desc[pos] {
	case 'Z', 'C', 'B', 'S', 'I', 'J', 'F', 'D':
		return pos + 1, nil
	case 'L':
		end := strings.IndexByte(desc[pos:], ';')
		if end <= 1 {
			return pos, fmt.Errorf("descriptor %q: bad class reference at %d", desc, pos)
		}

		return pos + end + 1, nil
	default:
		return pos, fmt.Errorf("descriptor %q: unexpected %q at %d", desc, desc[pos], pos)
	}
}
