package tiny

import "fmt"

// Format version written in the header.
const (
	MajorVersion = 2
	MinorVersion = 0
)

// File is an assembled tiny table.
type File struct {
	Header  Header
	Classes []*Class
}

// Header declares the namespace columns.
type Header struct {
	Namespaces []string
	Major      int
	Minor      int
	// Properties are written as "\t<key>\t<value>" lines after the header,
	// sorted by key. An empty value writes "\t<key>".
	Properties map[string]string
}

// NewHeader returns a v2.0 header for namespaces.
func NewHeader(namespaces ...string) Header {
	return Header{Namespaces: namespaces, Major: MajorVersion, Minor: MinorVersion}
}

// Class is a class row with its member rows.
type Class struct {
	Names   []string
	Fields  []*Field
	Methods []*Method
}

// Field is a field row.
type Field struct {
	Desc  string
	Names []string
}

// Method is a method row.
type Method struct {
	Desc  string
	Names []string
}

// ColumnError reports a row whose name count differs from the header.
type ColumnError struct {
	Kind     string
	Row      []string
	Expected int
}

// Error implements error.
func (e *ColumnError) Error() string {
	return fmt.Sprintf("tiny %s row %v has %d names, header declares %d", e.Kind, e.Row, len(e.Row), e.Expected)
}

// Validate checks every row has one name per namespace.
func (f *File) Validate() error {
	n := len(f.Header.Namespaces)

	for _, c := range f.Classes {
		if len(c.Names) != n {
			return &ColumnError{Kind: "class", Row: c.Names, Expected: n}
		}

		for _, fd := range c.Fields {
			if len(fd.Names) != n {
				return &ColumnError{Kind: "field", Row: fd.Names, Expected: n}
			}
		}

		for _, m := range c.Methods {
			if len(m.Names) != n {
				return &ColumnError{Kind: "method", Row: m.Names, Expected: n}
			}
		}
	}

	return nil
}
