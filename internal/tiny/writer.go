package tiny

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write serializes f to w. Rows are validated against the header first, so
// nothing is written for an inconsistent table.
func Write(w io.Writer, f *File) error {
	if err := f.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	row := func(indent int, parts ...string) {
		for range indent {
			bw.WriteByte('\t')
		}

		bw.WriteString(strings.Join(parts, "\t"))
		bw.WriteByte('\n')
	}

	header := append([]string{"tiny", strconv.Itoa(f.Header.Major), strconv.Itoa(f.Header.Minor)}, f.Header.Namespaces...)
	row(0, header...)

	for _, key := range slices.Sorted(maps.Keys(f.Header.Properties)) {
		if v := f.Header.Properties[key]; v != "" {
			row(1, key, v)
		} else {
			row(1, key)
		}
	}

	for _, c := range f.Classes {
		row(0, append([]string{"c"}, c.Names...)...)

		for _, fd := range c.Fields {
			row(1, append([]string{"f", fd.Desc}, fd.Names...)...)
		}

		for _, m := range c.Methods {
			row(1, append([]string{"m", m.Desc}, m.Names...)...)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing tiny table: %w", err)
	}

	return nil
}

// Bytes serializes f into memory.
func Bytes(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile serializes f to path, creating parent directories.
func WriteFile(f *File, path string) error {
	data, err := Bytes(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
