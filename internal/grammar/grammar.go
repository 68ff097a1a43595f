package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

// ErrUnknownFormat is returned by New for a format without a grammar.
var ErrUnknownFormat = errors.New("no grammar for format")

// Namespace identifiers of the SRG family.
const (
	NamespaceObf = "obf"
	NamespaceSrg = "srg"
)

// Grammar is a parsed-on-demand mapping source.
type Grammar interface {
	// Format tags the grammar variant.
	Format() model.Format
	// Namespaces returns the declared namespaces in column order.
	Namespaces() Namespaces
	// Parse replays the content into v and returns what was skipped.
	Parse(v MappingsVisitor) diagnostic.Diagnostics
}

// Options configure a grammar run.
type Options struct {
	// Source names the content in diagnostics, e.g. "joined.srg".
	Source string
	// Logger receives diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) collector() *diagnostic.Collector {
	return diagnostic.NewCollector(o.Logger, o.Source)
}

// New returns the grammar for format over content.
func New(format model.Format, content string, opts Options) (Grammar, error) {
	switch format {
	case model.FormatSRG, model.FormatMCPSRG:
		return NewSRG(content, opts), nil
	case model.FormatTSRG, model.FormatMCPTSRG:
		return NewTSRG(content, opts), nil
	case model.FormatTiny:
		return NewTiny(content, opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// line is one non-blank input line with its 1-based number.
type line struct {
	no   int
	text string
}

func (l line) subject() string {
	return fmt.Sprintf("line %d", l.no)
}

// nonBlankLines splits content on \n or \r\n and drops blank lines.
func nonBlankLines(content string) []line {
	var lines []line

	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	no := 0
	for sc.Scan() {
		no++

		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		lines = append(lines, line{no: no, text: text})
	}

	return lines
}
