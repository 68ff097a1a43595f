package overlay

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/utils"
)

var (
	paramPattern  = regexp.MustCompile(`^p_(\d+)_(\d+)_?$`)
	methodPattern = regexp.MustCompile(`^func_(\d+)_([^_]+)_?$`)
)

// ParamTable groups parameter names by numeric method id, in table order.
type ParamTable map[string][]model.MethodArg

// ParseParamTable reads rows "p_<id>_<index>_,<name>,...". Rows whose key is
// not a numbered parameter (constructor parameters, the header) are
// ignored.
func ParseParamTable(content string, diags *diagnostic.Collector) ParamTable {
	table := make(ParamTable)

	forEachRow(content, func(no int, row string) {
		key, name := utils.Unpack2(strings.Split(row, ","))

		match := paramPattern.FindStringSubmatch(key)
		if match == nil {
			return
		}

		index, err := strconv.Atoi(match[2])
		if err != nil || name == "" {
			diags.Warnf(diagnostic.CodeMalformedRecord, fmt.Sprintf("line %d", no), "bad parameter row %q", row)
			return
		}

		table[match[1]] = append(table[match[1]], model.MethodArg{Index: index, Name: name})
	})

	return table
}

// Params attaches parameter names to methods named func_<id>_<suffix>.
type Params struct {
	Table ParamTable
}

// Kind implements Pass.
func (o *Params) Kind() Kind { return KindParams }

// Apply implements Pass.
func (o *Params) Apply(c *model.Container, diags *diagnostic.Collector) {
	used := make(map[string]bool)

	for _, cls := range c.Classes() {
		for _, m := range cls.Methods {
			match := methodPattern.FindStringSubmatch(m.Intermediary)
			if match == nil {
				continue
			}

			if args, ok := o.Table[match[1]]; ok {
				m.AddArgs(args...)
				used[match[1]] = true
			}
		}
	}

	reportUnused(diags, KindParams, len(o.Table), len(used))
}
