package export

import (
	"log/slog"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/tiny"
	"symbol-mapper/options"
)

// PropertyMissingFieldDescriptors marks tables whose field descriptors were
// not available from the source format.
const PropertyMissingFieldDescriptors = "missing-field-descriptors"

// Columns names the namespaces written by Project.
type Columns struct {
	Intermediary string
	Named        string
	ObfMerged    string
	ObfClient    string
	ObfServer    string
}

// DefaultColumns are used for every empty field of ProjectOptions.Columns.
var DefaultColumns = Columns{
	Intermediary: "intermediary",
	Named:        "named",
	ObfMerged:    "obf",
	ObfClient:    "obfClient",
	ObfServer:    "obfServer",
}

// ProjectOptions configure Project.
type ProjectOptions struct {
	// Namespaces selects the optional columns. Intermediary is always
	// written first.
	Namespaces options.NamespaceEnum
	Columns    Columns
	// OmitMissing writes an empty name instead of the intermediary
	// fallback when an entity has no name in a selected namespace.
	OmitMissing bool
	// FieldDescriptions overrides the container format's capability when
	// set.
	FieldDescriptions *bool
	Logger            *slog.Logger
}

type column struct {
	name string
	src  model.NameSource
}

func (o ProjectOptions) columns() []column {
	names := o.Columns
	defaults := DefaultColumns

	pick := func(v, def string) string {
		if v != "" {
			return v
		}

		return def
	}

	cols := []column{{name: pick(names.Intermediary, defaults.Intermediary), src: model.SourceIntermediary}}

	if o.Namespaces.Has(options.NamespaceNamed) {
		cols = append(cols, column{name: pick(names.Named, defaults.Named), src: model.SourceMapped})
	}

	if o.Namespaces.Has(options.NamespaceObfMerged) {
		cols = append(cols, column{name: pick(names.ObfMerged, defaults.ObfMerged), src: model.SourceObfMerged})
	}

	if o.Namespaces.Has(options.NamespaceObfClient) {
		cols = append(cols, column{name: pick(names.ObfClient, defaults.ObfClient), src: model.SourceObfClient})
	}

	if o.Namespaces.Has(options.NamespaceObfServer) {
		cols = append(cols, column{name: pick(names.ObfServer, defaults.ObfServer), src: model.SourceObfServer})
	}

	return cols
}

// Project assembles the table of a single container.
func Project(c *model.Container, opts ProjectOptions) (*tiny.File, diagnostic.Diagnostics) {
	diags := diagnostic.NewCollector(opts.Logger, c.Name)
	cols := opts.columns()

	header := tiny.NewHeader()
	for _, col := range cols {
		header.Namespaces = append(header.Namespaces, col.name)
	}

	fieldDescs := c.Format.SupportsFieldDescription()
	if opts.FieldDescriptions != nil {
		fieldDescs = *opts.FieldDescriptions
	}

	if !fieldDescs {
		header.Properties = map[string]string{PropertyMissingFieldDescriptors: ""}
		diags.Infof(diagnostic.CodeFieldDescriptorsMissing, c.Format.String(),
			"source format carries no field descriptors")
	}

	names := func(n *model.Names) []string {
		row := make([]string, len(cols))

		for i, col := range cols {
			v, ok := n.Get(col.src)

			switch {
			case ok:
				row[i] = v
			case opts.OmitMissing:
				row[i] = ""
			default:
				row[i] = n.Intermediary
			}
		}

		return row
	}

	file := &tiny.File{Header: header, Classes: make([]*tiny.Class, 0, c.Len())}

	for _, cls := range c.Classes() {
		tc := &tiny.Class{Names: names(&cls.Names)}

		for _, m := range cls.Methods {
			if m.IntermediaryDesc == "" {
				diags.Warnf(diagnostic.CodeBlankRequiredDescriptor, cls.Intermediary+"."+m.Intermediary,
					"method exported with an empty descriptor")
			}

			tc.Methods = append(tc.Methods, &tiny.Method{Desc: m.IntermediaryDesc, Names: names(&m.Names)})
		}

		for _, f := range cls.Fields {
			tc.Fields = append(tc.Fields, &tiny.Field{Desc: f.IntermediaryDesc, Names: names(&f.Names)})
		}

		file.Classes = append(file.Classes, tc)
	}

	return file, diags.Diagnostics()
}
