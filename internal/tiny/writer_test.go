package tiny

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *File {
	return &File{
		Header: NewHeader("intermediary", "named"),
		Classes: []*Class{
			{
				Names:   []string{"net/A", "net/Foo"},
				Fields:  []*Field{{Desc: "I", Names: []string{"field_1", "health"}}},
				Methods: []*Method{{Desc: "(Lnet/A;)V", Names: []string{"func_2", "setParent"}}},
			},
			{Names: []string{"net/B", "net/B"}},
		},
	}
}

func TestWrite(t *testing.T) {
	f := sample()
	f.Header.Properties = map[string]string{"missing-field-descriptors": "", "origin": "mcp"}

	out, err := Bytes(f)
	require.NoError(t, err)

	expected := "tiny\t2\t0\tintermediary\tnamed\n" +
		"\tmissing-field-descriptors\n" +
		"\torigin\tmcp\n" +
		"c\tnet/A\tnet/Foo\n" +
		"\tf\tI\tfield_1\thealth\n" +
		"\tm\t(Lnet/A;)V\tfunc_2\tsetParent\n" +
		"c\tnet/B\tnet/B\n"

	assert.Equal(t, expected, string(out))
}

func TestWriteRejectsColumnMismatch(t *testing.T) {
	f := sample()
	f.Classes[0].Methods[0].Names = []string{"func_2"}

	_, err := Bytes(f)

	var colErr *ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "method", colErr.Kind)
	assert.Equal(t, 2, colErr.Expected)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "mappings.tiny")

	require.NoError(t, WriteFile(sample(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "c\tnet/B\tnet/B\n")
}
