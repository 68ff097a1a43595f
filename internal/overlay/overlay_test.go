package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

func container(t *testing.T) *model.Container {
	t.Helper()

	c := model.NewContainer("1.12.2", "MCP", model.FormatMCPSRG)

	cls := model.NewClass("net/A")
	cls.AddField(model.NewField("field_70_a", ""))
	cls.AddField(model.NewField("field_71_b", ""))
	cls.AddMethod(model.NewMethod("func_100_a", "(II)V"))
	cls.AddMethod(model.NewMethod("func_101_b", "()V"))
	cls.AddMethod(model.NewMethod("toString", "()Ljava/lang/String;"))
	require.NoError(t, c.AddClass(cls))

	return c
}

func TestFieldAndMethodNames(t *testing.T) {
	c := container(t)
	diags := diagnostic.NewCollector(nil, "mcp")

	fields, err := New(KindFields, "searge,name,side,desc\nfield_70_a,health,2,\nfield_99_z,unused,2,\n", diags)
	require.NoError(t, err)
	assert.Equal(t, KindFields, fields.Kind())

	methods, err := New(KindMethods, "searge,name,side,desc\r\nfunc_100_a,move,0,\r\n\r\nbroken\r\n", diags)
	require.NoError(t, err)

	fields.Apply(c, diags)
	methods.Apply(c, diags)

	cls := c.GetClass("net/A")
	assert.Equal(t, "health", cls.GetField("field_70_a").OptimumName())
	assert.Equal(t, "field_71_b", cls.GetField("field_71_b").OptimumName())
	assert.Equal(t, "move", cls.GetMethod("func_100_a", "").OptimumName())
	assert.Equal(t, "func_101_b", cls.GetMethod("func_101_b", "").OptimumName())

	d := diags.Diagnostics()
	assert.Equal(t, 1, d.Count(diagnostic.CodeMalformedRecord))
	assert.Equal(t, 2, d.Count(diagnostic.CodeUnmatchedOverlayRecord))
}

func TestParams(t *testing.T) {
	c := container(t)
	diags := diagnostic.NewCollector(nil, "mcp")

	params, err := New(KindParams, "param,name,side\np_100_1_,x,0\np_100_2_,y,0\np_i55_1_,ctor,0\np_100_1_,xx,0\n", diags)
	require.NoError(t, err)
	params.Apply(c, diags)

	cls := c.GetClass("net/A")

	m := cls.GetMethod("func_100_a", "")
	require.Len(t, m.Args, 3)
	assert.Equal(t, model.MethodArg{Index: 1, Name: "x"}, m.Args[0])

	name, ok := m.ArgName(1)
	assert.True(t, ok)
	assert.Equal(t, "xx", name)

	assert.Nil(t, cls.GetMethod("func_101_b", "").Args)
	assert.Nil(t, cls.GetMethod("toString", "").Args)
	assert.Empty(t, diags.Diagnostics().Warnings)
}

func TestUnknownKind(t *testing.T) {
	_, err := New(Kind("classes"), "", diagnostic.NewCollector(nil, ""))
	assert.Error(t, err)
}
