package export

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/tiny"
)

func class(obf, intermediary, mapped string) *model.Class {
	cls := model.NewClass(intermediary)
	cls.ObfMerged = obf
	cls.Mapped = mapped

	return cls
}

func container(t *testing.T, name string, classes ...*model.Class) *model.Container {
	t.Helper()

	c := model.NewContainer("1.0", name, model.FormatTiny)
	for _, cls := range classes {
		require.NoError(t, c.AddClass(cls))
	}

	return c
}

func TestMergeScenario(t *testing.T) {
	a := container(t, "", class("a1", "net/A", "Foo"))
	b := container(t, "", class("a1", "net/B", "Bar"))

	file, diags, err := Merge([]*model.Container{a, b}, MergeOptions{})
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)

	assert.Equal(t, []string{"obf", "intermediary_1", "named_1", "intermediary_2", "named_2"}, file.Header.Namespaces)
	require.Len(t, file.Classes, 1, spew.Sdump(file))
	assert.Equal(t, []string{"a1", "net/A", "Foo", "net/B", "Bar"}, file.Classes[0].Names)
	assert.NoError(t, file.Validate())
}

func TestMergeNoContainers(t *testing.T) {
	_, _, err := Merge(nil, MergeOptions{})
	assert.ErrorIs(t, err, ErrNoContainers)
}

func TestNamespaces(t *testing.T) {
	a := model.NewContainer("1.0", "Yarn", model.FormatTiny)
	b := model.NewContainer("1.0", "Mojang Official", model.FormatTiny)
	c := model.NewContainer("1.0", "yarn", model.FormatTiny)

	assert.Equal(t, []string{
		"official",
		"intermediary_yarn", "yarn",
		"intermediary_mojang_official", "mojang_official",
		"intermediary_yarn_3", "yarn_3",
	}, Namespaces([]*model.Container{a, b, c}, "official"))
}

func TestMergeMissingClass(t *testing.T) {
	a := container(t, "", class("a1", "net/A", "Foo"), class("a2", "net/A2", "Only"))
	b := container(t, "", class("a1", "net/B", "Bar"))

	t.Run("ignore", func(t *testing.T) {
		file, diags, err := Merge([]*model.Container{a, b}, MergeOptions{IgnoreMissing: true})
		require.NoError(t, err)

		require.Len(t, file.Classes, 1)
		assert.Equal(t, "a1", file.Classes[0].Names[0])
		assert.Equal(t, 1, diags.Count(diagnostic.CodeMissingNamespaceEntry))
		assert.Len(t, diags.Warnings, 1)
	})

	t.Run("ignore quietly", func(t *testing.T) {
		_, diags, err := Merge([]*model.Container{a, b}, MergeOptions{IgnoreMissing: true, Quiet: true})
		require.NoError(t, err)

		assert.Empty(t, diags.Warnings)
		assert.Equal(t, 1, diags.Count(diagnostic.CodeMissingNamespaceEntry))
	})

	t.Run("pad", func(t *testing.T) {
		file, diags, err := Merge([]*model.Container{a, b}, MergeOptions{})
		require.NoError(t, err)
		assert.Empty(t, diags.Warnings)

		require.Len(t, file.Classes, 2, spew.Sdump(file))
		assert.Equal(t, []string{"a2", "net/A2", "Only", "net/A2", "Only"}, file.Classes[1].Names)
		assert.NoError(t, file.Validate())
	})
}

func TestMergePadsMembersFromLastPresent(t *testing.T) {
	member := func(cls *model.Class, intermediary, mapped string) {
		m := model.NewMethod(intermediary, "()V")
		m.ObfMerged = "b"
		m.Mapped = mapped
		cls.AddMethod(m)

		f := model.NewField("f"+intermediary, "I")
		f.ObfMerged = "c"
		f.Mapped = "f" + mapped
		cls.AddField(f)
	}

	ca := class("a1", "net/A", "Foo")
	member(ca, "m_1", "run")

	cb := class("a1", "net/B", "Bar")
	member(cb, "m_2", "execute")

	a := container(t, "", ca)
	b := container(t, "", cb)
	c := container(t, "", class("a1", "net/C", "Baz"))
	d := container(t, "", class("a0", "net/D", "Qux"))

	file, _, err := Merge([]*model.Container{a, b, c, d}, MergeOptions{})
	require.NoError(t, err)
	require.Len(t, file.Classes, 2, spew.Sdump(file))

	cls := file.Classes[0]
	assert.Equal(t, []string{"a1", "net/A", "Foo", "net/B", "Bar", "net/C", "Baz", "net/A", "Foo"}, cls.Names)

	require.Len(t, cls.Methods, 1)
	assert.Equal(t, []string{"b", "m_1", "run", "m_2", "execute", "m_2", "execute", "m_2", "execute"}, cls.Methods[0].Names)

	require.Len(t, cls.Fields, 1)
	assert.Equal(t, []string{"c", "fm_1", "frun", "fm_2", "fexecute", "fm_2", "fexecute", "fm_2", "fexecute"}, cls.Fields[0].Names)

	assert.NoError(t, file.Validate())
}

func TestMergeAlignsMethodsByObfDescriptor(t *testing.T) {
	ca := class("a1", "net/A", "Foo")
	ma := model.NewMethod("m_1", "(Lnet/A;)V")
	ma.ObfMerged = "b"
	ma.Mapped = "run"
	ca.AddMethod(ma)

	overload := model.NewMethod("m_2", "(I)V")
	overload.ObfMerged = "b"
	overload.ObfDesc = "(I)V"
	ca.AddMethod(overload)

	cb := class("a1", "net/B", "Bar")
	mb := model.NewMethod("method_9", "(Lnet/B;)V")
	mb.ObfMerged = "b"
	mb.Mapped = "execute"
	cb.AddMethod(mb)

	a := container(t, "", ca)
	b := container(t, "", cb)

	file, diags, err := Merge([]*model.Container{a, b}, MergeOptions{IgnoreMissing: true})
	require.NoError(t, err)

	require.Len(t, file.Classes, 1)
	methods := file.Classes[0].Methods
	require.Len(t, methods, 1, spew.Sdump(methods))
	assert.Equal(t, "(La1;)V", methods[0].Desc)
	assert.Equal(t, []string{"b", "m_1", "run", "method_9", "execute"}, methods[0].Names)

	// the (I)V overload exists only in the first container
	assert.Equal(t, 1, diags.Count(diagnostic.CodeMissingNamespaceEntry))
}

func TestMergeFoldsFieldsWithoutDescriptor(t *testing.T) {
	ca := class("a1", "net/A", "Foo")
	fa := model.NewField("f_1", "")
	fa.ObfMerged = "c"
	fa.Mapped = "count"
	ca.AddField(fa)

	cb := class("a1", "net/B", "Bar")
	fb := model.NewField("field_1", "I")
	fb.ObfMerged = "c"
	fb.Mapped = "size"
	cb.AddField(fb)

	file, diags, err := Merge([]*model.Container{
		container(t, "", ca),
		container(t, "", cb),
	}, MergeOptions{IgnoreMissing: true})
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)

	fields := file.Classes[0].Fields
	require.Len(t, fields, 1, spew.Sdump(fields))
	assert.Equal(t, "I", fields[0].Desc)
	assert.Equal(t, []string{"c", "f_1", "count", "field_1", "size"}, fields[0].Names)
}

func TestMergeDuplicates(t *testing.T) {
	cls := class("a1", "net/A", "Foo")
	m1 := model.NewMethod("m_1", "()V")
	m1.ObfMerged = "x"
	m2 := model.NewMethod("m_2", "()V")
	m2.ObfMerged = "x"
	cls.AddMethod(m1)
	cls.AddMethod(m2)

	a := container(t, "", cls, class("a1", "net/Other", "Other"))

	file, diags, err := Merge([]*model.Container{a}, MergeOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, diags.Count(diagnostic.CodeDuplicateClass))
	assert.Equal(t, 1, diags.Count(diagnostic.CodeDuplicateMember))

	require.Len(t, file.Classes, 1)
	require.Len(t, file.Classes[0].Methods, 1)
	assert.Equal(t, []string{"x", "m_1", "m_1"}, file.Classes[0].Methods[0].Names)
}

func TestMergeDeterministic(t *testing.T) {
	var (
		as []*model.Class
		bs []*model.Class
	)

	for i := range 200 {
		obf := "c" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		as = append(as, class(obf, "net/a/"+obf, "A"+obf))
		bs = append(bs, class(obf, "net/b/"+obf, "B"+obf))
	}

	containers := []*model.Container{container(t, "a", as...), container(t, "b", bs...)}

	first, _, err := Merge(containers, MergeOptions{Parallelism: 1})
	require.NoError(t, err)

	want, err := tiny.Bytes(first)
	require.NoError(t, err)

	for range 5 {
		file, _, err := Merge(containers, MergeOptions{Parallelism: 8, DescCacheSize: 4})
		require.NoError(t, err)

		got, err := tiny.Bytes(file)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestMergeKeepsConflictingBlankFieldsApart(t *testing.T) {
	ca := class("a1", "net/A", "Foo")
	blank := model.NewField("f_1", "")
	blank.ObfMerged = "c"
	ca.AddField(blank)

	typed := model.NewField("f_2", "I")
	typed.ObfMerged = "c"
	ca.AddField(typed)

	file, diags, err := Merge([]*model.Container{container(t, "", ca)}, MergeOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, diags.Count(diagnostic.CodeConflictingObfuscatedKey))
	require.Len(t, file.Classes[0].Fields, 2, spew.Sdump(file.Classes[0].Fields))
	assert.Equal(t, "", file.Classes[0].Fields[0].Desc)
	assert.Equal(t, "I", file.Classes[0].Fields[1].Desc)
}
