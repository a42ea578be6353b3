package manifest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/tested"
)

func TestWriter_ExportedCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	reg := tested.NewRegistry()
	require.NoError(t, tested.RegisterGroup(reg, "math", "math_test.go", []tested.Case{
		{Ordinal: 0, Proc: func(rt tested.Runtime) { rt.StartCase("Addition") }},
		{Ordinal: 1, Proc: func(rt tested.Runtime) { rt.StartCase("Multiplication") }},
	}))
	require.NoError(t, tested.RegisterGroup(reg, "std.vector", "vector_test.go", []tested.Case{
		{Ordinal: 0, Proc: func(rt tested.Runtime) { rt.StartCase("emptiness") }},
	}))

	w := NewWriter()
	require.NoError(t, reg.GetAll().Export(w))

	var buf bytes.Buffer
	require.NoError(t, w.WriteTo(&buf))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "math", doc.Groups[0].Name)
	assert.Equal(t, []Case{{Name: "Addition", Ordinal: 0}, {Name: "Multiplication", Ordinal: 1}}, doc.Groups[0].Cases)
	assert.Equal(t, "std.vector", doc.Groups[1].Name)
}

func TestWriter_EmptySelection(t *testing.T) {
	t.Parallel()

	reg := tested.NewRegistry()
	w := NewWriter()
	require.NoError(t, reg.GetAll().Export(w))

	var buf bytes.Buffer
	require.NoError(t, w.WriteTo(&buf))
	assert.Equal(t, "groups: []\n", buf.String())
}
